// Package glyph maps task statuses and priorities to their display symbols.
package glyph

import (
	"fmt"

	"tableflip.dev/planner/pkg/task"
)

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

// Strike wraps the input in terminal strikethrough escapes.
func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

// Bold wraps the input in terminal bold escapes.
func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

// Underline wraps the input in terminal underline escapes.
func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// ForStatus returns the bullet drawn in front of a task.
func ForStatus(s task.Status) string {
	switch s {
	case task.StatusDone:
		return "✘"
	case task.StatusInProgress:
		return "◐"
	default:
		return "●"
	}
}

// ForPriority returns the signifier drawn before the bullet. Low and Medium
// carry no mark.
func ForPriority(p task.Priority) string {
	switch p {
	case task.Urgent:
		return "‼"
	case task.High:
		return "!"
	default:
		return " "
	}
}
