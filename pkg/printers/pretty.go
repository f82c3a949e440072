// Package printers renders tasks and calendar views for the terminal.
package printers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/task"
	"tableflip.dev/planner/pkg/timeutil"
)

// PrettyPrint renders human output with fatih/color and uitable.
type PrettyPrint struct {
	ShowID bool
	Now    time.Time
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now.IsZero() {
		return time.Now()
	}
	return pp.Now
}

// NewLine prints a blank line.
func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold underlined section title.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// TitleWithCount prints a section title followed by a faint task count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Tasks prints a task list, one chip per line.
func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, tk := range tasks {
		if pp.ShowID {
			_, _ = y.Print(tk.ID)
			if pad := len(spacing) - len(tk.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		_, _ = t.Printf("%s %s %s\n", glyph.ForPriority(tk.Priority), glyph.ForStatus(tk.Status), pp.chip(tk))
	}
	_, _ = t.Println("")
}

// Table prints tasks as a uitable with due/priority/category columns.
func (pp *PrettyPrint) Table(tasks ...*task.Task) {
	if len(tasks) == 0 {
		pp.Tasks()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "TASK", "DUE", "PRIORITY", "CATEGORY")
	for _, tk := range tasks {
		due := ""
		if tk.DueDate != "" {
			due = pp.dueLabel(tk)
		}
		tbl.AddRow(glyph.ForStatus(tk.Status), tk.Title, due, tk.Priority.String(), tk.Category)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) chip(tk *task.Task) string {
	title := tk.Title
	if tk.Done() {
		title = glyph.Strike(title)
	}
	if label := pp.dueLabel(tk); label != "" {
		faint := color.New(color.Faint)
		return fmt.Sprintf("%s %s", title, faint.Sprintf("(%s)", label))
	}
	return title
}

func (pp *PrettyPrint) dueLabel(tk *task.Task) string {
	due, ok := dueDate(tk)
	if !ok {
		return ""
	}
	return timeutil.Relative(pp.now(), due)
}
