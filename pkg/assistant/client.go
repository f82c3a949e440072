// Package assistant turns free-form capture text into draft tasks by
// calling a hosted chat-completion API. Only the text side of the voice
// pipeline lives here; audio capture and playback are the caller's problem.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"

	"tableflip.dev/planner/pkg/task"
)

const systemPrompt = `You convert a short task capture into JSON with keys ` +
	`"title", "dueDate" (ISO-8601 or empty), "priority" (low/medium/high/urgent), ` +
	`"category". Respond with the JSON object only.`

// Client talks to an OpenAI-style chat endpoint.
type Client struct {
	BaseURL    string
	Model      string
	APIKey     string
	HTTPClient *http.Client
}

// LoadClient builds a Client from PLANNER_AI_* configuration.
func LoadClient() (*Client, error) {
	viper.SetEnvPrefix("PLANNER")
	viper.AutomaticEnv()
	viper.SetDefault("ai_url", "http://localhost:11434/v1")
	viper.SetDefault("ai_model", "llama3.2")

	base := viper.GetString("ai_url")
	if base == "" {
		return nil, errors.New("assistant: no endpoint configured")
	}
	return &Client{
		BaseURL: strings.TrimRight(base, "/"),
		Model:   viper.GetString("ai_model"),
		APIKey:  viper.GetString("ai_key"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type draft struct {
	Title    string `json:"title"`
	DueDate  string `json:"dueDate"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

// Capture sends the raw capture text to the model and returns the drafted
// task. The draft is not persisted; the caller decides what to do with it.
func (c *Client) Capture(ctx context.Context, text string) (*task.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("assistant: nothing to capture")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assistant: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assistant: endpoint returned %s", resp.Status)
	}

	var out chatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("assistant: decode response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("assistant: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return nil, errors.New("assistant: empty response")
	}

	return parseDraft(out.Choices[0].Message.Content)
}

// parseDraft decodes the model's JSON answer into a task. Models love to
// wrap JSON in code fences, so those are stripped first.
func parseDraft(content string) (*task.Task, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var d draft
	if err := json.Unmarshal([]byte(content), &d); err != nil {
		return nil, fmt.Errorf("assistant: unparsable draft: %w", err)
	}
	if strings.TrimSpace(d.Title) == "" {
		return nil, errors.New("assistant: draft has no title")
	}

	t := task.New(d.Title)
	t.DueDate = d.DueDate
	t.Category = d.Category
	if p, err := task.ParsePriority(d.Priority); err == nil {
		t.Priority = p
	}
	return t, nil
}
