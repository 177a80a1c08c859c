package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to an OpenAI-compatible chat-completions endpoint and asks it
// for a complete reading quiz. Generation is best-effort: failures surface to
// the caller as errors, there is no retry.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
	}
}

type GenerateRequest struct {
	Topic         string `json:"topic" binding:"required"`
	ReadingLevel  string `json:"readingLevel" binding:"required"`
	QuestionCount int    `json:"questionCount"`
}

// GeneratedQuestion mirrors the authoring question shape so the admin editor
// can take the output as a component draft directly.
type GeneratedQuestion struct {
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectOption int      `json:"correctOption,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

type GeneratedQuiz struct {
	Title     string              `json:"title"`
	Passage   string              `json:"passage"`
	Questions []GeneratedQuestion `json:"questions"`
}

type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []chatCompletionMessage `json:"messages"`
	Stream   bool                    `json:"stream"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

const systemPrompt = `You are a reading-comprehension quiz author. Respond with a single JSON object:
{"title": string, "passage": string, "questions": [{"type": "multiple-choice"|"true-false-not-given", "prompt": string, "options": [string], "correctOption": int, "correctAnswer": string, "reason": string}]}
The passage must be 3-5 paragraphs separated by line breaks. Do not wrap the JSON in markdown.`

func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GeneratedQuiz, error) {
	count := req.QuestionCount
	if count <= 0 {
		count = 5
	}
	userPrompt := fmt.Sprintf("Write a %s-level reading passage about %q with %d questions.",
		req.ReadingLevel, req.Topic, count)

	body, err := json.Marshal(chatCompletionRequest{
		Model: c.Model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("generation service returned %d: %s", resp.StatusCode, string(data))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("decoding generation response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("generation service returned no choices")
	}

	return ParseQuizJSON(completion.Choices[0].Message.Content)
}

// ParseQuizJSON extracts the quiz object from a model response, tolerating
// markdown code fences the model adds despite instructions.
func ParseQuizJSON(content string) (*GeneratedQuiz, error) {
	content = strings.TrimSpace(content)
	if after, ok := strings.CutPrefix(content, "```json"); ok {
		content = after
	} else if after, ok := strings.CutPrefix(content, "```"); ok {
		content = after
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	var quiz GeneratedQuiz
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &quiz); err != nil {
		return nil, fmt.Errorf("generation output is not valid quiz JSON: %w", err)
	}
	if quiz.Passage == "" || len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("generation output is missing a passage or questions")
	}
	return &quiz, nil
}
