package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash"

	SystemInstruction = "You are Ruchi AI, an expert on Kerala food, restaurants, and culture. " +
		"Be friendly, authentic, and concise. Use Malayalam terms where appropriate " +
		"(like 'Sadhya', 'Puttu', 'Meen Curry')."

	// FallbackReply is shown to the user whenever the model cannot answer.
	FallbackReply = "Sorry, I'm having trouble connecting to the kitchen. Try again later!"

	maxHistory = 20
)

var (
	ErrNotConfigured = errors.New("chat assistant is not configured")
	ErrEmptyReply    = errors.New("model returned no text")
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Message struct {
	Role Role   `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required,max=2000"`
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction content   `json:"systemInstruction"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type Client struct {
	http  *resty.Client
	key   string
	model string
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetHeader("Content-Type", "application/json"),
		key:   cfg.APIKey,
		model: cfg.Model,
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.key != ""
}

// Reply sends the conversation so far plus the new prompt and returns the
// model's answer. Only the most recent history entries are forwarded.
func (c *Client) Reply(ctx context.Context, history []Message, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	req := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: SystemInstruction}}},
	}
	for _, m := range history {
		req.Contents = append(req.Contents, content{Role: string(m.Role), Parts: []part{{Text: m.Text}}})
	}
	req.Contents = append(req.Contents, content{Role: string(RoleUser), Parts: []part{{Text: prompt}}})

	var out generateResponse
	var failure apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("model", c.model).
		SetQueryParam("key", c.key).
		SetBody(req).
		SetResult(&out).
		SetError(&failure).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("generate content: %s: %s", resp.Status(), failure.Error.Message)
	}

	var sb strings.Builder
	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}
