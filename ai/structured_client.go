package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"ventureforge/internal/config"
	"ventureforge/ports"
)

// StructuredClient calls the OpenAI chat completions API in JSON mode and
// repairs the raw content before handing it back as json.RawMessage.
// Implements ports.StructuredGenerator.
type StructuredClient struct {
	apiKey        string
	baseURL       string
	model         string
	systemContext string
	timeout       time.Duration
	httpClient    *http.Client
}

// NewStructuredClient creates a client from AI config.
func NewStructuredClient(cfg config.AIConfig) *StructuredClient {
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	log.Printf("[StructuredClient] Initializing client with model=%s, timeout=%v", cfg.OpenAIModel, timeout)

	return &StructuredClient{
		apiKey:        cfg.OpenAIKey,
		baseURL:       "https://api.openai.com/v1",
		model:         cfg.OpenAIModel,
		systemContext: cfg.SystemContext,
		timeout:       timeout,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *StructuredClient) WithBaseURL(url string) *StructuredClient {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model               string          `json:"model"`
	Messages            []chatMessage   `json:"messages"`
	Temperature         float64         `json:"temperature,omitempty"`
	MaxCompletionTokens int             `json:"max_completion_tokens,omitempty"`
	ResponseFormat      *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateJSON makes a structured model call and returns cleaned raw JSON.
func (c *StructuredClient) GenerateJSON(ctx context.Context, prompt, system string, params ports.GenerationParams) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	systemContent := system
	if systemContent == "" {
		systemContent = c.systemContext
	}
	// JSON mode requires the word "JSON" somewhere in the conversation.
	if !strings.Contains(strings.ToLower(systemContent), "json") {
		systemContent += "\n\nRespond with valid JSON output only."
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemContent},
			{Role: "user", Content: prompt},
		},
		Temperature:         params.Temperature,
		MaxCompletionTokens: params.MaxTokens,
		ResponseFormat:      &responseFormat{Type: "json_object"},
	}

	log.Printf("[StructuredClient] Sending request - model=%s, promptLength=%d, temp=%.2f, maxTokens=%d",
		c.model, len(prompt), params.Temperature, params.MaxTokens)

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("request timeout after %v: %w", c.timeout, err)
		}
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in OpenAI response")
	}

	content := CleanJSONContent(chatResp.Choices[0].Message.Content)

	// Reject anything that still isn't parseable JSON here rather than
	// letting a malformed blob reach consumers.
	if !json.Valid([]byte(content)) {
		log.Printf("[StructuredClient] ERROR: Model output is not valid JSON after cleaning (%d bytes)", len(content))
		return nil, fmt.Errorf("model output is not valid JSON")
	}

	log.Printf("[StructuredClient] Parsed structured response (%d bytes)", len(content))
	return json.RawMessage(content), nil
}

// CleanJSONContent strips markdown fences and conversational chatter that
// models sometimes wrap around JSON output.
func CleanJSONContent(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	// Drop chatter lines that precede the JSON body.
	if idx := strings.IndexAny(content, "{["); idx > 0 {
		prefix := content[:idx]
		if !strings.ContainsAny(prefix, "{[") && strings.Contains(prefix, "\n") {
			log.Printf("[StructuredClient] Trimming %d bytes of prefix chatter before JSON", idx)
			content = content[idx:]
		}
	}

	// Drop trailing chatter after the JSON body closes.
	if end := lastBalancedIndex(content); end > 0 && end < len(content) {
		content = content[:end]
	}

	return strings.TrimSpace(content)
}

// lastBalancedIndex returns the index just past the point where the opening
// brace or bracket closes, or -1 if the content doesn't start with one.
func lastBalancedIndex(content string) int {
	if len(content) == 0 || (content[0] != '{' && content[0] != '[') {
		return -1
	}
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(content); i++ {
		ch := content[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{', '[':
			if !inString {
				depth++
			}
		case '}', ']':
			if !inString {
				depth--
				if depth == 0 {
					return i + 1
				}
			}
		}
	}
	return -1
}
