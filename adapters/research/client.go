package research

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

	domres "ventureforge/domain/research"
	"ventureforge/internal/config"
	"ventureforge/ports"
)

// Client implements ports.MarketResearchPort against a Perplexity-style
// online research API: one structured completion call that answers market
// size, funding landscape, demand signals, and known competitors.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient builds a research client from config. Returns nil when no
// credential is configured; the orchestrator treats a nil port as research
// disabled.
func NewClient(cfg config.ResearchConfig) *Client {
	if cfg.ResearchAPIKey == "" {
		return nil
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	return &Client{
		apiKey:     cfg.ResearchAPIKey,
		baseURL:    strings.TrimSuffix(cfg.ResearchURL, "/"),
		model:      "sonar",
		httpClient: &http.Client{Timeout: timeout},
	}
}

type researchMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type researchRequest struct {
	Model    string            `json:"model"`
	Messages []researchMessage `json:"messages"`
}

type researchResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// payloadEnvelope is the JSON shape the provider is asked to return.
type payloadEnvelope struct {
	MarketSize       string   `json:"marketSize"`
	FundingLandscape string   `json:"fundingLandscape"`
	DemandSignals    string   `json:"demandSignals"`
	CompetitorNames  []string `json:"competitorNames"`
	CompetitorURLs   []string `json:"competitorUrls"`
}

// Conduct runs one market research query for the subject.
func (c *Client) Conduct(ctx context.Context, req ports.MarketResearchRequest) (*domres.Payload, error) {
	prompt := buildResearchPrompt(req)

	body, err := json.Marshal(researchRequest{
		Model: c.model,
		Messages: []researchMessage{
			{Role: "system", Content: "You are a market research analyst. Answer with a single JSON object only."},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal research request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create research request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("research request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("research API error (status %d): %s", resp.StatusCode, string(raw))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read research response: %w", err)
	}

	var envelope researchResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse research response: %w", err)
	}
	if len(envelope.Choices) == 0 {
		return nil, fmt.Errorf("empty research response")
	}

	content := stripFences(envelope.Choices[0].Message.Content)
	var parsed payloadEnvelope
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse research payload: %w", err)
	}

	log.Printf("[ResearchClient] Research complete for %q: competitors=%d urls=%d",
		req.IdeaName, len(parsed.CompetitorNames), len(parsed.CompetitorURLs))

	return &domres.Payload{
		MarketSize:       parsed.MarketSize,
		FundingLandscape: parsed.FundingLandscape,
		DemandSignals:    parsed.DemandSignals,
		CompetitorNames:  parsed.CompetitorNames,
		CompetitorURLs:   parsed.CompetitorURLs,
		RawResponses:     []string{envelope.Choices[0].Message.Content},
	}, nil
}

func buildResearchPrompt(req ports.MarketResearchRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research the market for this venture:\n")
	fmt.Fprintf(&b, "Idea: %s\n", req.IdeaName)
	if req.Tagline != "" {
		fmt.Fprintf(&b, "Tagline: %s\n", req.Tagline)
	}
	if req.PrimaryCause != "" {
		fmt.Fprintf(&b, "Cause area: %s\n", req.PrimaryCause)
	}
	fmt.Fprintf(&b, "Venture type: %s\n", req.VentureType)
	if req.DeliveryFormat != "" {
		fmt.Fprintf(&b, "Delivery format: %s\n", req.DeliveryFormat)
	}
	if req.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", req.Location)
	}
	b.WriteString(`
Return a JSON object:
{
  "marketSize": "2-4 sentences on total and serviceable market size with figures",
  "fundingLandscape": "2-3 sentences on recent funding activity in this space",
  "demandSignals": "2-3 sentences on evidence of demand",
  "competitorNames": ["up to 5 direct competitors"],
  "competitorUrls": ["their homepage URLs"]
}`)
	return b.String()
}

func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
