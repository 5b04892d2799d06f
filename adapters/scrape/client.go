package scrape

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
)

// maxScrapeURLs caps how many competitor pages one orchestration run will
// fetch.
const maxScrapeURLs = 5

// Client implements ports.CompetitorScrapePort against a Firecrawl-style
// extraction API: one call per URL, structured extraction of positioning
// fields.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a scrape client from config, or nil when no credential
// is configured.
func NewClient(cfg config.ResearchConfig) *Client {
	if cfg.ScrapeAPIKey == "" {
		return nil
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	return &Client{
		apiKey:     cfg.ScrapeAPIKey,
		baseURL:    strings.TrimSuffix(cfg.ScrapeURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type extractRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
	Prompt  string   `json:"prompt"`
}

type extractResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Extract competitorExtract `json:"extract"`
	} `json:"data"`
}

type competitorExtract struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PricingModel    string   `json:"pricingModel"`
	KeyMessages     []string `json:"keyMessages"`
	TargetAudience  string   `json:"targetAudience"`
	Differentiators []string `json:"differentiators"`
}

const extractPrompt = "Extract this company's name, a one-paragraph description, its pricing model, up to three key marketing messages, its target audience, and up to three differentiators."

// Scrape extracts competitor insights for the given URLs. Individual page
// failures are skipped; the call fails only when every page fails.
func (c *Client) Scrape(ctx context.Context, urls []string) ([]domres.CompetitorInsight, error) {
	if len(urls) > maxScrapeURLs {
		urls = urls[:maxScrapeURLs]
	}

	insights := make([]domres.CompetitorInsight, 0, len(urls))
	var lastErr error
	for _, url := range urls {
		insight, err := c.scrapeOne(ctx, url)
		if err != nil {
			log.Printf("[ScrapeClient] Failed to scrape %s: %v", url, err)
			lastErr = err
			continue
		}
		insights = append(insights, *insight)
	}

	if len(insights) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all %d competitor scrapes failed: %w", len(urls), lastErr)
	}
	return insights, nil
}

func (c *Client) scrapeOne(ctx context.Context, url string) (*domres.CompetitorInsight, error) {
	body, err := json.Marshal(extractRequest{
		URL:     url,
		Formats: []string{"extract"},
		Prompt:  extractPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/scrape", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create scrape request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("scrape API error (status %d): %s", resp.StatusCode, string(raw))
	}

	var parsed extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse scrape response: %w", err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("scrape reported failure for %s", url)
	}

	extract := parsed.Data.Extract
	return &domres.CompetitorInsight{
		Name:            extract.Name,
		URL:             url,
		Description:     extract.Description,
		PricingModel:    extract.PricingModel,
		KeyMessages:     extract.KeyMessages,
		TargetAudience:  extract.TargetAudience,
		Differentiators: extract.Differentiators,
	}, nil
}
