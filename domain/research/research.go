package research

import "time"

// Payload is the structured output of a market research run. No field is
// required to be non-empty; absence is a valid but lower-quality state.
type Payload struct {
	MarketSize       string   `json:"marketSize"`
	FundingLandscape string   `json:"fundingLandscape"`
	DemandSignals    string   `json:"demandSignals"`
	CompetitorNames  []string `json:"competitorNames"`
	CompetitorURLs   []string `json:"competitorUrls"`
	RawResponses     []string `json:"rawResponses,omitempty"`
}

// CompetitorInsight is one scraped competitor record. Derived entirely from
// the scrape provider and never mutated after creation.
type CompetitorInsight struct {
	Name            string   `json:"name"`
	URL             string   `json:"url"`
	Description     string   `json:"description"`
	PricingModel    string   `json:"pricingModel"`
	KeyMessages     []string `json:"keyMessages"`
	TargetAudience  string   `json:"targetAudience"`
	Differentiators []string `json:"differentiators"`
}

// Entry is the cached research outcome for one subject key. TrustResearch
// is the single authoritative decision for every content section of that
// subject and must not change until the entry expires.
type Entry struct {
	Payload           *Payload
	Insights          []CompetitorInsight
	CreatedAt         time.Time
	ResearchAttempted bool
	TrustResearch     bool
}
