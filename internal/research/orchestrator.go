package research

import (
	"context"
	"log"
	"time"

	domres "ventureforge/domain/research"
	"ventureforge/domain/venture"
	"ventureforge/ports"
)

// Orchestrator drives the two research providers for one subject and hands
// the result to the quality gate. Provider failure is tolerated at every
// step: Run always returns a well-formed entry and never an error.
type Orchestrator struct {
	market ports.MarketResearchPort   // nil when no research credential is configured
	scrape ports.CompetitorScrapePort // nil when no scrape credential is configured
	clock  func() time.Time
}

// NewOrchestrator creates an orchestrator. Either port may be nil.
func NewOrchestrator(market ports.MarketResearchPort, scrape ports.CompetitorScrapePort) *Orchestrator {
	return &Orchestrator{market: market, scrape: scrape, clock: time.Now}
}

// Run performs research for one (idea, profile) subject. Market research
// always completes, success or caught failure, before scraping is
// attempted: the scrape input derives from the research payload.
func (o *Orchestrator) Run(ctx context.Context, idea venture.Idea, profile venture.FounderProfile) domres.Entry {
	entry := domres.Entry{CreatedAt: o.clock()}

	if o.market == nil {
		// Configuration fallback, not an error.
		log.Printf("[Orchestrator] No research provider configured, skipping research for %q", idea.Name)
		return entry
	}

	entry.ResearchAttempted = true

	payload, err := o.market.Conduct(ctx, ports.MarketResearchRequest{
		IdeaName:       idea.Name,
		Tagline:        idea.Tagline,
		PrimaryCause:   profile.PrimaryCause(),
		VentureType:    profile.VentureType,
		DeliveryFormat: profile.DeliveryFormat,
		Location:       profile.Location,
	})
	if err != nil {
		log.Printf("[Orchestrator] Market research failed for %q: %v", idea.Name, err)
		return entry
	}
	entry.Payload = payload

	if o.scrape != nil && payload != nil && len(payload.CompetitorURLs) > 0 {
		insights, err := o.scrape.Scrape(ctx, payload.CompetitorURLs)
		if err != nil {
			// Scrape failure degrades insights only; the research payload
			// already obtained stays valid.
			log.Printf("[Orchestrator] Competitor scrape failed for %q: %v", idea.Name, err)
		} else {
			entry.Insights = insights
		}
	}

	entry.TrustResearch = EvaluateResearchQuality(entry.Payload)
	log.Printf("[Orchestrator] Research complete for %q: attempted=%t trust=%t competitors=%d insights=%d",
		idea.Name, entry.ResearchAttempted, entry.TrustResearch, competitorCount(entry.Payload), len(entry.Insights))

	return entry
}

func competitorCount(payload *domres.Payload) int {
	if payload == nil {
		return 0
	}
	return len(payload.CompetitorNames)
}
