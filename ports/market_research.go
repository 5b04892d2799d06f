package ports

import (
	"context"

	"ventureforge/domain/research"
)

// MarketResearchRequest carries the idea/profile fields the research
// provider needs to scope its queries.
type MarketResearchRequest struct {
	IdeaName       string
	Tagline        string
	PrimaryCause   string
	VentureType    string
	DeliveryFormat string
	Location       string
}

// MarketResearchPort is the external market-research provider. It may fail;
// the orchestrator owns converting failure into a degraded entry.
type MarketResearchPort interface {
	Conduct(ctx context.Context, req MarketResearchRequest) (*research.Payload, error)
}
