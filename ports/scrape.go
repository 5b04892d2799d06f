package ports

import (
	"context"

	"ventureforge/domain/research"
)

// CompetitorScrapePort is the external competitor-scrape provider. Input is
// the competitor URLs discovered by market research. It may fail; failure
// degrades insights to empty without invalidating the research payload.
type CompetitorScrapePort interface {
	Scrape(ctx context.Context, urls []string) ([]research.CompetitorInsight, error)
}
