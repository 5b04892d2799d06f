package research

import (
	"context"
	"errors"
	"testing"

	domres "ventureforge/domain/research"
	"ventureforge/domain/venture"
	"ventureforge/ports"
)

type fakeMarket struct {
	payload *domres.Payload
	err     error
	calls   int
}

func (f *fakeMarket) Conduct(_ context.Context, _ ports.MarketResearchRequest) (*domres.Payload, error) {
	f.calls++
	return f.payload, f.err
}

type fakeScrape struct {
	insights []domres.CompetitorInsight
	err      error
	calls    int
	gotURLs  []string
}

func (f *fakeScrape) Scrape(_ context.Context, urls []string) ([]domres.CompetitorInsight, error) {
	f.calls++
	f.gotURLs = urls
	return f.insights, f.err
}

func testSubject() (venture.Idea, venture.FounderProfile) {
	idea := venture.Idea{Name: "Acme Composting", Tagline: "Neighborhood compost pickup"}
	profile := venture.FounderProfile{VentureType: "business", CauseAreas: []string{"climate"}}
	return idea, profile
}

func TestOrchestrator_NoProviderConfigured(t *testing.T) {
	orch := NewOrchestrator(nil, nil)
	idea, profile := testSubject()

	entry := orch.Run(context.Background(), idea, profile)

	if entry.ResearchAttempted {
		t.Fatal("missing credential must mean research was not attempted")
	}
	if entry.TrustResearch {
		t.Fatal("unattempted research must not be trusted")
	}
	if entry.CreatedAt.IsZero() {
		t.Fatal("entry must carry its creation time")
	}
}

func TestOrchestrator_ProviderFailureIsAbsorbed(t *testing.T) {
	market := &fakeMarket{err: errors.New("provider timeout")}
	orch := NewOrchestrator(market, nil)
	idea, profile := testSubject()

	entry := orch.Run(context.Background(), idea, profile)

	if !entry.ResearchAttempted {
		t.Fatal("a failed call still counts as attempted")
	}
	if entry.TrustResearch {
		t.Fatal("failed research must not be trusted")
	}
	if entry.Payload != nil {
		t.Fatal("failed research must leave an empty payload")
	}
}

func TestOrchestrator_ScrapeFailureDegradesInsightsOnly(t *testing.T) {
	payload := &domres.Payload{
		MarketSize:       substantiveText(150),
		FundingLandscape: substantiveText(80),
		CompetitorNames:  []string{"Acme", "Globex"},
		CompetitorURLs:   []string{"https://acme.test", "https://globex.test"},
	}
	market := &fakeMarket{payload: payload}
	scraper := &fakeScrape{err: errors.New("scrape blocked")}
	orch := NewOrchestrator(market, scraper)
	idea, profile := testSubject()

	entry := orch.Run(context.Background(), idea, profile)

	if scraper.calls != 1 {
		t.Fatalf("expected one scrape attempt, got %d", scraper.calls)
	}
	if len(entry.Insights) != 0 {
		t.Fatal("scrape failure must degrade insights to empty")
	}
	if entry.Payload == nil {
		t.Fatal("scrape failure must not invalidate the research payload")
	}
	if !entry.TrustResearch {
		t.Fatal("a rich payload must still pass the quality gate after scrape failure")
	}
}

func TestOrchestrator_ScrapeSkippedWithoutURLs(t *testing.T) {
	market := &fakeMarket{payload: &domres.Payload{MarketSize: substantiveText(150)}}
	scraper := &fakeScrape{}
	orch := NewOrchestrator(market, scraper)
	idea, profile := testSubject()

	orch.Run(context.Background(), idea, profile)

	if scraper.calls != 0 {
		t.Fatal("scrape must not run when research found no competitor URLs")
	}
}

func TestOrchestrator_ScrapeReceivesResearchURLs(t *testing.T) {
	urls := []string{"https://acme.test", "https://globex.test"}
	market := &fakeMarket{payload: &domres.Payload{CompetitorURLs: urls}}
	scraper := &fakeScrape{insights: []domres.CompetitorInsight{{Name: "Acme"}}}
	orch := NewOrchestrator(market, scraper)
	idea, profile := testSubject()

	entry := orch.Run(context.Background(), idea, profile)

	if len(scraper.gotURLs) != 2 {
		t.Fatalf("scrape input must be the research payload URLs, got %v", scraper.gotURLs)
	}
	if len(entry.Insights) != 1 {
		t.Fatalf("expected scraped insights on the entry, got %d", len(entry.Insights))
	}
}
