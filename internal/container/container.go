package container

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"ventureforge/adapters/entitlement"
	"ventureforge/adapters/postgres"
	researchclient "ventureforge/adapters/research"
	"ventureforge/adapters/scrape"
	"ventureforge/ai"
	"ventureforge/app"
	"ventureforge/internal/config"
	"ventureforge/internal/research"
	"ventureforge/ports"
)

// Container holds all application dependencies and manages their lifecycle.
// Constructed once at process start; the research cache lives and dies
// with it.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Research pipeline
	Cache        *research.Cache
	Orchestrator *research.Orchestrator

	// Content pipeline
	Generator ports.StructuredGenerator
	DeepDive  *app.DeepDiveService

	// Collaborators
	Entitlement ports.EntitlementPort
	Reports     ports.DeepDiveRepository
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{Config: cfg}

	// Research providers; either may be nil when its credential is absent.
	marketPort := narrowMarket(researchclient.NewClient(cfg.Research))
	scrapePort := narrowScrape(scrape.NewClient(cfg.Research))

	c.Cache = research.NewCache(cfg.Research.CacheTTL)
	c.Orchestrator = research.NewOrchestrator(marketPort, scrapePort)
	c.Generator = ai.NewStructuredClient(cfg.AI)
	c.DeepDive = app.NewDeepDiveService(c.Cache, c.Orchestrator, c.Generator)
	c.Entitlement = entitlement.NewStaticGate(cfg.Server.AllowAnon)

	return c, nil
}

// InitWithDatabase initializes components that require database access
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.DB = db
	if err := postgres.EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	c.Reports = postgres.NewDeepDiveRepository(db)

	log.Printf("Container initialized with database connection")
	return nil
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// narrowMarket converts a possibly-nil concrete client into a possibly-nil
// port without wrapping nil in a non-nil interface.
func narrowMarket(client *researchclient.Client) ports.MarketResearchPort {
	if client == nil {
		return nil
	}
	return client
}

func narrowScrape(client *scrape.Client) ports.CompetitorScrapePort {
	if client == nil {
		return nil
	}
	return client
}
