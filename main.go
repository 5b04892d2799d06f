package main

import (
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"ventureforge/internal/api"
	"ventureforge/internal/config"
	"ventureforge/internal/container"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}
	defer c.Close()

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := c.InitWithDatabase(db); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	if cfg.Profiling.Enabled {
		go func() {
			addr := ":" + cfg.Profiling.Port
			log.Printf("[Ops] Serving health and pprof on %s", addr)
			if err := http.ListenAndServe(addr, api.NewOpsRouter(true)); err != nil {
				log.Printf("[Ops] Server stopped: %v", err)
			}
		}()
	}

	server := api.NewServer(cfg.Server.GinMode, c.DeepDive, c.Entitlement, c.Reports)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
