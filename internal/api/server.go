package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"ventureforge/app"
	"ventureforge/ports"
)

// Server is the HTTP surface for the deep-dive pipeline.
type Server struct {
	router      *gin.Engine
	deepDive    *app.DeepDiveService
	entitlement ports.EntitlementPort
	reports     ports.DeepDiveRepository // nil when persistence is disabled
}

// NewServer creates the API server and registers routes.
func NewServer(ginMode string, deepDive *app.DeepDiveService, entitlement ports.EntitlementPort, reports ports.DeepDiveRepository) *Server {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}

	s := &Server{
		router:      gin.Default(),
		deepDive:    deepDive,
		entitlement: entitlement,
		reports:     reports,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.POST("/deep-dive", s.handleDeepDive)
		api.GET("/deep-dive/latest", s.handleLatestDeepDive)
		api.POST("/deep-dive/launch-kit", s.handleLaunchKit)
	}
}

// Run starts the server on the given port.
func (s *Server) Run(port string) error {
	log.Printf("[API] Listening on :%s", port)
	return s.router.Run(":" + port)
}

// Router exposes the underlying engine. Used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
