package api

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/avdleeuw/animevault/internal/repository"
	"github.com/avdleeuw/animevault/internal/stats"
)

// Server exposes the statistics cache and filter evaluation over HTTP.
type Server struct {
	router    *gin.Engine
	repo      *repository.Repository
	cache     *stats.Cache
	debouncer *stats.Debouncer
}

// NewServer creates a new API server instance
func NewServer(repo *repository.Repository, cache *stats.Cache, debouncer *stats.Debouncer) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(errorHandlerMiddleware())
	router.Use(cors.Default())

	s := &Server{
		router:    router,
		repo:      repo,
		cache:     cache,
		debouncer: debouncer,
	}

	s.setupRoutes()

	return s
}

// Run starts the API server on the specified port
func (s *Server) Run(port int) error {
	return s.router.Run(fmt.Sprintf(":%d", port))
}

// Handler returns the underlying router, used by tests.
func (s *Server) Handler() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		// Saved group filters and their per-user memberships
		v1.GET("/filters", s.listFilters)
		v1.GET("/filters/:id", s.getFilter)
		v1.GET("/filters/:id/groups", s.filterGroups)
		v1.POST("/filters/preview", s.previewFilter)

		// Per-group derived statistics
		v1.GET("/groups/:id/stats", s.groupStats)

		// Cache maintenance
		v1.POST("/stats/rebuild", s.rebuildStats)
		v1.POST("/stats/refresh", s.refreshStats)
	}
}
