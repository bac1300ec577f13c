// Package server exposes the design calculators as a small HTTP service.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/chemctl/internal/config"
	"github.com/danmuck/chemctl/internal/observability"
)

// Server owns the gin engine and the service identity used in logs and
// metric labels.
type Server struct {
	Name    string
	Addr    string
	started time.Time

	router *gin.Engine
}

// New assembles the engine with recovery, request logging, metrics and
// cors, then registers the design routes.
func New(cfg config.ServiceConfig) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Server{
		Name:    cfg.Name,
		Addr:    cfg.Addr,
		started: time.Now(),
		router:  r,
	}
	s.registerRoutes()
	return s
}

// Router exposes the engine for tests and embedding.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Serve blocks on the listen address until the process exits.
func (s *Server) Serve() error {
	log.Info().Str("service", s.Name).Str("addr", s.Addr).Msg("chemctl service listening")
	return s.router.Run(s.Addr)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
