package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menubook/backend/config"
)

// Server wraps the HTTP server lifecycle
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, router *gin.Engine) *Server {
	return &Server{
		cfg:    cfg,
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start runs the server until it is shut down. TLS material is supplied
// externally through configuration; without it the server falls back to
// plain HTTP for development.
func (s *Server) Start() error {
	if s.cfg.TLSCertFile != "" && s.cfg.TLSKeyFile != "" {
		log.Printf("Listening on https://%s", s.http.Addr)
		if err := s.http.ListenAndServeTLS(s.cfg.TLSCertFile, s.cfg.TLSKeyFile); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}

	log.Printf("Listening on http://%s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
