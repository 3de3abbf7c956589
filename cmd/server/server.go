package main

import (
	"context"
	"fmt"

	"codeberg.org/tidelist/server/internal/auth"
	"codeberg.org/tidelist/server/internal/config"
	"codeberg.org/tidelist/server/internal/storage"
	"codeberg.org/tidelist/server/tidelist/todos"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	todoRepo := todos.NewRepository(db)
	sessions := auth.NewSessionStore(cfg.IsProduction())

	// ctx owns the background JWKS refresh; cancel it to stop refreshing
	verifier := auth.NewJWKSVerifier(ctx, auth.VerifierConfig{
		Domain:   cfg.Auth0Domain,
		ClientID: cfg.ClientID,
	})

	exchanger := auth.NewExchanger(
		cfg.Auth0Domain,
		cfg.ClientID,
		cfg.ClientSecret,
		cfg.BaseURL+"/auth/callback",
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger())

	router.LoadHTMLGlob("views/*.html")
	router.Static("/public", "./public")

	server := &Server{
		cfg:       cfg,
		router:    router,
		db:        db,
		todoRepo:  todoRepo,
		sessions:  sessions,
		verifier:  verifier,
		exchanger: exchanger,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// releases server resources
func (s *Server) Close() {
	s.db.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
}
