package main

import (
	"database/sql"

	"codeberg.org/tidelist/server/internal/auth"
	"codeberg.org/tidelist/server/internal/config"
	"codeberg.org/tidelist/server/tidelist/todos"
	"github.com/gin-gonic/gin"
)

// holds the router and all request-serving dependencies
type Server struct {
	cfg       *config.Config
	router    *gin.Engine
	db        *sql.DB
	todoRepo  *todos.Repository
	sessions  *auth.SessionStore
	verifier  auth.Verifier
	exchanger *auth.Exchanger
}
