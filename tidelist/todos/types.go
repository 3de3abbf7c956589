package todos

import (
	"database/sql"
	"time"
)

// handles to-do item database operations. Every query is scoped by the
// owning user's subject identifier; items of other users are invisible.
type Repository struct {
	db *sql.DB
}

// represents a single to-do item
type Todo struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"-"`
	ListID      int64     `json:"list_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	DueDate     string    `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// contains data for creating a to-do item
type CreateTodoInput struct {
	ListID      int64
	Title       string
	Description string
	DueDate     string
}
