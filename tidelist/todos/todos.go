package todos

import (
	"context"
	"database/sql"
	"fmt"
)

// creates a new to-do repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// inserts a to-do item owned by userID and returns its id
func (r *Repository) Create(ctx context.Context, userID string, input CreateTodoInput) (int64, error) {
	result, err := r.db.ExecContext(
		ctx,
		queryCreateTodo,
		userID,
		input.ListID,
		input.Title,
		input.Description,
		input.DueDate,
	)
	if err != nil {
		return 0, fmt.Errorf("create todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create todo: %w", err)
	}

	return id, nil
}

// returns all to-do items owned by userID
func (r *Repository) GetAll(ctx context.Context, userID string) ([]Todo, error) {
	rows, err := r.db.QueryContext(ctx, queryGetAllTodos, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close() //nolint:errcheck // rows closed on read path

	items := []Todo{}

	for rows.Next() {
		var todo Todo

		err := rows.Scan(
			&todo.ID,
			&todo.UserID,
			&todo.ListID,
			&todo.Title,
			&todo.Description,
			&todo.IsCompleted,
			&todo.DueDate,
			&todo.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}

		items = append(items, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return items, nil
}

// returns a single to-do item owned by userID
func (r *Repository) GetByID(ctx context.Context, userID string, id int64) (*Todo, error) {
	var todo Todo

	err := r.db.QueryRowContext(ctx, queryGetTodoByID, id, userID).Scan(
		&todo.ID,
		&todo.UserID,
		&todo.ListID,
		&todo.Title,
		&todo.Description,
		&todo.IsCompleted,
		&todo.DueDate,
		&todo.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get todo %d: %w", id, err)
	}

	return &todo, nil
}

// updates a to-do item owned by userID
func (r *Repository) Update(ctx context.Context, userID string, id int64, title, description string, isCompleted bool, dueDate string) error {
	result, err := r.db.ExecContext(
		ctx,
		queryUpdateTodo,
		title,
		description,
		isCompleted,
		dueDate,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("update todo %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update todo %d: %w", id, err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// deletes a to-do item owned by userID
func (r *Repository) Delete(ctx context.Context, userID string, id int64) error {
	_, err := r.db.ExecContext(ctx, queryDeleteTodo, id, userID)
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}

	return nil
}
