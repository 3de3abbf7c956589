package todos

const (
	queryCreateTodo = `
		INSERT INTO todo_items (user_id, list_id, title, description, due_date)
		VALUES (?, ?, ?, ?, ?)
	`

	queryGetAllTodos = `
		SELECT id, user_id, list_id, title, description, is_completed, due_date, created_at
		FROM todo_items
		WHERE user_id = ?
		ORDER BY id
	`

	queryGetTodoByID = `
		SELECT id, user_id, list_id, title, description, is_completed, due_date, created_at
		FROM todo_items
		WHERE id = ? AND user_id = ?
	`

	queryUpdateTodo = `
		UPDATE todo_items
		SET title = ?, description = ?, is_completed = ?, due_date = ?
		WHERE id = ? AND user_id = ?
	`

	queryDeleteTodo = `
		DELETE FROM todo_items
		WHERE id = ? AND user_id = ?
	`
)
