package todos

// CreateTodoRequest is the form body posted by the new-item form
type CreateTodoRequest struct {
	ListID      int64  `form:"listId"`
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	DueDate     string `form:"dueDate"`
}
