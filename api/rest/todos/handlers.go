package todos

import (
	"net/http"
	"strconv"

	"codeberg.org/tidelist/server/internal/auth"
	"codeberg.org/tidelist/server/internal/errors"
	"codeberg.org/tidelist/server/tidelist/todos"
	"github.com/gin-gonic/gin"
)

// renders the landing page
func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{})
	}
}

// renders the authenticated user's to-do list
func ListHandler(repo *todos.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.CurrentPrincipal(c)
		if !ok {
			c.Redirect(http.StatusFound, auth.LoginPath)
			c.Abort()
			return
		}

		items, err := repo.GetAll(c.Request.Context(), principal.Subject)
		if err != nil {
			errors.DataError(c, err)
			return
		}

		c.HTML(http.StatusOK, "todos.html", gin.H{
			"todos": items,
		})
	}
}

// creates a to-do item for the authenticated user and renders it
func CreateHandler(repo *todos.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.CurrentPrincipal(c)
		if !ok {
			c.Redirect(http.StatusFound, auth.LoginPath)
			c.Abort()
			return
		}

		var req CreateTodoRequest
		if err := c.ShouldBind(&req); err != nil {
			errors.DataError(c, err)
			return
		}

		id, err := repo.Create(c.Request.Context(), principal.Subject, todos.CreateTodoInput{
			ListID:      req.ListID,
			Title:       req.Title,
			Description: req.Description,
			DueDate:     req.DueDate,
		})
		if err != nil {
			errors.DataError(c, err)
			return
		}

		created, err := repo.GetByID(c.Request.Context(), principal.Subject, id)
		if err != nil {
			errors.DataError(c, err)
			return
		}

		c.HTML(http.StatusOK, "todo-item.html", gin.H{
			"todo": created,
		})
	}
}

// toggles an item's completion state and renders the refreshed item
func ToggleHandler(repo *todos.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.CurrentPrincipal(c)
		if !ok {
			c.Redirect(http.StatusFound, auth.LoginPath)
			c.Abort()
			return
		}

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			errors.DataError(c, err)
			return
		}

		item, err := repo.GetByID(c.Request.Context(), principal.Subject, id)
		if err != nil {
			errors.DataError(c, err)
			return
		}

		err = repo.Update(
			c.Request.Context(),
			principal.Subject,
			id,
			item.Title,
			item.Description,
			!item.IsCompleted,
			item.DueDate,
		)
		if err != nil {
			errors.DataError(c, err)
			return
		}

		refreshed, err := repo.GetByID(c.Request.Context(), principal.Subject, id)
		if err != nil {
			errors.DataError(c, err)
			return
		}

		c.HTML(http.StatusOK, "todo-item.html", gin.H{
			"todo": refreshed,
		})
	}
}

// deletes an item owned by the authenticated user
func DeleteHandler(repo *todos.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.CurrentPrincipal(c)
		if !ok {
			c.Redirect(http.StatusFound, auth.LoginPath)
			c.Abort()
			return
		}

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			errors.DataError(c, err)
			return
		}

		if err := repo.Delete(c.Request.Context(), principal.Subject, id); err != nil {
			errors.DataError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
