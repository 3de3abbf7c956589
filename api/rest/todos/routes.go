package todos

import (
	"codeberg.org/tidelist/server/tidelist/todos"
	"github.com/gin-gonic/gin"
)

// registers the landing page and the protected to-do routes. The guard
// middleware runs before every handler in the /todos group; the landing
// page stays public.
func RegisterRoutes(router *gin.Engine, repo *todos.Repository, guard gin.HandlerFunc) {
	router.GET("/", IndexHandler())

	todoGroup := router.Group("/todos", guard)
	{
		todoGroup.GET("", ListHandler(repo))
		todoGroup.POST("", CreateHandler(repo))
		todoGroup.PUT("/:id", ToggleHandler(repo))
		todoGroup.DELETE("/:id", DeleteHandler(repo))
	}
}
