package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the collection endpoints onto rg. Extra handlers such as
// the rate limiter run before every route.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mws ...gin.HandlerFunc) {
	todo := rg.Group("/todo", mws...)
	{
		todo.GET("", h.List)
		todo.POST("", h.Create)
		todo.PUT("/:id", h.Replace)
		todo.DELETE("/:id", h.Delete)
	}
}
