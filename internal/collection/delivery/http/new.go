package http

import (
	"todo-sync/internal/collection"
	"todo-sync/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler serves the /todo collection.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Replace(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc collection.UseCase
}

// New creates a new HTTP handler for the collection domain.
func New(l log.Logger, uc collection.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
