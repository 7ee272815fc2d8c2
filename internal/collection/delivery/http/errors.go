package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todo-sync/internal/collection"
	"todo-sync/pkg/response"
)

// writeError translates use-case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, collection.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, collection.ErrDuplicateID):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
