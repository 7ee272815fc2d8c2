package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

func (h *handler) processTaskReq(c *gin.Context) (taskReq, error) {
	ctx := c.Request.Context()

	var req taskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "collection.delivery.http.processTaskReq: invalid body: %v", err)
		return taskReq{}, err
	}
	return req, nil
}

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
