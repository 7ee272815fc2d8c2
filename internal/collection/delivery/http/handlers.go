package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-sync/internal/model"
	"todo-sync/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the whole collection in insertion order.
// @Tags        Todo
// @Produce     json
// @Success     200 {array}  taskResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /todo [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newListResp(tasks))
}

// Create godoc
// @Summary     Create a task
// @Description Stores the task as sent. A missing id is replaced by a generated UUID.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body     taskReq true "Task"
// @Success     201  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /todo [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.Create(ctx, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTaskResp(task))
}

// Replace godoc
// @Summary     Replace a task
// @Description Overwrites the stored task. The stored id is kept.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id   path     string  true "Task ID"
// @Param       body body     taskReq true "Task"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /todo/{id} [PUT]
func (h *handler) Replace(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.Replace(ctx, req.toReplaceInput(id))
	if err != nil {
		h.l.Errorf(ctx, "uc.Replace: %v", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResp(task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} map[string]interface{} "Empty object"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /todo/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, model.StringID(id)); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
