package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/kokafor1/capstone-backend/internal/auth"
	"github.com/kokafor1/capstone-backend/internal/dto"
	"github.com/kokafor1/capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create godoc
// @Summary      Comment on a dog fact
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Fact ID"
// @Param        body  body      dto.CreateCommentRequest  true  "Comment body"
// @Success      201   {object}  dto.CommentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /dog_facts/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	factID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	if missing := req.Missing(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(missing, ", ") + " must be present in the request body"})
		return
	}
	comment, err := h.svc.Create(c.Request.Context(), user, factID, *req.Body)
	if err != nil {
		if errors.Is(err, service.ErrFactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Fact %d does not exist", factID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, commentToResponse(comment))
}

// Delete godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id          path  int  true  "Fact ID"
// @Param        comment_id  path  int  true  "Comment ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /dog_facts/{id}/comments/{comment_id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	factID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), user, factID, commentID); err != nil {
		switch {
		case errors.Is(err, service.ErrFactNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Fact %d does not exist", factID)})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Comment %d does not exist", commentID)})
		case errors.Is(err, service.ErrCommentMismatch):
			c.JSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("Comment #%d is not associated with Fact #%d", commentID, factID)})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to delete this comment"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": "Comment has been successfully deleted"})
}
