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

type FactHandler struct {
	svc *service.FactService
}

func NewFactHandler(svc *service.FactService) *FactHandler {
	return &FactHandler{svc: svc}
}

// Create godoc
// @Summary      Create a dog fact
// @Tags         dog_facts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateFactRequest  true  "Fact body"
// @Success      201   {object}  dto.FactResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /dog_facts [post]
func (h *FactHandler) Create(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	var req dto.CreateFactRequest
	if !bindJSON(c, &req) {
		return
	}
	if missing := req.Missing(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(missing, ", ") + " must be in the request body"})
		return
	}
	f, err := h.svc.Create(c.Request.Context(), user, *req.Title, *req.Fact)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, factToResponse(f))
}

// List godoc
// @Summary      List all dog facts
// @Tags         dog_facts
// @Produce      json
// @Success      200  {array}   dto.FactResponse
// @Failure      500  {object}  map[string]string
// @Router       /dog_facts [get]
func (h *FactHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, factsToResponses(list))
}

// GetByID godoc
// @Summary      Get a dog fact by ID
// @Tags         dog_facts
// @Produce      json
// @Param        id   path      int  true  "Fact ID"
// @Success      200  {object}  dto.FactResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /dog_facts/{id} [get]
func (h *FactHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	f, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Fact with an ID of %d does not exist", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, factToResponse(f))
}

// Update godoc
// @Summary      Update a dog fact
// @Tags         dog_facts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Fact ID"
// @Param        body  body      dto.UpdateFactRequest  true  "Partial update"
// @Success      200   {object}  dto.FactResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /dog_facts/{id} [put]
func (h *FactHandler) Update(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateFactRequest
	if !bindJSON(c, &req) {
		return
	}
	f, err := h.svc.Update(c.Request.Context(), user, id, req.Title, req.Fact)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Fact with ID #%d does not exist", id)})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "This is not your post. You do not have permission to edit"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, factToResponse(f))
}

// Delete godoc
// @Summary      Delete a dog fact
// @Tags         dog_facts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Fact ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /dog_facts/{id} [delete]
func (h *FactHandler) Delete(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Fact with ID #%d does not exist", id)})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "This is not your post. You do not have permission to delete"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": "Post has been successfully deleted"})
}
