package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kokafor1/capstone-backend/internal/auth"
	"github.com/kokafor1/capstone-backend/internal/dto"
	"github.com/kokafor1/capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, token issuing and the current-user lookup.
type AuthHandler struct {
	userSvc *service.UserService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(userSvc *service.UserService) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

// Register godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "User fields"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	if missing := req.Missing(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(missing, ", ") + " must be in the request body"})
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(),
		*req.FirstName, *req.LastName, *req.Username, *req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A user with that username and/or email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

// GetToken godoc
// @Summary      Issue a bearer token
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  map[string]string
// @Router       /token [get]
func (h *AuthHandler) GetToken(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	token, err := h.userSvc.IssueToken(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Me godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}
