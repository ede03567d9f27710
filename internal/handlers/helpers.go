package handlers

import (
	"net/http"
	"strconv"
	"strings"

	dom "github.com/kokafor1/capstone-backend/internal/domain"
	"github.com/kokafor1/capstone-backend/internal/dto"

	"github.com/gin-gonic/gin"
)

// bindJSON rejects non-JSON bodies and binds into dst. Responds with 400 and
// returns false on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if ct := c.ContentType(); !strings.HasPrefix(ct, "application/json") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your content-type must be application/json"})
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Username:    u.Username,
		Email:       u.Email,
		DateCreated: u.DateCreated,
	}
}

func factToResponse(f dom.DogFact) dto.FactResponse {
	return dto.FactResponse{
		ID:     f.ID,
		Title:  f.Title,
		Fact:   f.Fact,
		UserID: f.UserID,
		User:   userToResponse(f.User),
	}
}

func factsToResponses(list []dom.DogFact) []dto.FactResponse {
	out := make([]dto.FactResponse, len(list))
	for i := range list {
		out[i] = factToResponse(list[i])
	}
	return out
}

func commentToResponse(c dom.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:          c.ID,
		Body:        c.Body,
		DateCreated: c.DateCreated,
		FactID:      c.FactID,
		User:        userToResponse(c.User),
	}
}
