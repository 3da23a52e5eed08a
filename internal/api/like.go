package api

import (
	"net/http"

	"blogapi/internal/auth"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ToggleLike(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.Likes.Toggle(c.Request.Context(), auth.CallerID(c), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": string(result)})
}
