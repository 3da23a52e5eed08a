// Package api exposes the REST surface: account, post, comment and like
// endpoints on a gin engine. Handlers translate the HTTP request into a
// storage call with the caller passed explicitly, then map storage errors to
// one status code per error kind.
package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"blogapi/internal/apperr"
	"blogapi/internal/comment"
	"blogapi/internal/like"
	"blogapi/internal/post"
	"blogapi/internal/user"

	"github.com/gin-gonic/gin"
)

// Handler bundles the storage dependencies behind the routes.
type Handler struct {
	Users     user.UserStorage
	Posts     post.PostStorage
	Comments  comment.CommentStorage
	Likes     like.LikeStorage
	JWTSecret string
}

func respondError(c *gin.Context, err error) {
	status := apperr.Status(err)

	var fields apperr.FieldErrors
	if errors.As(err, &fields) {
		c.JSON(status, gin.H{"errors": fields})
		return
	}

	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// pathID parses a numeric path parameter. Non-numeric IDs behave like
// missing resources.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}
