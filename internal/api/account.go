package api

import (
	"net/http"

	"blogapi/internal/auth"
	"blogapi/internal/comment"
	"blogapi/internal/post"
	"blogapi/internal/user"

	"github.com/gin-gonic/gin"
)

// dashboardResponse nests the caller's own posts (drafts included) and
// comments under the account fields.
type dashboardResponse struct {
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	Posts     []*post.Post       `json:"posts"`
	Comments  []*comment.Comment `json:"comments"`
}

func (h *Handler) Signup(c *gin.Context) {
	var in user.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Users.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, u.ID, u.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) Dashboard(c *gin.Context) {
	userID := auth.CallerID(c)
	ctx := c.Request.Context()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	posts, err := h.Posts.ListByAuthor(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.Comments.ListByUser(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboardResponse{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Posts:     posts,
		Comments:  comments,
	})
}
