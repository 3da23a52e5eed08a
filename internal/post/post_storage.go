package post

import (
	"context"
	"time"
)

// Post is the API-facing representation of a post.
type Post struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Tags         []string  `json:"tags"`
	Author       string    `json:"author"`
	Published    bool      `json:"is_published"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Input carries the writable fields of a post. Published defaults to true
// when omitted.
type Input struct {
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	Tags      []string `json:"tags" binding:"required,min=1"`
	Published *bool    `json:"is_published"`
}

// Filter narrows a listing. AuthorUsername matches exactly, Title matches as
// a substring.
type Filter struct {
	AuthorUsername string
	Title          string
}

// PostStorage is implemented by the persistence layer. The acting user is
// always an explicit parameter; viewerID 0 means anonymous.
type PostStorage interface {
	Create(ctx context.Context, userID uint, in Input) (*Post, error)
	// List returns published posts only, newest first.
	List(ctx context.Context, f Filter) ([]*Post, error)
	// GetByID returns a published post, or an unpublished one when viewerID
	// is its author. Anything else reports not-found.
	GetByID(ctx context.Context, viewerID, id uint) (*Post, error)
	// Update and Delete report not-found for posts owned by someone else:
	// existence is not leaked to non-authors.
	Update(ctx context.Context, userID, id uint, in Input) (*Post, error)
	Delete(ctx context.Context, userID, id uint) error
	// ListByAuthor returns all of the author's posts, unpublished included.
	ListByAuthor(ctx context.Context, userID uint) ([]*Post, error)
}
