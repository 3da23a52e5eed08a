package comment

import (
	"context"
	"time"
)

// Comment is the API-facing representation of a comment.
type Comment struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	User      string    `json:"user"`
	PostID    uint      `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentStorage is implemented by the persistence layer. All reads are
// scoped to a post and honor its visibility (viewerID 0 = anonymous);
// mutation is restricted to the comment's own author.
type CommentStorage interface {
	// Create requires the target post to exist and be published.
	Create(ctx context.Context, userID, postID uint, content string) (*Comment, error)
	// ListByPost returns the post's comments ordered by creation time.
	ListByPost(ctx context.Context, viewerID, postID uint) ([]*Comment, error)
	// Get reports not-found when the comment does not belong to the stated post.
	Get(ctx context.Context, viewerID, postID, commentID uint) (*Comment, error)
	Update(ctx context.Context, userID, postID, commentID uint, content string) (*Comment, error)
	Delete(ctx context.Context, userID, postID, commentID uint) error
	// ListByUser returns all comments written by the user, for the dashboard.
	ListByUser(ctx context.Context, userID uint) ([]*Comment, error)
}
