package postgres

import (
	"context"
	"fmt"

	"blogapi/internal/apperr"
	"blogapi/internal/comment"
	"blogapi/models"

	"github.com/jinzhu/gorm"
)

type CommentPostgresStorage struct{}

func NewCommentPostgresStorage() *CommentPostgresStorage {
	return &CommentPostgresStorage{}
}

func toComment(c *models.Comment) *comment.Comment {
	return &comment.Comment{
		ID:        c.ID,
		Content:   c.Content,
		User:      c.User.Username,
		PostID:    c.PostID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *CommentPostgresStorage) Create(ctx context.Context, userID, postID uint, content string) (*comment.Comment, error) {
	// Comments may only target published posts, the author's own included.
	var p models.Post
	err := DB.First(&p, postID).Error
	if gorm.IsRecordNotFoundError(err) || (err == nil && !p.Published) {
		return nil, fmt.Errorf("post %d: %w", postID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}

	c := &models.Comment{
		Content: content,
		PostID:  postID,
		UserID:  userID,
	}
	if err := DB.Create(c).Error; err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	if err := DB.First(&c.User, userID).Error; err != nil {
		return nil, fmt.Errorf("could not load comment author: %w", err)
	}
	return toComment(c), nil
}

func (s *CommentPostgresStorage) ListByPost(ctx context.Context, viewerID, postID uint) ([]*comment.Comment, error) {
	p, err := visiblePost(DB, viewerID, postID)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	err = DB.Where("post_id = ?", p.ID).
		Preload("User").
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not list comments: %w", err)
	}

	results := make([]*comment.Comment, 0, len(comments))
	for i := range comments {
		results = append(results, toComment(&comments[i]))
	}
	return results, nil
}

// commentOnPost loads a comment scoped to a visible post. A comment that
// exists but hangs off a different post reports not-found.
func commentOnPost(db *gorm.DB, viewerID, postID, commentID uint) (*models.Comment, error) {
	if _, err := visiblePost(db, viewerID, postID); err != nil {
		return nil, err
	}

	var c models.Comment
	err := db.Preload("User").First(&c, commentID).Error
	if gorm.IsRecordNotFoundError(err) || (err == nil && c.PostID != postID) {
		return nil, fmt.Errorf("comment %d: %w", commentID, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get comment: %w", err)
	}
	return &c, nil
}

func (s *CommentPostgresStorage) Get(ctx context.Context, viewerID, postID, commentID uint) (*comment.Comment, error) {
	c, err := commentOnPost(DB, viewerID, postID, commentID)
	if err != nil {
		return nil, err
	}
	return toComment(c), nil
}

func (s *CommentPostgresStorage) Update(ctx context.Context, userID, postID, commentID uint, content string) (*comment.Comment, error) {
	c, err := commentOnPost(DB, userID, postID, commentID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("comment %d belongs to another user: %w", commentID, apperr.ErrForbidden)
	}

	err = DB.Model(&models.Comment{}).Where("id = ?", commentID).Update("content", content).Error
	if err != nil {
		return nil, fmt.Errorf("could not update comment: %w", err)
	}
	c.Content = content
	return toComment(c), nil
}

func (s *CommentPostgresStorage) Delete(ctx context.Context, userID, postID, commentID uint) error {
	c, err := commentOnPost(DB, userID, postID, commentID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return fmt.Errorf("comment %d belongs to another user: %w", commentID, apperr.ErrForbidden)
	}

	if err := DB.Delete(c).Error; err != nil {
		return fmt.Errorf("could not delete comment: %w", err)
	}
	return nil
}

func (s *CommentPostgresStorage) ListByUser(ctx context.Context, userID uint) ([]*comment.Comment, error) {
	var comments []models.Comment
	err := DB.Where("user_id = ?", userID).
		Preload("User").
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not list comments by user: %w", err)
	}

	results := make([]*comment.Comment, 0, len(comments))
	for i := range comments {
		results = append(results, toComment(&comments[i]))
	}
	return results, nil
}
