package postgres

import (
	"context"
	"fmt"

	"blogapi/internal/apperr"
	"blogapi/internal/like"
	"blogapi/models"

	"github.com/jinzhu/gorm"
)

type LikePostgresStorage struct{}

func NewLikePostgresStorage() *LikePostgresStorage {
	return &LikePostgresStorage{}
}

// Toggle runs the exists→delete / absent→insert branches inside one
// transaction. The unique index on likes(user_id, post_id) is the final
// guard: two racing toggles cannot both insert.
func (s *LikePostgresStorage) Toggle(ctx context.Context, userID, postID uint) (like.ToggleResult, error) {
	tx := DB.Begin()
	if tx.Error != nil {
		return "", fmt.Errorf("could not begin transaction: %w", tx.Error)
	}

	var p models.Post
	err := tx.First(&p, postID).Error
	if gorm.IsRecordNotFoundError(err) || (err == nil && !p.Published) {
		tx.Rollback()
		return "", fmt.Errorf("post %d: %w", postID, apperr.ErrNotFound)
	}
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("could not get post: %w", err)
	}

	var l models.Like
	err = tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&l).Error
	switch {
	case err == nil:
		if err := tx.Delete(&l).Error; err != nil {
			tx.Rollback()
			return "", fmt.Errorf("could not remove like: %w", err)
		}
		if err := tx.Commit().Error; err != nil {
			return "", fmt.Errorf("could not commit: %w", err)
		}
		return like.Removed, nil

	case gorm.IsRecordNotFoundError(err):
		l = models.Like{UserID: userID, PostID: postID}
		if err := tx.Create(&l).Error; err != nil {
			tx.Rollback()
			return "", fmt.Errorf("could not add like: %w", err)
		}
		if err := tx.Commit().Error; err != nil {
			return "", fmt.Errorf("could not commit: %w", err)
		}
		return like.Added, nil

	default:
		tx.Rollback()
		return "", fmt.Errorf("could not look up like: %w", err)
	}
}
