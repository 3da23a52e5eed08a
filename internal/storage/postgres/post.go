package postgres

import (
	"context"
	"fmt"

	"blogapi/internal/apperr"
	"blogapi/internal/post"
	"blogapi/models"

	"github.com/jinzhu/gorm"
)

type PostPostgresStorage struct{}

func NewPostPostgresStorage() *PostPostgresStorage {
	return &PostPostgresStorage{}
}

func toPost(p *models.Post) *post.Post {
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, t.Name)
	}

	return &post.Post{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		Tags:         tags,
		Author:       p.User.Username,
		Published:    p.Published,
		CommentCount: len(p.Comments),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// resolveTags finds or creates a Tag row per name.
func resolveTags(db *gorm.DB, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		err := db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error
		if err != nil {
			return nil, fmt.Errorf("could not resolve tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// visiblePost loads a post applying the visibility predicate: published, or
// owned by the viewer. Hidden and absent posts are indistinguishable.
func visiblePost(db *gorm.DB, viewerID, id uint) (*models.Post, error) {
	var p models.Post
	err := db.First(&p, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("post %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}
	if !p.Published && p.UserID != viewerID {
		return nil, fmt.Errorf("post %d: %w", id, apperr.ErrNotFound)
	}
	return &p, nil
}

// ownPost loads a post owned by userID. Posts owned by someone else report
// not-found, so existence is not leaked.
func ownPost(db *gorm.DB, userID, id uint) (*models.Post, error) {
	var p models.Post
	err := db.First(&p, id).Error
	if gorm.IsRecordNotFoundError(err) || (err == nil && p.UserID != userID) {
		return nil, fmt.Errorf("post %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}
	return &p, nil
}

func (s *PostPostgresStorage) Create(ctx context.Context, userID uint, in post.Input) (*post.Post, error) {
	var author models.User
	if err := DB.First(&author, userID).Error; err != nil {
		return nil, fmt.Errorf("author %d: %w", userID, apperr.ErrUnauthorized)
	}

	tags, err := resolveTags(DB, in.Tags)
	if err != nil {
		return nil, err
	}

	published := true
	if in.Published != nil {
		published = *in.Published
	}

	p := &models.Post{
		Title:     in.Title,
		Content:   in.Content,
		Published: published,
		UserID:    userID,
		Tags:      tags,
	}
	if err := DB.Create(p).Error; err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	p.User = author
	return toPost(p), nil
}

func (s *PostPostgresStorage) List(ctx context.Context, f post.Filter) ([]*post.Post, error) {
	q := DB.Model(&models.Post{}).Where("posts.published = ?", true)
	if f.AuthorUsername != "" {
		q = q.Joins("JOIN users ON users.id = posts.user_id").
			Where("users.username = ?", f.AuthorUsername)
	}
	if f.Title != "" {
		q = q.Where("posts.title LIKE ?", "%"+f.Title+"%")
	}

	var posts []models.Post
	err := q.Preload("User").Preload("Tags").Preload("Comments").
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not list posts: %w", err)
	}

	results := make([]*post.Post, 0, len(posts))
	for i := range posts {
		results = append(results, toPost(&posts[i]))
	}
	return results, nil
}

func (s *PostPostgresStorage) GetByID(ctx context.Context, viewerID, id uint) (*post.Post, error) {
	p, err := visiblePost(DB, viewerID, id)
	if err != nil {
		return nil, err
	}

	err = DB.Preload("User").Preload("Tags").Preload("Comments").First(p, id).Error
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}
	return toPost(p), nil
}

func (s *PostPostgresStorage) Update(ctx context.Context, userID, id uint, in post.Input) (*post.Post, error) {
	p, err := ownPost(DB, userID, id)
	if err != nil {
		return nil, err
	}

	tags, err := resolveTags(DB, in.Tags)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Content = in.Content
	if in.Published != nil {
		p.Published = *in.Published
	}

	if err := DB.Save(p).Error; err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}
	if err := DB.Model(p).Association("Tags").Replace(tags).Error; err != nil {
		return nil, fmt.Errorf("could not update tags: %w", err)
	}

	err = DB.Preload("User").Preload("Tags").Preload("Comments").First(p, id).Error
	if err != nil {
		return nil, fmt.Errorf("could not reload post: %w", err)
	}
	return toPost(p), nil
}

func (s *PostPostgresStorage) Delete(ctx context.Context, userID, id uint) error {
	p, err := ownPost(DB, userID, id)
	if err != nil {
		return err
	}

	// Comments and likes go with the post.
	tx := DB.Begin()
	if err := tx.Where("post_id = ?", p.ID).Delete(models.Comment{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete comments: %w", err)
	}
	if err := tx.Where("post_id = ?", p.ID).Delete(models.Like{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete likes: %w", err)
	}
	if err := tx.Delete(p).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete post: %w", err)
	}
	return tx.Commit().Error
}

func (s *PostPostgresStorage) ListByAuthor(ctx context.Context, userID uint) ([]*post.Post, error) {
	var posts []models.Post
	err := DB.Where("user_id = ?", userID).
		Preload("User").Preload("Tags").Preload("Comments").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not list posts by author: %w", err)
	}

	results := make([]*post.Post, 0, len(posts))
	for i := range posts {
		results = append(results, toPost(&posts[i]))
	}
	return results, nil
}
