package mocks

import (
	"context"

	"blogapi/internal/comment"
)

type MockCommentStorage struct {
	CreateFn     func(ctx context.Context, userID, postID uint, content string) (*comment.Comment, error)
	ListByPostFn func(ctx context.Context, viewerID, postID uint) ([]*comment.Comment, error)
	GetFn        func(ctx context.Context, viewerID, postID, commentID uint) (*comment.Comment, error)
	UpdateFn     func(ctx context.Context, userID, postID, commentID uint, content string) (*comment.Comment, error)
	DeleteFn     func(ctx context.Context, userID, postID, commentID uint) error
	ListByUserFn func(ctx context.Context, userID uint) ([]*comment.Comment, error)
}

func (m *MockCommentStorage) Create(ctx context.Context, userID, postID uint, content string) (*comment.Comment, error) {
	return m.CreateFn(ctx, userID, postID, content)
}

func (m *MockCommentStorage) ListByPost(ctx context.Context, viewerID, postID uint) ([]*comment.Comment, error) {
	return m.ListByPostFn(ctx, viewerID, postID)
}

func (m *MockCommentStorage) Get(ctx context.Context, viewerID, postID, commentID uint) (*comment.Comment, error) {
	return m.GetFn(ctx, viewerID, postID, commentID)
}

func (m *MockCommentStorage) Update(ctx context.Context, userID, postID, commentID uint, content string) (*comment.Comment, error) {
	return m.UpdateFn(ctx, userID, postID, commentID, content)
}

func (m *MockCommentStorage) Delete(ctx context.Context, userID, postID, commentID uint) error {
	return m.DeleteFn(ctx, userID, postID, commentID)
}

func (m *MockCommentStorage) ListByUser(ctx context.Context, userID uint) ([]*comment.Comment, error) {
	return m.ListByUserFn(ctx, userID)
}
