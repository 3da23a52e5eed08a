// Package mocks provides hand-written test doubles for the storage
// interfaces. Each method delegates to an overridable func field so a test
// can script exactly the behavior it needs.
package mocks

import (
	"context"

	"blogapi/internal/post"
)

type MockPostStorage struct {
	CreateFn       func(ctx context.Context, userID uint, in post.Input) (*post.Post, error)
	ListFn         func(ctx context.Context, f post.Filter) ([]*post.Post, error)
	GetByIDFn      func(ctx context.Context, viewerID, id uint) (*post.Post, error)
	UpdateFn       func(ctx context.Context, userID, id uint, in post.Input) (*post.Post, error)
	DeleteFn       func(ctx context.Context, userID, id uint) error
	ListByAuthorFn func(ctx context.Context, userID uint) ([]*post.Post, error)
}

func (m *MockPostStorage) Create(ctx context.Context, userID uint, in post.Input) (*post.Post, error) {
	return m.CreateFn(ctx, userID, in)
}

func (m *MockPostStorage) List(ctx context.Context, f post.Filter) ([]*post.Post, error) {
	return m.ListFn(ctx, f)
}

func (m *MockPostStorage) GetByID(ctx context.Context, viewerID, id uint) (*post.Post, error) {
	return m.GetByIDFn(ctx, viewerID, id)
}

func (m *MockPostStorage) Update(ctx context.Context, userID, id uint, in post.Input) (*post.Post, error) {
	return m.UpdateFn(ctx, userID, id, in)
}

func (m *MockPostStorage) Delete(ctx context.Context, userID, id uint) error {
	return m.DeleteFn(ctx, userID, id)
}

func (m *MockPostStorage) ListByAuthor(ctx context.Context, userID uint) ([]*post.Post, error) {
	return m.ListByAuthorFn(ctx, userID)
}
