package mocks

import (
	"context"

	"blogapi/internal/like"
)

type MockLikeStorage struct {
	ToggleFn func(ctx context.Context, userID, postID uint) (like.ToggleResult, error)
}

func (m *MockLikeStorage) Toggle(ctx context.Context, userID, postID uint) (like.ToggleResult, error) {
	return m.ToggleFn(ctx, userID, postID)
}
