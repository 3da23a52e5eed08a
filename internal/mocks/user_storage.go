package mocks

import (
	"context"

	"blogapi/internal/user"
)

type MockUserStorage struct {
	RegisterFn     func(ctx context.Context, in user.RegisterInput) (*user.User, error)
	AuthenticateFn func(ctx context.Context, username, password string) (*user.User, error)
	GetByIDFn      func(ctx context.Context, id uint) (*user.User, error)
}

func (m *MockUserStorage) Register(ctx context.Context, in user.RegisterInput) (*user.User, error) {
	return m.RegisterFn(ctx, in)
}

func (m *MockUserStorage) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	return m.AuthenticateFn(ctx, username, password)
}

func (m *MockUserStorage) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.GetByIDFn(ctx, id)
}
