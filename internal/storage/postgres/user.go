package postgres

import (
	"context"
	"fmt"

	"blogapi/internal/apperr"
	"blogapi/internal/user"
	"blogapi/models"

	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"
)

type UserPostgresStorage struct{}

func NewUserPostgresStorage() *UserPostgresStorage {
	return &UserPostgresStorage{}
}

func toUser(u *models.User) *user.User {
	return &user.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (s *UserPostgresStorage) Register(ctx context.Context, in user.RegisterInput) (*user.User, error) {
	fields := apperr.FieldErrors{}
	if in.Password != in.Password2 {
		fields["password"] = "passwords do not match"
	}

	var existing models.User
	if err := DB.Where("username = ?", in.Username).First(&existing).Error; err == nil {
		fields["username"] = "a user with that username already exists"
	}
	if err := DB.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		fields["email"] = "a user with that email already exists"
	}
	if len(fields) > 0 {
		return nil, fields
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  string(hashed),
	}
	if err := DB.Create(u).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUser(u), nil
}

func (s *UserPostgresStorage) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	var u models.User
	err := DB.Where("username = ?", username).First(&u).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("invalid username or password: %w", apperr.ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid username or password: %w", apperr.ErrUnauthorized)
	}

	return toUser(&u), nil
}

func (s *UserPostgresStorage) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var u models.User
	err := DB.First(&u, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return toUser(&u), nil
}
