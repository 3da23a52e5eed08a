package user

import "context"

// User is the API-facing representation of an account. Password fields are
// never part of it.
type User struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RegisterInput carries the signup form. Password equality and uniqueness
// are validated by Register.
type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// UserStorage is implemented by the persistence layer.
type UserStorage interface {
	// Register creates an account with a bcrypt-hashed credential.
	Register(ctx context.Context, in RegisterInput) (*User, error)
	// Authenticate verifies username+password and returns the account.
	Authenticate(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
}
