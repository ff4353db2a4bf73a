package auth

import (
	"context"

	"coachbook/internal/domain"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID int64, name, role string) (string, error)
}
