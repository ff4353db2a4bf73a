package booking

import (
	"context"

	"coachbook/internal/domain"
)

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	CreateIfFree(ctx context.Context, b *domain.Booking) error
	CountOverlapping(ctx context.Context, date string, startMin, endMin int, excludeID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, date *string, userID *int64) ([]domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// BranchReader resolves the branch a booking targets
type BranchReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
}
