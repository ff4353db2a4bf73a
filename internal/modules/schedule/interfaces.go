package schedule

import (
	"context"

	"coachbook/internal/domain"
)

// BlockRepository defines the interface for availability block storage
type BlockRepository interface {
	CreateBatch(ctx context.Context, blocks []domain.AvailabilityBlock) ([]domain.AvailabilityBlock, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error)
	List(ctx context.Context, date *string, branchID *int64) ([]domain.AvailabilityBlock, error)
	Delete(ctx context.Context, id int64) error
}

// BookingReader is the read-only view of bookings the engine needs
type BookingReader interface {
	ListByDate(ctx context.Context, date string) ([]domain.Booking, error)
}

// BranchReader resolves branches for validation and slot denormalization
type BranchReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Branch, error)
}
