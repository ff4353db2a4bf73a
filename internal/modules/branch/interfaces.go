package branch

import (
	"context"

	"coachbook/internal/domain"
)

// BranchRepository defines the interface for branch storage
type BranchRepository interface {
	Create(ctx context.Context, b *domain.Branch) error
	Update(ctx context.Context, b *domain.Branch) error
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Branch, error)
	Deactivate(ctx context.Context, id int64) error
}
