package branch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coachbook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	branches BranchRepository
}

func NewService(branches BranchRepository) *Service {
	return &Service{branches: branches}
}

// List returns active branches for clients; admins can request all of them.
func (s *Service) List(ctx context.Context, includeInactive bool) ([]domain.Branch, error) {
	return s.branches.List(ctx, !includeInactive)
}

func (s *Service) Create(ctx context.Context, req CreateBranchRequest) (*domain.Branch, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	b := &domain.Branch{
		Name:     name,
		Address:  strings.TrimSpace(req.Address),
		IsActive: true,
	}
	if err := s.branches.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateBranchRequest) (*domain.Branch, error) {
	b, err := s.branches.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		b.Name = name
	}
	if req.Address != nil {
		b.Address = strings.TrimSpace(*req.Address)
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := s.branches.Update(ctx, b); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Delete deactivates a branch. Rows referencing it stay valid; only new
// blocks stop being accepted for it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.branches.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
