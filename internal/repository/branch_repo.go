package repository

import (
	"context"
	"time"

	"coachbook/internal/domain"

	"gorm.io/gorm"
)

type BranchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

type branchModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Address   string    `gorm:"column:address"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (branchModel) TableName() string { return "branches" }

func toDomainBranch(m branchModel) *domain.Branch {
	return &domain.Branch{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBranchModel(b *domain.Branch) branchModel {
	return branchModel{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r *BranchRepository) Create(ctx context.Context, b *domain.Branch) error {
	m := toBranchModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBranch(m)
	return nil
}

func (r *BranchRepository) Update(ctx context.Context, b *domain.Branch) error {
	m := toBranchModel(b)
	tx := r.db.WithContext(ctx).Model(&branchModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"name":       m.Name,
			"address":    m.Address,
			"is_active":  m.IsActive,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BranchRepository) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	var m branchModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBranch(m), nil
}

func (r *BranchRepository) List(ctx context.Context, activeOnly bool) ([]domain.Branch, error) {
	q := r.db.WithContext(ctx).Model(&branchModel{}).Order("id")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var ms []branchModel
	if tx := q.Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Branch, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBranch(m))
	}
	return out, nil
}

// Deactivate soft-deletes a branch. The row stays so that blocks and
// bookings referencing it remain valid.
func (r *BranchRepository) Deactivate(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&branchModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
