package repository

import (
	"context"
	"time"

	"coachbook/internal/domain"
	"coachbook/internal/pkg/timeutil"

	"gorm.io/gorm"
)

type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

type blockModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Date      string    `gorm:"column:date;index"`
	StartMin  int       `gorm:"column:start_min"`
	EndMin    int       `gorm:"column:end_min"`
	BranchID  int64     `gorm:"column:branch_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (blockModel) TableName() string { return "availability_blocks" }

func toDomainBlock(m blockModel) *domain.AvailabilityBlock {
	return &domain.AvailabilityBlock{
		ID:        m.ID,
		Date:      m.Date,
		StartTime: timeutil.FormatClock(m.StartMin),
		EndTime:   timeutil.FormatClock(m.EndMin),
		BranchID:  m.BranchID,
		CreatedAt: m.CreatedAt,
	}
}

func toBlockModel(b *domain.AvailabilityBlock) (blockModel, error) {
	startMin, err := timeutil.ParseClock(b.StartTime)
	if err != nil {
		return blockModel{}, err
	}
	endMin, err := timeutil.ParseClock(b.EndTime)
	if err != nil {
		return blockModel{}, err
	}

	return blockModel{
		ID:        b.ID,
		Date:      b.Date,
		StartMin:  startMin,
		EndMin:    endMin,
		BranchID:  b.BranchID,
		CreatedAt: b.CreatedAt,
	}, nil
}

func (r *BlockRepository) Create(ctx context.Context, b *domain.AvailabilityBlock) error {
	m, err := toBlockModel(b)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBlock(m)
	return nil
}

// CreateBatch inserts all blocks in one transaction; either the whole bulk
// admin action lands or none of it does.
func (r *BlockRepository) CreateBatch(ctx context.Context, blocks []domain.AvailabilityBlock) ([]domain.AvailabilityBlock, error) {
	out := make([]domain.AvailabilityBlock, 0, len(blocks))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range blocks {
			m, err := toBlockModel(&b)
			if err != nil {
				return err
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			out = append(out, *toDomainBlock(m))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BlockRepository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error) {
	var m blockModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBlock(m), nil
}

// List returns blocks optionally filtered by date and branch, in insertion
// order. Slot generation iterates blocks in exactly this order.
func (r *BlockRepository) List(ctx context.Context, date *string, branchID *int64) ([]domain.AvailabilityBlock, error) {
	q := r.db.WithContext(ctx).Model(&blockModel{}).Order("id")
	if date != nil {
		q = q.Where("date = ?", *date)
	}
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}

	var ms []blockModel
	if tx := q.Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.AvailabilityBlock, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBlock(m))
	}
	return out, nil
}

func (r *BlockRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&blockModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BlockRepository) CountForDate(ctx context.Context, date string) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&blockModel{}).Where("date = ?", date).Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
