package repository

import (
	"context"
	"errors"
	"time"

	"coachbook/internal/domain"
	"coachbook/internal/pkg/timeutil"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrOverlap is returned when an insert would double-book the trainer,
// whether caught by the in-transaction check or by the idx_no_double_booking
// exclusion constraint on PostgreSQL.
var ErrOverlap = errors.New("booking interval overlaps an existing booking")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	Date             string    `gorm:"column:date;index"`
	StartMin         int       `gorm:"column:start_min"`
	EndMin           int       `gorm:"column:end_min"`
	DurationMin      int       `gorm:"column:duration_min"`
	BookingType      string    `gorm:"column:booking_type"`
	BranchID         int64     `gorm:"column:branch_id"`
	BranchName       string    `gorm:"column:branch_name"`
	UserID           *int64    `gorm:"column:user_id;index"`
	UserName         string    `gorm:"column:user_name"`
	ManualClientName string    `gorm:"column:manual_client_name"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:               m.ID,
		Date:             m.Date,
		StartTime:        timeutil.FormatClock(m.StartMin),
		EndTime:          timeutil.FormatClock(m.EndMin),
		DurationMinutes:  m.DurationMin,
		BookingType:      domain.BookingType(m.BookingType),
		BranchID:         m.BranchID,
		BranchName:       m.BranchName,
		UserID:           m.UserID,
		UserName:         m.UserName,
		ManualClientName: m.ManualClientName,
		CreatedAt:        m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) (bookingModel, error) {
	startMin, err := timeutil.ParseClock(b.StartTime)
	if err != nil {
		return bookingModel{}, err
	}
	endMin, err := timeutil.ParseClock(b.EndTime)
	if err != nil {
		return bookingModel{}, err
	}

	return bookingModel{
		ID:               b.ID,
		Date:             b.Date,
		StartMin:         startMin,
		EndMin:           endMin,
		DurationMin:      b.DurationMinutes,
		BookingType:      string(b.BookingType),
		BranchID:         b.BranchID,
		BranchName:       b.BranchName,
		UserID:           b.UserID,
		UserName:         b.UserName,
		ManualClientName: b.ManualClientName,
		CreatedAt:        b.CreatedAt,
	}, nil
}

// CreateIfFree re-runs the overlap check and inserts within one transaction,
// so two concurrent requests for the same interval cannot both land. On
// PostgreSQL the exclusion constraint backstops the check as well.
func (r *BookingRepository) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	m, err := toBookingModel(b)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&bookingModel{}).
			Where("date = ? AND start_min < ? AND end_min > ?", m.Date, m.EndMin, m.StartMin).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlap
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		if isOverlapConstraintErr(err) {
			return ErrOverlap
		}
		return err
	}

	*b = *toDomainBooking(m)
	return nil
}

func isOverlapConstraintErr(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 23P01 exclusion_violation, 23505 unique_violation
	return (pgErr.Code == "23P01" || pgErr.Code == "23505") &&
		pgErr.ConstraintName == "idx_no_double_booking"
}

// CountOverlapping counts bookings on date whose half-open minute interval
// intersects [startMin, endMin), across all branches. excludeID skips one
// booking for update/replace flows; pass 0 to check everything.
func (r *BookingRepository) CountOverlapping(ctx context.Context, date string, startMin, endMin int, excludeID int64) (int64, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("date = ? AND start_min < ? AND end_min > ?", date, endMin, startMin)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var cnt int64
	if tx := q.Count(&cnt); tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	return r.List(ctx, &date, nil)
}

// List returns bookings filtered by date and/or user, ordered by date and
// start time.
func (r *BookingRepository) List(ctx context.Context, date *string, userID *int64) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).Order("date, start_min")
	if date != nil {
		q = q.Where("date = ?", *date)
	}
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var ms []bookingModel
	if tx := q.Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BranchTypeCount is one dashboard aggregation row.
type BranchTypeCount struct {
	BranchID    int64  `gorm:"column:branch_id"`
	BranchName  string `gorm:"column:branch_name"`
	BookingType string `gorm:"column:booking_type"`
	Count       int64  `gorm:"column:cnt"`
}

func (r *BookingRepository) StatsForDate(ctx context.Context, date string) ([]BranchTypeCount, error) {
	var rows []BranchTypeCount
	q := `
SELECT branch_id, branch_name, booking_type, COUNT(1) AS cnt
FROM bookings
WHERE date = ?
GROUP BY branch_id, branch_name, booking_type
ORDER BY branch_id, booking_type
`
	tx := r.db.WithContext(ctx).Raw(q, date).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
