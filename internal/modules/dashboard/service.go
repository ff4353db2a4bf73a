package dashboard

import (
	"context"
	"errors"
	"fmt"

	"coachbook/internal/domain"
	"coachbook/internal/pkg/timeutil"
	"coachbook/internal/repository"
)

var ErrValidation = errors.New("validation error")

// BookingStats aggregates bookings per branch and type
type BookingStats interface {
	StatsForDate(ctx context.Context, date string) ([]repository.BranchTypeCount, error)
}

// BlockCounter counts declared blocks
type BlockCounter interface {
	CountForDate(ctx context.Context, date string) (int64, error)
}

type Service struct {
	bookings BookingStats
	blocks   BlockCounter
}

func NewService(bookings BookingStats, blocks BlockCounter) *Service {
	return &Service{bookings: bookings, blocks: blocks}
}

type BranchStats struct {
	BranchID   int64  `json:"branch_id"`
	BranchName string `json:"branch_name"`
	Bookings   int64  `json:"bookings"`
}

type DayStats struct {
	Date           string        `json:"date"`
	TotalBookings  int64         `json:"total_bookings"`
	AppBookings    int64         `json:"app_bookings"`
	ManualBookings int64         `json:"manual_bookings"`
	Blocks         int64         `json:"blocks"`
	PerBranch      []BranchStats `json:"per_branch"`
}

// StatsForDate backs the admin dashboard screen. Pure read, no mutation.
func (s *Service) StatsForDate(ctx context.Context, date string) (*DayStats, error) {
	if err := timeutil.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	rows, err := s.bookings.StatsForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	blockCount, err := s.blocks.CountForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	stats := &DayStats{
		Date:      date,
		Blocks:    blockCount,
		PerBranch: make([]BranchStats, 0),
	}

	byBranch := make(map[int64]int)
	for _, r := range rows {
		stats.TotalBookings += r.Count
		switch domain.BookingType(r.BookingType) {
		case domain.BookingManual:
			stats.ManualBookings += r.Count
		default:
			stats.AppBookings += r.Count
		}

		if idx, ok := byBranch[r.BranchID]; ok {
			stats.PerBranch[idx].Bookings += r.Count
		} else {
			byBranch[r.BranchID] = len(stats.PerBranch)
			stats.PerBranch = append(stats.PerBranch, BranchStats{
				BranchID:   r.BranchID,
				BranchName: r.BranchName,
				Bookings:   r.Count,
			})
		}
	}

	return stats, nil
}
