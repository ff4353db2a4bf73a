package booking

import (
	"context"
	"errors"
	"fmt"

	"coachbook/internal/domain"
	"coachbook/internal/pkg/timeutil"
	"coachbook/internal/repository"

	"gorm.io/gorm"
)

const minutesPerDay = 24 * 60

type Service struct {
	bookings BookingRepository
	branches BranchReader

	sessionMinutes int
}

func NewService(bookings BookingRepository, branches BranchReader, sessionMinutes int) *Service {
	return &Service{
		bookings:       bookings,
		branches:       branches,
		sessionMinutes: sessionMinutes,
	}
}

// HasConflict reports whether [startTime, endTime) on date intersects any
// existing booking, branch-independent. excludeID skips one booking for
// update/replace flows; pass 0 otherwise. This is the same half-open
// predicate the slot generator uses, so a slot it emitted books cleanly.
func (s *Service) HasConflict(ctx context.Context, date, startTime, endTime string, excludeID int64) (bool, error) {
	startMin, err := timeutil.ParseClock(startTime)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	endMin, err := timeutil.ParseClock(endTime)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	cnt, err := s.bookings.CountOverlapping(ctx, date, startMin, endMin, excludeID)
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// CreateBooking computes the end time from the fixed session duration, runs
// the collision guard and persists. The guard and insert share one
// transaction in the repository, and PostgreSQL carries an exclusion
// constraint besides, so a conflict can never produce a partial write.
func (s *Service) CreateBooking(ctx context.Context, caller Identity, req CreateBookingRequest) (*domain.Booking, error) {
	if err := timeutil.ValidateDate(req.Date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	startMin, err := timeutil.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	endMin := startMin + s.sessionMinutes
	if endMin > minutesPerDay {
		return nil, fmt.Errorf("%w: session does not fit in the day", ErrValidation)
	}

	branch, err := s.branches.GetByID(ctx, req.BranchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: unknown branch %d", ErrValidation, req.BranchID)
	}
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		Date:            req.Date,
		StartTime:       timeutil.FormatClock(startMin),
		EndTime:         timeutil.FormatClock(endMin),
		DurationMinutes: s.sessionMinutes,
		BranchID:        branch.ID,
		BranchName:      branch.Name,
	}

	if req.ManualClientName != "" {
		if !caller.IsAdmin() {
			return nil, ErrForbidden
		}
		b.BookingType = domain.BookingManual
		b.ManualClientName = req.ManualClientName
	} else {
		userID := caller.UserID
		b.BookingType = domain.BookingApp
		b.UserID = &userID
		b.UserName = caller.Name
	}

	conflict, err := s.HasConflict(ctx, b.Date, b.StartTime, b.EndTime, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotConflict
	}

	if err := s.bookings.CreateIfFree(ctx, b); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}
	return b, nil
}

// ListBookings returns bookings filtered by date and/or user. Non-admin
// callers are always scoped to their own bookings whatever filter they sent.
func (s *Service) ListBookings(ctx context.Context, caller Identity, date *string, userID *int64) ([]domain.Booking, error) {
	if date != nil {
		if err := timeutil.ValidateDate(*date); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	if !caller.IsAdmin() {
		own := caller.UserID
		userID = &own
	}
	return s.bookings.List(ctx, date, userID)
}

// DeleteBooking cancels a booking. Only the owning user or an admin may do
// it; blocks are untouched, so the interval becomes bookable again on the
// next slot computation.
func (s *Service) DeleteBooking(ctx context.Context, caller Identity, id int64) error {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !caller.IsAdmin() && !b.OwnedBy(caller.UserID) {
		return ErrForbidden
	}

	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
