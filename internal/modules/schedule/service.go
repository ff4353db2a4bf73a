package schedule

import (
	"context"
	"errors"
	"fmt"

	"coachbook/internal/domain"
	"coachbook/internal/pkg/timeutil"

	"gorm.io/gorm"
)

type Service struct {
	blocks   BlockRepository
	bookings BookingReader
	branches BranchReader

	sessionMinutes int
	stepMinutes    int
}

func NewService(blocks BlockRepository, bookings BookingReader, branches BranchReader, sessionMinutes, stepMinutes int) *Service {
	return &Service{
		blocks:         blocks,
		bookings:       bookings,
		branches:       branches,
		sessionMinutes: sessionMinutes,
		stepMinutes:    stepMinutes,
	}
}

func (s *Service) ListBlocks(ctx context.Context, date *string, branchID *int64) ([]domain.AvailabilityBlock, error) {
	if date != nil {
		if err := timeutil.ValidateDate(*date); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	return s.blocks.List(ctx, date, branchID)
}

// CreateBlocks applies one start/end range to every (date, branch) pair of
// the request. Only active branches accept new blocks; the whole bulk action
// is validated before anything is written.
func (s *Service) CreateBlocks(ctx context.Context, req CreateBlocksRequest) ([]domain.AvailabilityBlock, error) {
	startMin, err := timeutil.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	endMin, err := timeutil.ParseClock(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if endMin <= startMin {
		return nil, fmt.Errorf("%w: end_time must be after start_time", ErrValidation)
	}

	for _, d := range req.Dates {
		if err := timeutil.ValidateDate(d); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	for _, branchID := range req.BranchIDs {
		branch, err := s.branches.GetByID(ctx, branchID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown branch %d", ErrValidation, branchID)
		}
		if err != nil {
			return nil, err
		}
		if !branch.IsActive {
			return nil, fmt.Errorf("%w: branch %d is inactive", ErrValidation, branchID)
		}
	}

	blocks := make([]domain.AvailabilityBlock, 0, len(req.Dates)*len(req.BranchIDs))
	for _, d := range req.Dates {
		for _, branchID := range req.BranchIDs {
			blocks = append(blocks, domain.AvailabilityBlock{
				Date:      d,
				StartTime: req.StartTime,
				EndTime:   req.EndTime,
				BranchID:  branchID,
			})
		}
	}

	return s.blocks.CreateBatch(ctx, blocks)
}

// DeleteBlock removes a block unless any booking of the block's date
// intersects its span. The check ignores the booking's branch on purpose:
// the trainer is exclusive across branches, so any booking inside the span
// depends on some block covering it.
func (s *Service) DeleteBlock(ctx context.Context, id int64) error {
	block, err := s.blocks.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	blockStart, err := timeutil.ParseClock(block.StartTime)
	if err != nil {
		return err
	}
	blockEnd, err := timeutil.ParseClock(block.EndTime)
	if err != nil {
		return err
	}

	bookings, err := s.bookings.ListByDate(ctx, block.Date)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		bStart, err := timeutil.ParseClock(b.StartTime)
		if err != nil {
			return err
		}
		bEnd, err := timeutil.ParseClock(b.EndTime)
		if err != nil {
			return err
		}
		if domain.SessionsOverlap(blockStart, blockEnd, bStart, bEnd) {
			return ErrBlockInUse
		}
	}

	if err := s.blocks.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ListSlots recomputes the bookable start times for a date fresh on every
// call; nothing is cached. An empty result is a valid outcome, not an error.
func (s *Service) ListSlots(ctx context.Context, date string, branchID *int64) ([]Slot, error) {
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if err := timeutil.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	blocks, err := s.blocks.List(ctx, &date, branchID)
	if err != nil {
		return nil, err
	}

	// Bookings are fetched for the whole date, never filtered by branch: the
	// trainer handles one session at a time across all locations.
	bookings, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	branches, err := s.branches.List(ctx, false)
	if err != nil {
		return nil, err
	}
	branchNames := make(map[int64]string, len(branches))
	for _, b := range branches {
		branchNames[b.ID] = b.Name
	}

	return GenerateSlots(blocks, bookings, branchNames, s.sessionMinutes, s.stepMinutes)
}
