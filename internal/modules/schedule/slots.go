package schedule

import (
	"coachbook/internal/domain"
	"coachbook/internal/pkg/timeutil"
)

// Slot is one bookable [start,end) interval of fixed session duration,
// derived from a block minus the day's bookings.
type Slot struct {
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BranchID   int64  `json:"branch_id"`
	BranchName string `json:"branch_name"`
	BlockID    int64  `json:"block_id"`
}

type interval struct {
	start int
	end   int
}

// GenerateSlots derives the bookable start times for one date. It is a pure
// projection over blocks and bookings; availability is never stored. For
// each block, candidate starts advance from the block's start by stepMin
// while the full session still fits before the block's end. A candidate
// survives when its half-open interval intersects no booking of the date,
// regardless of branch. Slots come out in block iteration order.
func GenerateSlots(blocks []domain.AvailabilityBlock, bookings []domain.Booking, branchNames map[int64]string, sessionMin, stepMin int) ([]Slot, error) {
	busy := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		start, err := timeutil.ParseClock(b.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := timeutil.ParseClock(b.EndTime)
		if err != nil {
			return nil, err
		}
		busy = append(busy, interval{start: start, end: end})
	}

	slots := make([]Slot, 0)
	for _, block := range blocks {
		blockStart, err := timeutil.ParseClock(block.StartTime)
		if err != nil {
			return nil, err
		}
		blockEnd, err := timeutil.ParseClock(block.EndTime)
		if err != nil {
			return nil, err
		}

		for start := blockStart; start+sessionMin <= blockEnd; start += stepMin {
			end := start + sessionMin
			if anyOverlap(busy, start, end) {
				continue
			}
			slots = append(slots, Slot{
				StartTime:  timeutil.FormatClock(start),
				EndTime:    timeutil.FormatClock(end),
				BranchID:   block.BranchID,
				BranchName: branchNames[block.BranchID],
				BlockID:    block.ID,
			})
		}
	}
	return slots, nil
}

func anyOverlap(busy []interval, start, end int) bool {
	for _, b := range busy {
		if domain.SessionsOverlap(start, end, b.start, b.end) {
			return true
		}
	}
	return false
}
