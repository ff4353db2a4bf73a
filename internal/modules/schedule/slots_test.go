package schedule

import (
	"testing"

	"coachbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var branchNames = map[int64]string{1: "Downtown", 2: "Riverside"}

func block(id, branchID int64, date, start, end string) domain.AvailabilityBlock {
	return domain.AvailabilityBlock{ID: id, Date: date, StartTime: start, EndTime: end, BranchID: branchID}
}

func booked(date, start, end string) domain.Booking {
	return domain.Booking{Date: date, StartTime: start, EndTime: end, BranchID: 1}
}

func starts(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.StartTime)
	}
	return out
}

func TestGenerateSlots_TilesBlockAtStepGranularity(t *testing.T) {
	blocks := []domain.AvailabilityBlock{block(7, 1, "2026-01-05", "09:00", "11:00")}

	slots, err := GenerateSlots(blocks, nil, branchNames, 90, 15)

	require.NoError(t, err)
	// 09:30+90 = 11:00 still fits; 09:45+90 = 11:15 does not.
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, starts(slots))
	assert.Equal(t, "10:30", slots[0].EndTime)
	assert.Equal(t, int64(7), slots[0].BlockID)
	assert.Equal(t, "Downtown", slots[0].BranchName)
}

func TestGenerateSlots_BookingEmptiesShortBlock(t *testing.T) {
	blocks := []domain.AvailabilityBlock{block(7, 1, "2026-01-05", "09:00", "11:00")}
	bookings := []domain.Booking{booked("2026-01-05", "09:00", "10:30")}

	slots, err := GenerateSlots(blocks, bookings, branchNames, 90, 15)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_TouchingEndpointsAreNotAConflict(t *testing.T) {
	blocks := []domain.AvailabilityBlock{block(1, 1, "2026-01-05", "07:30", "12:00")}
	// Booking occupies [09:00,10:30); a candidate ending exactly at 09:00
	// and one starting exactly at 10:30 must both survive.
	bookings := []domain.Booking{booked("2026-01-05", "09:00", "10:30")}

	slots, err := GenerateSlots(blocks, bookings, branchNames, 90, 15)

	require.NoError(t, err)
	assert.Contains(t, starts(slots), "07:30")
	assert.Contains(t, starts(slots), "10:30")
	assert.NotContains(t, starts(slots), "07:45") // would end 09:15, one-minute-plus overlap
	assert.NotContains(t, starts(slots), "09:15")
}

func TestGenerateSlots_BookingBlocksAllBranches(t *testing.T) {
	blocks := []domain.AvailabilityBlock{
		block(1, 1, "2026-01-05", "09:00", "10:30"),
		block(2, 2, "2026-01-05", "09:00", "10:30"),
	}
	// The booking sits at branch 1, but the trainer is exclusive, so the
	// identical branch-2 block is emptied as well.
	bookings := []domain.Booking{booked("2026-01-05", "09:00", "10:30")}

	slots, err := GenerateSlots(blocks, bookings, branchNames, 90, 15)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_EmitsInBlockOrder(t *testing.T) {
	blocks := []domain.AvailabilityBlock{
		block(2, 2, "2026-01-05", "12:00", "13:30"),
		block(1, 1, "2026-01-05", "09:00", "10:30"),
	}

	slots, err := GenerateSlots(blocks, nil, branchNames, 90, 15)

	require.NoError(t, err)
	require.Len(t, slots, 2)
	// Not globally time-sorted: block iteration order wins.
	assert.Equal(t, int64(2), slots[0].BlockID)
	assert.Equal(t, int64(1), slots[1].BlockID)
}

func TestGenerateSlots_BlockShorterThanSession(t *testing.T) {
	blocks := []domain.AvailabilityBlock{block(1, 1, "2026-01-05", "09:00", "10:00")}

	slots, err := GenerateSlots(blocks, nil, branchNames, 90, 15)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_CancelledBookingFreesInterval(t *testing.T) {
	blocks := []domain.AvailabilityBlock{block(7, 1, "2026-01-05", "09:00", "11:00")}
	bookings := []domain.Booking{booked("2026-01-05", "09:00", "10:30")}

	before, err := GenerateSlots(blocks, bookings, branchNames, 90, 15)
	require.NoError(t, err)
	assert.Empty(t, before)

	// Availability is derived, so dropping the booking restores the exact
	// interval without any stored state changing.
	after, err := GenerateSlots(blocks, nil, branchNames, 90, 15)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, starts(after))
}
