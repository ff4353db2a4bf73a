package domain

import "time"

// AvailabilityBlock is an admin-declared span of time on a date at a branch
// during which sessions may be booked. Date is "YYYY-MM-DD", times are
// wall-clock "HH:MM" with no timezone. EndTime must be after StartTime.
// The same date/time range may exist at several branches at once; blocks are
// a capacity declaration, not a reservation record.
type AvailabilityBlock struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	BranchID  int64     `json:"branch_id"`
	CreatedAt time.Time `json:"created_at"`
}
