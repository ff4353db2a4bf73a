package domain

import "time"

type BookingType string

const (
	// BookingApp is a self-service booking made by a client.
	BookingApp BookingType = "app"
	// BookingManual is a walk-in entered by an admin; it carries no user.
	BookingManual BookingType = "manual"
)

type Booking struct {
	ID               int64       `json:"id"`
	Date             string      `json:"date"`
	StartTime        string      `json:"start_time"`
	EndTime          string      `json:"end_time"`
	DurationMinutes  int         `json:"duration_minutes"`
	BookingType      BookingType `json:"booking_type"`
	BranchID         int64       `json:"branch_id"`
	BranchName       string      `json:"branch_name"`
	UserID           *int64      `json:"user_id,omitempty"`
	UserName         string      `json:"user_name,omitempty"`
	ManualClientName string      `json:"manual_client_name,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

// OwnedBy reports whether the booking belongs to the given user.
func (b *Booking) OwnedBy(userID int64) bool {
	return b.UserID != nil && *b.UserID == userID
}

// SessionsOverlap reports whether two half-open minute intervals
// [aStart,aEnd) and [bStart,bEnd) intersect. Touching endpoints do not
// overlap. A single trainer runs one session at a time across all branches,
// so the predicate takes no branch argument.
func SessionsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
