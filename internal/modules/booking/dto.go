package booking

import "coachbook/internal/domain"

// Identity is the authenticated caller, carried explicitly instead of any
// module-level token state.
type Identity struct {
	UserID int64
	Name   string
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == string(domain.RoleAdmin)
}

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	BranchID  int64  `json:"branch_id" binding:"required"`
	// BranchName is the client's denormalized copy; the stored name is
	// resolved from the branch record.
	BranchName string `json:"branch_name"`
	// ManualClientName switches the booking to the admin walk-in path.
	ManualClientName string `json:"manual_client_name"`
}
