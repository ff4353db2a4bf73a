package domain

import "time"

// Branch is a gym location. Branches are never hard-deleted: deactivation
// flips IsActive so that existing blocks and bookings keep a valid reference.
type Branch struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
