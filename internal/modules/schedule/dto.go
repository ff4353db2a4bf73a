package schedule

// CreateBlocksRequest is the admin bulk action: one time range applied to the
// cross product of dates and branches.
type CreateBlocksRequest struct {
	Dates     []string `json:"dates" binding:"required,min=1"`
	StartTime string   `json:"start_time" binding:"required"`
	EndTime   string   `json:"end_time" binding:"required"`
	BranchIDs []int64  `json:"branch_ids" binding:"required,min=1"`
}
