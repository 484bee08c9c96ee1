package entities

// GroupCount is one row of a GROUP BY ... COUNT(*) query.
type GroupCount struct {
	Label string `db:"label"`
	Total int64  `db:"total"`
}

// VerificationCount is one row of the tracking verification breakdown.
type VerificationCount struct {
	IsVerified bool  `db:"is_verified"`
	Total      int64 `db:"total"`
}
