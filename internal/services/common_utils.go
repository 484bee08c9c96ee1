package services

import (
	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
)

// checkVersion enforces optimistic concurrency when the caller sent a version.
func checkVersion(requested *int, stored int) error {
	if requested != nil && *requested != stored {
		return apperr.Conflict(constants.MsgStaleVersion)
	}
	return nil
}

func pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func floatsEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= constants.MoneyTolerance
}
