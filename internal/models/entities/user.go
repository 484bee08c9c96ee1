package entities

import "dare/enterprisehub/internal/constants"

// UserRow is the sqlx scan target used by maintenance tooling.
type UserRow struct {
	ID       uint               `db:"id"`
	Username string             `db:"username"`
	Role     constants.UserRole `db:"role"`
	IsActive bool               `db:"is_active"`
}
