package auth

import (
	"dare/enterprisehub/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the authenticated identity carried in a session token and on the
// request context.
type Claims struct {
	UserID   uint               `json:"uid"`
	Username string             `json:"usr"`
	Role     constants.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool { return c.Role == constants.RoleAdmin }

