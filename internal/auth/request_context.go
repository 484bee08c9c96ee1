package auth

import (
	"context"
)

type contextKey string

var userClaimsKey contextKey = "user_claims"

func SetUserClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaims(ctx context.Context) *Claims {
	val := ctx.Value(userClaimsKey)
	if claims, ok := val.(*Claims); ok {
		return claims
	}
	return nil
}

// UserIDPtr returns the caller's id for audit columns, or nil when anonymous.
func UserIDPtr(ctx context.Context) *uint {
	claims := GetUserClaims(ctx)
	if claims == nil {
		return nil
	}
	id := claims.UserID
	return &id
}
