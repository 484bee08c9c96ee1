package responses

import (
	gormModels "dare/enterprisehub/internal/models/gorm"
	"time"
)

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      gormModels.User `json:"user"`
}

type MeResponse struct {
	User        gormModels.User `json:"user"`
	Permissions []string        `json:"permissions"`
}
