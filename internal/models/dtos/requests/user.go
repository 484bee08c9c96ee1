package requests

import "dare/enterprisehub/internal/constants"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	Username string             `json:"username" validate:"required,min=3,max=100"`
	Password string             `json:"password" validate:"required,min=8,max=72"`
	FullName string             `json:"fullName" validate:"max=200"`
	Email    string             `json:"email" validate:"omitempty,email"`
	Role     constants.UserRole `json:"role" validate:"required,user_role"`
	District constants.District `json:"district" validate:"omitempty,district"`
}

type UpdateUserRequest struct {
	FullName *string             `json:"fullName" validate:"omitempty,max=200"`
	Email    *string             `json:"email" validate:"omitempty,email"`
	Role     *constants.UserRole `json:"role" validate:"omitempty,user_role"`
	District *constants.District `json:"district" validate:"omitempty,district"`
	Password *string             `json:"password" validate:"omitempty,min=8,max=72"`
	IsActive *bool               `json:"isActive"`
}

type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=50"`
	Description string `json:"description"`
}

type GrantPermissionRequest struct {
	Resource string `json:"resource" validate:"required,max=50"`
	Action   string `json:"action" validate:"required,max=30"`
}
