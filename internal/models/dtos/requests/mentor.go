package requests

import "dare/enterprisehub/internal/constants"

type CreateMentorRequest struct {
	UserID            uint                 `json:"userId" validate:"required,gt=0"`
	AssignedDistricts []constants.District `json:"assignedDistricts" validate:"required,min=1,unique,dive,district"`
	Specialization    string               `json:"specialization" validate:"max=200"`
	PhoneNumber       string               `json:"phoneNumber" validate:"max=30"`
	Email             string               `json:"email" validate:"omitempty,email"`
	Bio               string               `json:"bio"`
}

type UpdateMentorRequest struct {
	AssignedDistricts []constants.District `json:"assignedDistricts" validate:"omitempty,min=1,unique,dive,district"`
	Specialization    *string              `json:"specialization" validate:"omitempty,max=200"`
	PhoneNumber       *string              `json:"phoneNumber" validate:"omitempty,max=30"`
	Email             *string              `json:"email" validate:"omitempty,email"`
	Bio               *string              `json:"bio"`
	IsActive          *bool                `json:"isActive"`
	Version           *int                 `json:"version" validate:"omitempty,gt=0"`
}

type CreateMessageRequest struct {
	Sender   constants.MessageSender `json:"sender" validate:"required,message_sender"`
	Category string                  `json:"category" validate:"max=50"`
	Message  string                  `json:"message" validate:"required,notblank"`
}
