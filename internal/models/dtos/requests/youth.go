package requests

import (
	"dare/enterprisehub/internal/constants"
	gormModels "dare/enterprisehub/internal/models/gorm"
)

type CreateYouthRequest struct {
	UserID            *uint                 `json:"userId" validate:"omitempty,gt=0"`
	FirstName         string                `json:"firstName" validate:"required,notblank,max=100"`
	LastName          string                `json:"lastName" validate:"required,notblank,max=100"`
	DateOfBirth       *Date                 `json:"dateOfBirth"`
	Gender            constants.Gender      `json:"gender" validate:"omitempty,gender"`
	NationalID        *string               `json:"nationalId" validate:"omitempty,max=50"`
	PhoneNumber       string                `json:"phoneNumber" validate:"omitempty,max=30"`
	Email             string                `json:"email" validate:"omitempty,email"`
	District          constants.District    `json:"district" validate:"required,district"`
	Subcounty         string                `json:"subcounty" validate:"max=100"`
	Village           string                `json:"village" validate:"max=100"`
	EducationLevel    string                `json:"educationLevel" validate:"max=100"`
	Skills            gormModels.StringList `json:"skills"`
	TrainingStatus    string                `json:"trainingStatus" validate:"max=50"`
	ProgramStatus     string                `json:"programStatus" validate:"max=50"`
	DareModel         *constants.DareModel  `json:"dareModel" validate:"omitempty,dare_model"`
	ProfilePictureURL string                `json:"profilePictureUrl" validate:"omitempty,http_url"`
}

type UpdateYouthRequest struct {
	UserID            *uint                  `json:"userId" validate:"omitempty,gt=0"`
	FirstName         *string                `json:"firstName" validate:"omitempty,notblank,max=100"`
	LastName          *string                `json:"lastName" validate:"omitempty,notblank,max=100"`
	DateOfBirth       *Date                  `json:"dateOfBirth"`
	Gender            *constants.Gender      `json:"gender" validate:"omitempty,gender"`
	NationalID        *string                `json:"nationalId" validate:"omitempty,max=50"`
	PhoneNumber       *string                `json:"phoneNumber" validate:"omitempty,max=30"`
	Email             *string                `json:"email" validate:"omitempty,email"`
	District          *constants.District    `json:"district" validate:"omitempty,district"`
	Subcounty         *string                `json:"subcounty" validate:"omitempty,max=100"`
	Village           *string                `json:"village" validate:"omitempty,max=100"`
	EducationLevel    *string                `json:"educationLevel" validate:"omitempty,max=100"`
	Skills            *gormModels.StringList `json:"skills"`
	TrainingStatus    *string                `json:"trainingStatus" validate:"omitempty,max=50"`
	ProgramStatus     *string                `json:"programStatus" validate:"omitempty,max=50"`
	DareModel         *constants.DareModel   `json:"dareModel" validate:"omitempty,dare_model"`
	ProfilePictureURL *string                `json:"profilePictureUrl" validate:"omitempty,http_url"`
	Version           *int                   `json:"version" validate:"omitempty,gt=0"`
}

type YouthFilter struct {
	District       constants.District
	DareModel      constants.DareModel
	TrainingStatus string
	Search         string
	Limit          int
	Offset         int
}
