package gorm

import (
	"dare/enterprisehub/internal/constants"
	"time"
)

// YouthProfile is a program participant, soft-deleted via IsDeleted.
type YouthProfile struct {
	ID                uint                 `gorm:"column:id;primaryKey" json:"id"`
	UserID            *uint                `gorm:"column:user_id;uniqueIndex" json:"userId,omitempty"`
	FirstName         string               `gorm:"column:first_name;size:100;not null" json:"firstName"`
	LastName          string               `gorm:"column:last_name;size:100;not null" json:"lastName"`
	DateOfBirth       *time.Time           `gorm:"column:date_of_birth" json:"dateOfBirth,omitempty"`
	Gender            constants.Gender     `gorm:"column:gender;size:10" json:"gender"`
	NationalID        *string              `gorm:"column:national_id;size:50" json:"nationalId,omitempty"`
	PhoneNumber       string               `gorm:"column:phone_number;size:30" json:"phoneNumber"`
	Email             string               `gorm:"column:email;size:200" json:"email"`
	District          constants.District   `gorm:"column:district;size:50;index;not null" json:"district"`
	Subcounty         string               `gorm:"column:subcounty;size:100" json:"subcounty"`
	Village           string               `gorm:"column:village;size:100" json:"village"`
	EducationLevel    string               `gorm:"column:education_level;size:100" json:"educationLevel"`
	Skills            StringList           `gorm:"column:skills" json:"skills"`
	TrainingStatus    string               `gorm:"column:training_status;size:50" json:"trainingStatus"`
	ProgramStatus     string               `gorm:"column:program_status;size:50" json:"programStatus"`
	DareModel         *constants.DareModel `gorm:"column:dare_model;size:30" json:"dareModel,omitempty"`
	ProfilePictureURL string               `gorm:"column:profile_picture_url" json:"profilePictureUrl,omitempty"`
	IsDeleted         bool                 `gorm:"column:is_deleted;default:false;index" json:"isDeleted"`
	Version           int                  `gorm:"column:version;not null;default:1" json:"version"`
	CreatedAt         time.Time            `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (YouthProfile) TableName() string {
	return "youth_profiles"
}

func (y YouthProfile) FullName() string {
	return y.FirstName + " " + y.LastName
}
