package gorm

import (
	"dare/enterprisehub/internal/constants"
	"time"
)

type Makerspace struct {
	ID             uint               `gorm:"column:id;primaryKey" json:"id"`
	Name           string             `gorm:"column:name;size:200;not null" json:"name"`
	Address        string             `gorm:"column:address" json:"address"`
	District       constants.District `gorm:"column:district;size:50;index;not null" json:"district"`
	OperatingHours string             `gorm:"column:operating_hours;size:200" json:"operatingHours"`
	ContactPerson  string             `gorm:"column:contact_person;size:200" json:"contactPerson"`
	ContactPhone   string             `gorm:"column:contact_phone;size:30" json:"contactPhone"`
	ContactEmail   string             `gorm:"column:contact_email;size:200" json:"contactEmail"`
	Description    string             `gorm:"column:description" json:"description,omitempty"`
	IsActive       bool               `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Makerspace) TableName() string {
	return "makerspaces"
}

// BusinessMakerspaceAssignment links a business to a makerspace. At most one
// active row per business (partial unique index idx_makerspace_one_active).
type BusinessMakerspaceAssignment struct {
	ID             uint       `gorm:"column:id;primaryKey" json:"id"`
	BusinessID     uint       `gorm:"column:business_id;index;not null" json:"businessId"`
	MakerspaceID   uint       `gorm:"column:makerspace_id;index;not null" json:"makerspaceId"`
	AssignedDate   time.Time  `gorm:"column:assigned_date;not null" json:"assignedDate"`
	AssignedBy     *uint      `gorm:"column:assigned_by" json:"assignedBy,omitempty"`
	UnassignedDate *time.Time `gorm:"column:unassigned_date" json:"unassignedDate,omitempty"`
	IsActive       bool       `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	Makerspace *Makerspace      `gorm:"foreignKey:MakerspaceID" json:"makerspace,omitempty"`
	Business   *BusinessProfile `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}

func (BusinessMakerspaceAssignment) TableName() string {
	return "business_makerspace_assignments"
}
