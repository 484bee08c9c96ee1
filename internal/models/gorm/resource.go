package gorm

import (
	"dare/enterprisehub/internal/constants"
	"time"
)

// ResourceFields is shared by makerspace and business inventory items.
type ResourceFields struct {
	Name            string                   `gorm:"column:name;size:200;not null" json:"name"`
	Category        string                   `gorm:"column:category;size:50" json:"category"`
	Description     string                   `gorm:"column:description" json:"description,omitempty"`
	Status          constants.ResourceStatus `gorm:"column:status;size:20;not null" json:"status"`
	Quantity        int                      `gorm:"column:quantity;not null" json:"quantity"`
	AcquisitionCost *float64                 `gorm:"column:acquisition_cost" json:"acquisitionCost,omitempty"`
	AcquisitionDate *time.Time               `gorm:"column:acquisition_date" json:"acquisitionDate,omitempty"`
}

// CostFields is one entry in a resource's cost history.
type CostFields struct {
	CostType    constants.CostType `gorm:"column:cost_type;size:20;not null" json:"costType"`
	Amount      float64            `gorm:"column:amount;not null" json:"amount"`
	CostDate    time.Time          `gorm:"column:cost_date;not null" json:"costDate"`
	Description string             `gorm:"column:description" json:"description,omitempty"`
	RecordedBy  *uint              `gorm:"column:recorded_by" json:"recordedBy,omitempty"`
}

type MakerspaceResource struct {
	ID             uint           `gorm:"column:id;primaryKey" json:"id"`
	MakerspaceID   uint           `gorm:"column:makerspace_id;index;not null" json:"makerspaceId"`
	ResourceFields `gorm:"embedded"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Costs []MakerspaceResourceCost `gorm:"foreignKey:ResourceID" json:"costs,omitempty"`
}

func (MakerspaceResource) TableName() string {
	return "makerspace_resources"
}

type MakerspaceResourceCost struct {
	ID         uint `gorm:"column:id;primaryKey" json:"id"`
	ResourceID uint `gorm:"column:resource_id;index;not null" json:"resourceId"`
	CostFields `gorm:"embedded"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (MakerspaceResourceCost) TableName() string {
	return "makerspace_resource_costs"
}

type BusinessResource struct {
	ID             uint           `gorm:"column:id;primaryKey" json:"id"`
	BusinessID     uint           `gorm:"column:business_id;index;not null" json:"businessId"`
	ResourceFields `gorm:"embedded"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Costs []BusinessResourceCost `gorm:"foreignKey:ResourceID" json:"costs,omitempty"`
}

func (BusinessResource) TableName() string {
	return "business_resources"
}

type BusinessResourceCost struct {
	ID         uint `gorm:"column:id;primaryKey" json:"id"`
	ResourceID uint `gorm:"column:resource_id;index;not null" json:"resourceId"`
	CostFields `gorm:"embedded"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (BusinessResourceCost) TableName() string {
	return "business_resource_costs"
}
