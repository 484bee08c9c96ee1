package requests

import "dare/enterprisehub/internal/constants"

type CreateMakerspaceRequest struct {
	Name           string             `json:"name" validate:"required,notblank,max=200"`
	Address        string             `json:"address"`
	District       constants.District `json:"district" validate:"required,district"`
	OperatingHours string             `json:"operatingHours" validate:"max=200"`
	ContactPerson  string             `json:"contactPerson" validate:"max=200"`
	ContactPhone   string             `json:"contactPhone" validate:"max=30"`
	ContactEmail   string             `json:"contactEmail" validate:"omitempty,email"`
	Description    string             `json:"description"`
}

type UpdateMakerspaceRequest struct {
	Name           *string             `json:"name" validate:"omitempty,notblank,max=200"`
	Address        *string             `json:"address"`
	District       *constants.District `json:"district" validate:"omitempty,district"`
	OperatingHours *string             `json:"operatingHours" validate:"omitempty,max=200"`
	ContactPerson  *string             `json:"contactPerson" validate:"omitempty,max=200"`
	ContactPhone   *string             `json:"contactPhone" validate:"omitempty,max=30"`
	ContactEmail   *string             `json:"contactEmail" validate:"omitempty,email"`
	Description    *string             `json:"description"`
	IsActive       *bool               `json:"isActive"`
}

type CreateResourceRequest struct {
	Name            string                   `json:"name" validate:"required,notblank,max=200"`
	Category        string                   `json:"category" validate:"max=50"`
	Description     string                   `json:"description"`
	Status          constants.ResourceStatus `json:"status" validate:"omitempty,resource_status"`
	Quantity        *int                     `json:"quantity" validate:"omitempty,gte=0"`
	AcquisitionCost *float64                 `json:"acquisitionCost" validate:"omitempty,gte=0"`
	AcquisitionDate *Date                    `json:"acquisitionDate"`
}

type UpdateResourceRequest struct {
	Name            *string                   `json:"name" validate:"omitempty,notblank,max=200"`
	Category        *string                   `json:"category" validate:"omitempty,max=50"`
	Description     *string                   `json:"description"`
	Status          *constants.ResourceStatus `json:"status" validate:"omitempty,resource_status"`
	Quantity        *int                      `json:"quantity" validate:"omitempty,gte=0"`
	AcquisitionCost *float64                  `json:"acquisitionCost" validate:"omitempty,gte=0"`
	AcquisitionDate *Date                     `json:"acquisitionDate"`
}

type AddResourceCostRequest struct {
	CostType    constants.CostType `json:"costType" validate:"required,cost_type"`
	Amount      float64            `json:"amount" validate:"gte=0"`
	CostDate    *Date              `json:"costDate"`
	Description string             `json:"description"`
}
