package services

import (
	"context"
	"time"

	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/db/repositories"
	"dare/enterprisehub/internal/models/dtos/requests"
	"dare/enterprisehub/internal/models/dtos/responses"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

// ResourceService manages makerspace and business inventories. Both share
// the same field set and cost-history rules.
type ResourceService struct {
	makerspaceRepo *repositories.MakerspaceRepository
	businessRepo   *repositories.BusinessRepository
	msResources    *repositories.MakerspaceResourceRepository
	bizResources   *repositories.BusinessResourceRepository
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{
		makerspaceRepo: repositories.NewMakerspaceRepository(db),
		businessRepo:   repositories.NewBusinessRepository(db),
		msResources:    repositories.NewMakerspaceResourceRepository(db),
		bizResources:   repositories.NewBusinessResourceRepository(db),
	}
}

func newResourceFields(req *requests.CreateResourceRequest) gormModels.ResourceFields {
	f := gormModels.ResourceFields{
		Name:            req.Name,
		Category:        req.Category,
		Description:     req.Description,
		Status:          req.Status,
		Quantity:        1,
		AcquisitionCost: req.AcquisitionCost,
		AcquisitionDate: req.AcquisitionDate.TimePtr(),
	}
	if f.Status == "" {
		f.Status = constants.ResourceAvailable
	}
	if req.Quantity != nil {
		f.Quantity = *req.Quantity
	}
	return f
}

func applyResourceUpdate(f *gormModels.ResourceFields, req *requests.UpdateResourceRequest) {
	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Category != nil {
		f.Category = *req.Category
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Status != nil {
		f.Status = *req.Status
	}
	if req.Quantity != nil {
		f.Quantity = *req.Quantity
	}
	if req.AcquisitionCost != nil {
		f.AcquisitionCost = req.AcquisitionCost
	}
	if req.AcquisitionDate != nil {
		f.AcquisitionDate = req.AcquisitionDate.TimePtr()
	}
}

func newCostFields(req *requests.AddResourceCostRequest, recordedBy *uint) gormModels.CostFields {
	costDate := time.Now().UTC()
	if t := req.CostDate.TimePtr(); t != nil {
		costDate = *t
	}
	return gormModels.CostFields{
		CostType:    req.CostType,
		Amount:      req.Amount,
		CostDate:    costDate,
		Description: req.Description,
		RecordedBy:  recordedBy,
	}
}

func costSummary(resourceID uint, f gormModels.ResourceFields, history float64, entries int) *responses.ResourceCostSummary {
	acq := 0.0
	if f.AcquisitionCost != nil {
		acq = *f.AcquisitionCost
	}
	return &responses.ResourceCostSummary{
		ResourceID:      resourceID,
		AcquisitionCost: acq,
		HistoryTotal:    round2(history),
		TotalCost:       round2(acq + history),
		Entries:         entries,
	}
}

/* ---------- makerspace resources ---------- */

func (s *ResourceService) ListMakerspaceResources(ctx context.Context, makerspaceID uint) ([]gormModels.MakerspaceResource, error) {
	if _, err := s.makerspaceRepo.GetByID(ctx, makerspaceID); err != nil {
		return nil, err
	}
	return s.msResources.List(ctx, makerspaceID)
}

func (s *ResourceService) CreateMakerspaceResource(ctx context.Context, makerspaceID uint, req *requests.CreateResourceRequest) (*gormModels.MakerspaceResource, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.makerspaceRepo.GetByID(ctx, makerspaceID); err != nil {
		return nil, err
	}
	res := &gormModels.MakerspaceResource{MakerspaceID: makerspaceID, ResourceFields: newResourceFields(req)}
	if err := s.msResources.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ResourceService) GetMakerspaceResource(ctx context.Context, makerspaceID, id uint) (*gormModels.MakerspaceResource, error) {
	return s.msResources.Get(ctx, makerspaceID, id)
}

func (s *ResourceService) UpdateMakerspaceResource(ctx context.Context, makerspaceID, id uint, req *requests.UpdateResourceRequest) (*gormModels.MakerspaceResource, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	res, err := s.msResources.Get(ctx, makerspaceID, id)
	if err != nil {
		return nil, err
	}
	applyResourceUpdate(&res.ResourceFields, req)
	if err := s.msResources.Save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ResourceService) DeleteMakerspaceResource(ctx context.Context, makerspaceID, id uint) error {
	return s.msResources.Delete(ctx, makerspaceID, id)
}

// AddMakerspaceResourceCost appends a cost entry; the resource itself is unchanged.
func (s *ResourceService) AddMakerspaceResourceCost(ctx context.Context, makerspaceID, id uint, recordedBy *uint, req *requests.AddResourceCostRequest) (*gormModels.MakerspaceResourceCost, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.msResources.Get(ctx, makerspaceID, id); err != nil {
		return nil, err
	}
	cost := &gormModels.MakerspaceResourceCost{ResourceID: id, CostFields: newCostFields(req, recordedBy)}
	if err := s.msResources.AddCost(ctx, cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *ResourceService) MakerspaceResourceCostSummary(ctx context.Context, makerspaceID, id uint) (*responses.ResourceCostSummary, error) {
	res, err := s.msResources.Get(ctx, makerspaceID, id)
	if err != nil {
		return nil, err
	}
	history, entries, err := s.msResources.CostTotals(ctx, id)
	if err != nil {
		return nil, err
	}
	return costSummary(id, res.ResourceFields, history, entries), nil
}

/* ---------- business resources ---------- */

func (s *ResourceService) ListBusinessResources(ctx context.Context, businessID uint) ([]gormModels.BusinessResource, error) {
	if err := s.businessRepo.Exists(ctx, businessID); err != nil {
		return nil, err
	}
	return s.bizResources.List(ctx, businessID)
}

func (s *ResourceService) CreateBusinessResource(ctx context.Context, businessID uint, req *requests.CreateResourceRequest) (*gormModels.BusinessResource, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.businessRepo.GetByID(ctx, businessID, false); err != nil {
		return nil, err
	}
	res := &gormModels.BusinessResource{BusinessID: businessID, ResourceFields: newResourceFields(req)}
	if err := s.bizResources.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ResourceService) GetBusinessResource(ctx context.Context, businessID, id uint) (*gormModels.BusinessResource, error) {
	return s.bizResources.Get(ctx, businessID, id)
}

func (s *ResourceService) UpdateBusinessResource(ctx context.Context, businessID, id uint, req *requests.UpdateResourceRequest) (*gormModels.BusinessResource, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	res, err := s.bizResources.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	applyResourceUpdate(&res.ResourceFields, req)
	if err := s.bizResources.Save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ResourceService) DeleteBusinessResource(ctx context.Context, businessID, id uint) error {
	return s.bizResources.Delete(ctx, businessID, id)
}

func (s *ResourceService) AddBusinessResourceCost(ctx context.Context, businessID, id uint, recordedBy *uint, req *requests.AddResourceCostRequest) (*gormModels.BusinessResourceCost, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.bizResources.Get(ctx, businessID, id); err != nil {
		return nil, err
	}
	cost := &gormModels.BusinessResourceCost{ResourceID: id, CostFields: newCostFields(req, recordedBy)}
	if err := s.bizResources.AddCost(ctx, cost); err != nil {
		return nil, err
	}
	return cost, nil
}

func (s *ResourceService) BusinessResourceCostSummary(ctx context.Context, businessID, id uint) (*responses.ResourceCostSummary, error) {
	res, err := s.bizResources.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	history, entries, err := s.bizResources.CostTotals(ctx, id)
	if err != nil {
		return nil, err
	}
	return costSummary(id, res.ResourceFields, history, entries), nil
}
