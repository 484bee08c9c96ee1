package services

import (
	"context"

	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/db/repositories"
	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

type MakerspaceService struct {
	repo *repositories.MakerspaceRepository
}

func NewMakerspaceService(db *gorm.DB) *MakerspaceService {
	return &MakerspaceService{repo: repositories.NewMakerspaceRepository(db)}
}

func (s *MakerspaceService) Create(ctx context.Context, req *requests.CreateMakerspaceRequest) (*gormModels.Makerspace, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	ms := &gormModels.Makerspace{
		Name:           req.Name,
		Address:        req.Address,
		District:       req.District,
		OperatingHours: req.OperatingHours,
		ContactPerson:  req.ContactPerson,
		ContactPhone:   req.ContactPhone,
		ContactEmail:   req.ContactEmail,
		Description:    req.Description,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, ms); err != nil {
		return nil, err
	}
	return ms, nil
}

func (s *MakerspaceService) Get(ctx context.Context, id uint) (*gormModels.Makerspace, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MakerspaceService) List(ctx context.Context, district constants.District, includeInactive bool) ([]gormModels.Makerspace, error) {
	return s.repo.List(ctx, district, includeInactive)
}

func (s *MakerspaceService) Update(ctx context.Context, id uint, req *requests.UpdateMakerspaceRequest) (*gormModels.Makerspace, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	ms, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		ms.Name = *req.Name
	}
	if req.Address != nil {
		ms.Address = *req.Address
	}
	if req.District != nil {
		ms.District = *req.District
	}
	if req.OperatingHours != nil {
		ms.OperatingHours = *req.OperatingHours
	}
	if req.ContactPerson != nil {
		ms.ContactPerson = *req.ContactPerson
	}
	if req.ContactPhone != nil {
		ms.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		ms.ContactEmail = *req.ContactEmail
	}
	if req.Description != nil {
		ms.Description = *req.Description
	}
	if req.IsActive != nil {
		ms.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, ms); err != nil {
		return nil, err
	}
	return ms, nil
}

// Deactivate hides the makerspace from default listings. Existing
// assignments are left as they are.
func (s *MakerspaceService) Deactivate(ctx context.Context, id uint) error {
	ms, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	ms.IsActive = false
	return s.repo.Save(ctx, ms)
}
