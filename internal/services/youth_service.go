package services

import (
	"context"

	"dare/enterprisehub/internal/db/repositories"
	"dare/enterprisehub/internal/models/dtos/requests"
	"dare/enterprisehub/internal/models/dtos/responses"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

type YouthService struct {
	db   *gorm.DB
	repo *repositories.YouthRepository
}

func NewYouthService(db *gorm.DB) *YouthService {
	return &YouthService{
		db:   db,
		repo: repositories.NewYouthRepository(db),
	}
}

func (s *YouthService) Create(ctx context.Context, req *requests.CreateYouthRequest) (*gormModels.YouthProfile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	youth := &gormModels.YouthProfile{
		UserID:            req.UserID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DateOfBirth:       req.DateOfBirth.TimePtr(),
		Gender:            req.Gender,
		NationalID:        req.NationalID,
		PhoneNumber:       req.PhoneNumber,
		Email:             req.Email,
		District:          req.District,
		Subcounty:         req.Subcounty,
		Village:           req.Village,
		EducationLevel:    req.EducationLevel,
		Skills:            req.Skills,
		TrainingStatus:    req.TrainingStatus,
		ProgramStatus:     req.ProgramStatus,
		DareModel:         req.DareModel,
		ProfilePictureURL: req.ProfilePictureURL,
		Version:           1,
	}
	if err := s.repo.Create(ctx, youth); err != nil {
		return nil, err
	}
	return youth, nil
}

func (s *YouthService) Get(ctx context.Context, id uint) (*gormModels.YouthProfile, error) {
	return s.repo.GetByID(ctx, id, false)
}

func (s *YouthService) List(ctx context.Context, f requests.YouthFilter) (*responses.Page[gormModels.YouthProfile], error) {
	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	limit, offset := pageBounds(f.Limit, f.Offset)
	return &responses.Page[gormModels.YouthProfile]{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *YouthService) Update(ctx context.Context, id uint, req *requests.UpdateYouthRequest) (*gormModels.YouthProfile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var youth *gormModels.YouthProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		youth, err = repo.GetByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := checkVersion(req.Version, youth.Version); err != nil {
			return err
		}

		applyYouthUpdate(youth, req)

		prev := youth.Version
		youth.Version++
		return repo.SaveVersioned(ctx, youth, prev)
	})
	if err != nil {
		return nil, err
	}
	return youth, nil
}

// Delete soft-deletes the profile. Deleting twice is not an error.
func (s *YouthService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Exists(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func applyYouthUpdate(y *gormModels.YouthProfile, req *requests.UpdateYouthRequest) {
	if req.UserID != nil {
		y.UserID = req.UserID
	}
	if req.FirstName != nil {
		y.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		y.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		y.DateOfBirth = req.DateOfBirth.TimePtr()
	}
	if req.Gender != nil {
		y.Gender = *req.Gender
	}
	if req.NationalID != nil {
		y.NationalID = req.NationalID
	}
	if req.PhoneNumber != nil {
		y.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		y.Email = *req.Email
	}
	if req.District != nil {
		y.District = *req.District
	}
	if req.Subcounty != nil {
		y.Subcounty = *req.Subcounty
	}
	if req.Village != nil {
		y.Village = *req.Village
	}
	if req.EducationLevel != nil {
		y.EducationLevel = *req.EducationLevel
	}
	if req.Skills != nil {
		y.Skills = *req.Skills
	}
	if req.TrainingStatus != nil {
		y.TrainingStatus = *req.TrainingStatus
	}
	if req.ProgramStatus != nil {
		y.ProgramStatus = *req.ProgramStatus
	}
	if req.DareModel != nil {
		y.DareModel = req.DareModel
	}
	if req.ProfilePictureURL != nil {
		y.ProfilePictureURL = *req.ProfilePictureURL
	}
}
