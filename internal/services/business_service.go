package services

import (
	"context"
	"fmt"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/db/repositories"
	"dare/enterprisehub/internal/logging"
	"dare/enterprisehub/internal/metrics"
	"dare/enterprisehub/internal/models/dtos/requests"
	"dare/enterprisehub/internal/models/dtos/responses"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

const weeksPerMonth = 4

type BusinessService struct {
	db        *gorm.DB
	repo      *repositories.BusinessRepository
	youthRepo *repositories.YouthRepository
	relRepo   *repositories.RelationshipRepository
	metrics   *metrics.MetricsRegistry
}

func NewBusinessService(db *gorm.DB, m *metrics.MetricsRegistry) *BusinessService {
	return &BusinessService{
		db:        db,
		repo:      repositories.NewBusinessRepository(db),
		youthRepo: repositories.NewYouthRepository(db),
		relRepo:   repositories.NewRelationshipRepository(db),
		metrics:   m,
	}
}

// CreateBusiness inserts the business and one Owner link per youth id in a
// single transaction. Any failure leaves neither behind.
func (s *BusinessService) CreateBusiness(ctx context.Context, req *requests.CreateBusinessRequest) (*gormModels.BusinessProfile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	monthly, err := reconcileMonthlyRevenue(req.ExpectedWeeklyRevenue, req.ExpectedMonthlyRevenue)
	if err != nil {
		return nil, err
	}

	business := &gormModels.BusinessProfile{
		BusinessName:           req.BusinessName,
		BusinessDescription:    req.BusinessDescription,
		District:               req.District,
		Subcounty:              req.Subcounty,
		Village:                req.Village,
		DareModel:              req.DareModel,
		RegistrationStatus:     req.RegistrationStatus,
		RegistrationNumber:     req.RegistrationNumber,
		EnterpriseType:         req.EnterpriseType,
		EnterpriseSize:         req.EnterpriseSize,
		Sector:                 req.Sector,
		BusinessObjectives:     req.BusinessObjectives,
		ShortTermGoals:         req.ShortTermGoals,
		SubPartnerNames:        req.SubPartnerNames,
		LogoURL:                req.LogoURL,
		StartDate:              req.StartDate.TimePtr(),
		ExpectedWeeklyRevenue:  req.ExpectedWeeklyRevenue,
		ExpectedMonthlyRevenue: monthly,
		TotalInvestment:        req.TotalInvestment,
		Version:                1,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := s.youthRepo.WithTx(tx).ExistingIDs(ctx, req.YouthIDs)
		if err != nil {
			return err
		}
		verr := &apperr.ValidationError{}
		for i, id := range req.YouthIDs {
			if !found[id] {
				verr.Add(fmt.Sprintf("youthIds[%d]", i), fmt.Sprintf("youth profile %d does not exist", id))
			}
		}
		if err := verr.OrNil(); err != nil {
			return err
		}

		if err := s.repo.WithTx(tx).Create(ctx, business); err != nil {
			return err
		}

		now := time.Now().UTC()
		relRepo := s.relRepo.WithTx(tx)
		for _, youthID := range req.YouthIDs {
			link := &gormModels.BusinessYouthRelationship{
				BusinessID: business.ID,
				YouthID:    youthID,
				Role:       constants.RelationshipOwner,
				JoinDate:   now,
				IsActive:   true,
			}
			if err := relRepo.CreateYouthLink(ctx, link); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.BusinessCreated()
	logging.Info("Business created", "business_id", business.ID, "owners", len(req.YouthIDs))

	return s.repo.GetWithYouth(ctx, business.ID)
}

func (s *BusinessService) Get(ctx context.Context, id uint) (*gormModels.BusinessProfile, error) {
	return s.repo.GetWithYouth(ctx, id)
}

func (s *BusinessService) List(ctx context.Context, f requests.BusinessFilter) (*responses.Page[gormModels.BusinessProfile], error) {
	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	limit, offset := pageBounds(f.Limit, f.Offset)
	return &responses.Page[gormModels.BusinessProfile]{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *BusinessService) Update(ctx context.Context, id uint, req *requests.UpdateBusinessRequest) (*gormModels.BusinessProfile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		business, err := repo.GetByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := checkVersion(req.Version, business.Version); err != nil {
			return err
		}

		applyBusinessUpdate(business, req)

		if req.ExpectedWeeklyRevenue != nil || req.ExpectedMonthlyRevenue != nil {
			monthly, err := reconcileMonthlyRevenue(business.ExpectedWeeklyRevenue, req.ExpectedMonthlyRevenue)
			if err != nil {
				return err
			}
			business.ExpectedMonthlyRevenue = monthly
		}

		prev := business.Version
		business.Version++
		return repo.SaveVersioned(ctx, business, prev)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetWithYouth(ctx, id)
}

// Delete soft-deletes the business and deactivates all of its relationships.
func (s *BusinessService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Exists(ctx, id); err != nil {
			return err
		}
		if err := repo.SoftDelete(ctx, id); err != nil {
			return err
		}
		return s.relRepo.WithTx(tx).DeactivateAllForBusiness(ctx, id, time.Now().UTC())
	})
}

// reconcileMonthlyRevenue derives the monthly figure from the weekly one and
// rejects a supplied monthly figure that disagrees with it.
func reconcileMonthlyRevenue(weekly, monthly *float64) (*float64, error) {
	if weekly == nil {
		return monthly, nil
	}
	derived := *weekly * weeksPerMonth
	if monthly != nil && !floatsEqual(*monthly, derived) {
		return nil, apperr.Invalid("expectedMonthlyRevenue",
			fmt.Sprintf("must equal expectedWeeklyRevenue x %d (%.2f)", weeksPerMonth, derived))
	}
	return &derived, nil
}

func applyBusinessUpdate(b *gormModels.BusinessProfile, req *requests.UpdateBusinessRequest) {
	if req.BusinessName != nil {
		b.BusinessName = *req.BusinessName
	}
	if req.BusinessDescription != nil {
		b.BusinessDescription = *req.BusinessDescription
	}
	if req.District != nil {
		b.District = *req.District
	}
	if req.Subcounty != nil {
		b.Subcounty = *req.Subcounty
	}
	if req.Village != nil {
		b.Village = *req.Village
	}
	if req.DareModel != nil {
		b.DareModel = *req.DareModel
	}
	if req.RegistrationStatus != nil {
		b.RegistrationStatus = *req.RegistrationStatus
	}
	if req.RegistrationNumber != nil {
		b.RegistrationNumber = *req.RegistrationNumber
	}
	if req.EnterpriseType != nil {
		b.EnterpriseType = *req.EnterpriseType
	}
	if req.EnterpriseSize != nil {
		b.EnterpriseSize = *req.EnterpriseSize
	}
	if req.Sector != nil {
		b.Sector = *req.Sector
	}
	if req.BusinessObjectives != nil {
		b.BusinessObjectives = *req.BusinessObjectives
	}
	if req.ShortTermGoals != nil {
		b.ShortTermGoals = *req.ShortTermGoals
	}
	if req.SubPartnerNames != nil {
		b.SubPartnerNames = *req.SubPartnerNames
	}
	if req.LogoURL != nil {
		b.LogoURL = *req.LogoURL
	}
	if req.StartDate != nil {
		b.StartDate = req.StartDate.TimePtr()
	}
	if req.ExpectedWeeklyRevenue != nil {
		b.ExpectedWeeklyRevenue = req.ExpectedWeeklyRevenue
	}
	if req.ExpectedMonthlyRevenue != nil {
		b.ExpectedMonthlyRevenue = req.ExpectedMonthlyRevenue
	}
	if req.TotalInvestment != nil {
		b.TotalInvestment = req.TotalInvestment
	}
}
