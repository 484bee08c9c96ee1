package services

import (
	"context"
	"fmt"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/db/repositories"
	"dare/enterprisehub/internal/logging"
	"dare/enterprisehub/internal/metrics"
	"dare/enterprisehub/internal/models/dtos/requests"
	"dare/enterprisehub/internal/models/dtos/responses"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

const trackingEntity = "tracking record"

// TrackingService keeps the append-only performance ledger of a business.
type TrackingService struct {
	db           *gorm.DB
	repo         *repositories.TrackingRepository
	businessRepo *repositories.BusinessRepository
	metrics      *metrics.MetricsRegistry
}

func NewTrackingService(db *gorm.DB, m *metrics.MetricsRegistry) *TrackingService {
	return &TrackingService{
		db:           db,
		repo:         repositories.NewTrackingRepository(db),
		businessRepo: repositories.NewBusinessRepository(db),
		metrics:      m,
	}
}

// derivedValues are the client's optional echoes of server-computed fields.
type derivedValues struct {
	ProjectedProfit          *float64
	ActualProfit             *float64
	MonthlyRevenueEquivalent *float64
	TotalEmployees           *int
}

// deriveTracking computes the derived fields of rec and rejects any client
// echo that disagrees with them.
func deriveTracking(rec *gormModels.BusinessTracking, client derivedValues) error {
	m := rec.TrackingMetrics
	rec.ProjectedProfit = round2(m.ProjectedRevenue - m.ProjectedExpenditure)
	rec.ActualProfit = round2(m.ActualRevenue - m.ActualExpenditure)
	rec.MonthlyRevenueEquivalent = round2(m.ActualRevenue * rec.TrackingPeriod.MonthlyFactor())
	rec.TotalEmployees = m.PermanentMaleEmployees + m.PermanentFemaleEmployees +
		m.TemporaryMaleEmployees + m.TemporaryFemaleEmployees

	verr := &apperr.ValidationError{}
	if client.ProjectedProfit != nil && !floatsEqual(*client.ProjectedProfit, rec.ProjectedProfit) {
		verr.Add("projectedProfit", fmt.Sprintf("must equal projectedRevenue - projectedExpenditure (%.2f)", rec.ProjectedProfit))
	}
	if client.ActualProfit != nil && !floatsEqual(*client.ActualProfit, rec.ActualProfit) {
		verr.Add("actualProfit", fmt.Sprintf("must equal actualRevenue - actualExpenditure (%.2f)", rec.ActualProfit))
	}
	if client.MonthlyRevenueEquivalent != nil && !floatsEqual(*client.MonthlyRevenueEquivalent, rec.MonthlyRevenueEquivalent) {
		verr.Add("monthlyRevenueEquivalent", fmt.Sprintf("must equal actualRevenue converted to a month (%.2f)", rec.MonthlyRevenueEquivalent))
	}
	if client.TotalEmployees != nil && *client.TotalEmployees != rec.TotalEmployees {
		verr.Add("totalEmployees", fmt.Sprintf("must equal the sum of employee counts (%d)", rec.TotalEmployees))
	}
	if rec.PeriodEnd != nil && rec.PeriodEnd.Before(rec.PeriodStart) {
		verr.Add("periodEnd", "must not be before periodStart")
	}
	return verr.OrNil()
}

func (s *TrackingService) Record(ctx context.Context, businessID uint, recordedBy *uint, req *requests.RecordTrackingRequest) (*gormModels.BusinessTracking, error) {
	err := requireDates(validateRequest(req), map[string]*requests.Date{"periodStart": req.PeriodStart})
	if err != nil {
		return nil, err
	}
	if _, err := s.businessRepo.GetByID(ctx, businessID, false); err != nil {
		return nil, err
	}

	rec := &gormModels.BusinessTracking{
		BusinessID:     businessID,
		TrackingPeriod: req.TrackingPeriod,
		PeriodStart:    req.PeriodStart.Time,
		PeriodEnd:      req.PeriodEnd.TimePtr(),
		TrackingMetrics: gormModels.TrackingMetrics{
			ProjectedRevenue:         req.ProjectedRevenue,
			ActualRevenue:            req.ActualRevenue,
			ProjectedExpenditure:     req.ProjectedExpenditure,
			ActualExpenditure:        req.ActualExpenditure,
			PermanentMaleEmployees:   req.PermanentMaleEmployees,
			PermanentFemaleEmployees: req.PermanentFemaleEmployees,
			TemporaryMaleEmployees:   req.TemporaryMaleEmployees,
			TemporaryFemaleEmployees: req.TemporaryFemaleEmployees,
			KeyDecisions:             req.KeyDecisions,
			LessonsLearned:           req.LessonsLearned,
			NextSteps:                req.NextSteps,
			Challenges:               req.Challenges,
			Notes:                    req.Notes,
		},
		RecordedBy: recordedBy,
		Version:    1,
	}
	err = deriveTracking(rec, derivedValues{
		ProjectedProfit:          req.ProjectedProfit,
		ActualProfit:             req.ActualProfit,
		MonthlyRevenueEquivalent: req.MonthlyRevenueEquivalent,
		TotalEmployees:           req.TotalEmployees,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.metrics.TrackingEvent("recorded")
	return rec, nil
}

func (s *TrackingService) Get(ctx context.Context, id uint) (*gormModels.BusinessTracking, error) {
	return s.repo.GetByID(ctx, id, false)
}

// List returns a business's records, most recent period first.
func (s *TrackingService) List(ctx context.Context, businessID uint, limit, offset int) (*responses.Page[gormModels.BusinessTracking], error) {
	if err := s.businessRepo.Exists(ctx, businessID); err != nil {
		return nil, err
	}
	items, total, err := s.repo.ListByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	limit, offset = pageBounds(limit, offset)
	return &responses.Page[gormModels.BusinessTracking]{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *TrackingService) Summary(ctx context.Context, businessID uint) (*responses.TrackingSummary, error) {
	if err := s.businessRepo.Exists(ctx, businessID); err != nil {
		return nil, err
	}
	totals, err := s.repo.Totals(ctx, businessID)
	if err != nil {
		return nil, err
	}
	latest, err := s.repo.Latest(ctx, businessID)
	if err != nil {
		return nil, err
	}

	summary := &responses.TrackingSummary{
		BusinessID:        businessID,
		Records:           totals.Records,
		VerifiedRecords:   totals.Verified,
		UnverifiedRecords: totals.Records - totals.Verified,
		TotalRevenue:      round2(totals.TotalRevenue),
		TotalExpenditure:  round2(totals.TotalExpenditure),
		TotalProfit:       round2(totals.TotalProfit),
	}
	if latest != nil {
		summary.LatestEmployees = latest.TotalEmployees
	}
	return summary, nil
}

// Update edits an unverified record. Verified records are read-only.
func (s *TrackingService) Update(ctx context.Context, id uint, req *requests.UpdateTrackingRequest) (*gormModels.BusinessTracking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var rec *gormModels.BusinessTracking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		rec, err = repo.GetByID(ctx, id, true)
		if err != nil {
			return err
		}
		if rec.IsVerified {
			return &apperr.LockedError{Entity: trackingEntity, State: "verified"}
		}
		if err := checkVersion(req.Version, rec.Version); err != nil {
			return err
		}

		applyTrackingUpdate(rec, req)
		err = deriveTracking(rec, derivedValues{
			ProjectedProfit:          req.ProjectedProfit,
			ActualProfit:             req.ActualProfit,
			MonthlyRevenueEquivalent: req.MonthlyRevenueEquivalent,
			TotalEmployees:           req.TotalEmployees,
		})
		if err != nil {
			return err
		}

		prev := rec.Version
		rec.Version++
		return repo.SaveVersioned(ctx, rec, prev)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Verify marks the record verified. Verifying again keeps the first stamp.
func (s *TrackingService) Verify(ctx context.Context, id uint, verifierID uint) (*gormModels.BusinessTracking, error) {
	var (
		rec     *gormModels.BusinessTracking
		changed bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		rec, err = repo.GetByID(ctx, id, true)
		if err != nil {
			return err
		}
		if rec.IsVerified {
			return nil
		}

		now := time.Now().UTC()
		rec.IsVerified = true
		rec.VerifiedBy = &verifierID
		rec.VerificationDate = &now
		changed = true

		prev := rec.Version
		rec.Version++
		return repo.SaveVersioned(ctx, rec, prev)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.metrics.TrackingEvent("verified")
		logging.Info("Tracking record verified", "tracking_id", id, "verifier_id", verifierID)
	}
	return rec, nil
}

func applyTrackingUpdate(rec *gormModels.BusinessTracking, req *requests.UpdateTrackingRequest) {
	m := &rec.TrackingMetrics
	if req.PeriodEnd != nil {
		rec.PeriodEnd = req.PeriodEnd.TimePtr()
	}
	if req.ProjectedRevenue != nil {
		m.ProjectedRevenue = *req.ProjectedRevenue
	}
	if req.ActualRevenue != nil {
		m.ActualRevenue = *req.ActualRevenue
	}
	if req.ProjectedExpenditure != nil {
		m.ProjectedExpenditure = *req.ProjectedExpenditure
	}
	if req.ActualExpenditure != nil {
		m.ActualExpenditure = *req.ActualExpenditure
	}
	if req.PermanentMaleEmployees != nil {
		m.PermanentMaleEmployees = *req.PermanentMaleEmployees
	}
	if req.PermanentFemaleEmployees != nil {
		m.PermanentFemaleEmployees = *req.PermanentFemaleEmployees
	}
	if req.TemporaryMaleEmployees != nil {
		m.TemporaryMaleEmployees = *req.TemporaryMaleEmployees
	}
	if req.TemporaryFemaleEmployees != nil {
		m.TemporaryFemaleEmployees = *req.TemporaryFemaleEmployees
	}
	if req.KeyDecisions != nil {
		m.KeyDecisions = *req.KeyDecisions
	}
	if req.LessonsLearned != nil {
		m.LessonsLearned = *req.LessonsLearned
	}
	if req.NextSteps != nil {
		m.NextSteps = *req.NextSteps
	}
	if req.Challenges != nil {
		m.Challenges = *req.Challenges
	}
	if req.Notes != nil {
		m.Notes = *req.Notes
	}
}
