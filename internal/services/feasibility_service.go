package services

import (
	"context"
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

const assessmentEntity = "feasibility assessment"

// FeasibilityService drives assessments through Draft, In Progress,
// Completed and Reviewed. Aggregates are recomputed in the same transaction
// as every score change.
type FeasibilityService struct {
	db           *gorm.DB
	repo         *repositories.FeasibilityRepository
	businessRepo *repositories.BusinessRepository
	metrics      *metrics.MetricsRegistry
}

func NewFeasibilityService(db *gorm.DB, m *metrics.MetricsRegistry) *FeasibilityService {
	return &FeasibilityService{
		db:           db,
		repo:         repositories.NewFeasibilityRepository(db),
		businessRepo: repositories.NewBusinessRepository(db),
		metrics:      m,
	}
}

func toView(a *gormModels.FeasibilityAssessment) *responses.AssessmentView {
	return &responses.AssessmentView{FeasibilityAssessment: *a, Progress: assessmentProgress(a)}
}

func (s *FeasibilityService) Create(ctx context.Context, assessedBy *uint, req *requests.CreateAssessmentRequest) (*responses.AssessmentView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.businessRepo.GetByID(ctx, req.BusinessID, false); err != nil {
		return nil, err
	}

	a := &gormModels.FeasibilityAssessment{
		BusinessID:     req.BusinessID,
		AssessedBy:     assessedBy,
		AssessmentDate: req.AssessmentDate.TimePtr(),
		Status:         constants.FeasibilityDraft,
		Version:        1,
	}
	if a.AssessmentDate == nil {
		now := time.Now().UTC()
		a.AssessmentDate = &now
	}
	if err := applyScorePatch(&a.FeasibilityScores, req.Scores); err != nil {
		return nil, err
	}
	applyNarrative(&a.FeasibilityNarrative, req.NarrativePatch)
	computeAggregates(a)

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toView(a), nil
}

func (s *FeasibilityService) Get(ctx context.Context, id uint) (*responses.AssessmentView, error) {
	a, err := s.repo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return toView(a), nil
}

func (s *FeasibilityService) List(ctx context.Context, businessID uint, status constants.FeasibilityStatus, limit, offset int) (*responses.Page[responses.AssessmentView], error) {
	if status != "" && !constants.FeasibilityStatuses.Contains(status) {
		return nil, apperr.Invalid("status", "must be a feasibility status")
	}
	rows, total, err := s.repo.List(ctx, businessID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]responses.AssessmentView, 0, len(rows))
	for i := range rows {
		items = append(items, *toView(&rows[i]))
	}
	limit, offset = pageBounds(limit, offset)
	return &responses.Page[responses.AssessmentView]{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// Update edits scores, narrative and review comments. Scores and narrative
// are frozen once Completed (reopen first) and locked once Reviewed.
func (s *FeasibilityService) Update(ctx context.Context, id uint, req *requests.UpdateAssessmentRequest) (*responses.AssessmentView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var a *gormModels.FeasibilityAssessment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		a, err = repo.GetByID(ctx, id, true)
		if err != nil {
			return err
		}
		if err := checkVersion(req.Version, a.Version); err != nil {
			return err
		}

		touchesForm := len(req.Scores) > 0 || hasNarrative(req.NarrativePatch) || req.AssessmentDate != nil
		if touchesForm {
			switch a.Status {
			case constants.FeasibilityReviewed:
				return &apperr.LockedError{Entity: assessmentEntity, State: string(a.Status)}
			case constants.FeasibilityCompleted:
				return apperr.Conflict("assessment is Completed; move it back to In Progress before editing")
			}
		}

		if err := applyScorePatch(&a.FeasibilityScores, req.Scores); err != nil {
			return err
		}
		applyNarrative(&a.FeasibilityNarrative, req.NarrativePatch)
		if req.AssessmentDate != nil {
			a.AssessmentDate = req.AssessmentDate.TimePtr()
		}
		if req.ReviewComments != nil {
			a.ReviewComments = *req.ReviewComments
		}
		computeAggregates(a)

		prev := a.Version
		a.Version++
		return repo.SaveVersioned(ctx, a, prev)
	})
	if err != nil {
		return nil, err
	}
	return toView(a), nil
}

// Transition moves the assessment to status. Reaching Completed requires
// every required sub-score; Reviewed is only reachable through Review.
func (s *FeasibilityService) Transition(ctx context.Context, id uint, req *requests.AssessmentStatusRequest) (*responses.AssessmentView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.Status == constants.FeasibilityReviewed {
		return nil, apperr.Conflict("use the review action to mark an assessment Reviewed")
	}

	var (
		a    *gormModels.FeasibilityAssessment
		from constants.FeasibilityStatus
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		a, err = repo.GetByID(ctx, id, true)
		if err != nil {
			return err
		}
		from = a.Status
		if from == req.Status {
			return nil
		}
		if from == constants.FeasibilityReviewed {
			return &apperr.LockedError{Entity: assessmentEntity, State: string(from)}
		}
		if !canTransition(from, req.Status) {
			return apperr.Conflict("cannot move assessment from %s to %s", from, req.Status)
		}

		if req.Status == constants.FeasibilityCompleted {
			if missing := missingRequired(&a.FeasibilityScores); len(missing) > 0 {
				verr := &apperr.ValidationError{}
				for _, key := range missing {
					verr.Add("scores."+key, "is required before submission")
				}
				return verr
			}
			now := time.Now().UTC()
			a.SubmittedAt = &now
		}

		a.Status = req.Status
		computeAggregates(a)

		prev := a.Version
		a.Version++
		return repo.SaveVersioned(ctx, a, prev)
	})
	if err != nil {
		return nil, err
	}

	if from != req.Status {
		s.metrics.AssessmentTransition(string(from), string(req.Status))
		logging.Info("Assessment status changed", "assessment_id", id, "from", from, "to", req.Status)
	}
	return toView(a), nil
}

// Review stamps a Completed assessment as Reviewed.
func (s *FeasibilityService) Review(ctx context.Context, id uint, reviewerID uint, req *requests.ReviewAssessmentRequest) (*responses.AssessmentView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var a *gormModels.FeasibilityAssessment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		var err error
		a, err = repo.GetByID(ctx, id, true)
		if err != nil {
			return err
		}
		switch a.Status {
		case constants.FeasibilityCompleted:
		case constants.FeasibilityReviewed:
			return &apperr.LockedError{Entity: assessmentEntity, State: string(a.Status)}
		default:
			return apperr.Conflict("only Completed assessments can be reviewed (status is %s)", a.Status)
		}

		now := time.Now().UTC()
		a.Status = constants.FeasibilityReviewed
		a.ReviewedBy = &reviewerID
		a.ReviewDate = &now
		a.ReviewComments = req.ReviewComments

		prev := a.Version
		a.Version++
		return repo.SaveVersioned(ctx, a, prev)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AssessmentTransition(string(constants.FeasibilityCompleted), string(constants.FeasibilityReviewed))
	logging.Info("Assessment reviewed", "assessment_id", id, "reviewer_id", reviewerID)
	return toView(a), nil
}
