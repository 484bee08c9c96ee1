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
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

// RelationshipService manages youth, mentor and makerspace links of businesses.
// Each mutation runs in one transaction holding a row lock on the business.
type RelationshipService struct {
	db             *gorm.DB
	repo           *repositories.RelationshipRepository
	businessRepo   *repositories.BusinessRepository
	youthRepo      *repositories.YouthRepository
	mentorRepo     *repositories.MentorRepository
	makerspaceRepo *repositories.MakerspaceRepository
	metrics        *metrics.MetricsRegistry
}

func NewRelationshipService(db *gorm.DB, m *metrics.MetricsRegistry) *RelationshipService {
	return &RelationshipService{
		db:             db,
		repo:           repositories.NewRelationshipRepository(db),
		businessRepo:   repositories.NewBusinessRepository(db),
		youthRepo:      repositories.NewYouthRepository(db),
		mentorRepo:     repositories.NewMentorRepository(db),
		makerspaceRepo: repositories.NewMakerspaceRepository(db),
		metrics:        m,
	}
}

/* ---------- youth <-> business ---------- */

// AssignYouth inserts or reactivates a youth link. A fourth active owner is
// rejected, or replaces the earliest-joined owner under OwnerPolicyReplaceOldest.
func (s *RelationshipService) AssignYouth(ctx context.Context, businessID uint, req *requests.AssignYouthRequest) (*gormModels.BusinessYouthRelationship, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	policy := req.OwnerPolicy
	if policy == "" {
		policy = constants.OwnerPolicyReject
	}
	joinDate := time.Now().UTC()
	if t := req.JoinDate.TimePtr(); t != nil {
		joinDate = *t
	}

	var link *gormModels.BusinessYouthRelationship
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.businessRepo.WithTx(tx).GetByID(ctx, businessID, true); err != nil {
			return err
		}
		if _, err := s.youthRepo.WithTx(tx).GetByID(ctx, req.YouthID, false); err != nil {
			return err
		}

		repo := s.repo.WithTx(tx)
		existing, err := repo.FindYouthLink(ctx, businessID, req.YouthID)
		if err != nil {
			return err
		}

		alreadyOwner := existing != nil && existing.IsActive && existing.Role == constants.RelationshipOwner
		if req.Role == constants.RelationshipOwner && !alreadyOwner {
			owners, err := repo.ActiveOwners(ctx, businessID)
			if err != nil {
				return err
			}
			if len(owners) >= constants.MaxActiveOwners {
				if policy != constants.OwnerPolicyReplaceOldest {
					return &apperr.CapacityExceededError{Message: constants.MsgOwnerCapacity}
				}
				oldest := owners[0]
				if err := repo.DeactivateYouthLink(ctx, businessID, oldest.YouthID); err != nil {
					return err
				}
				logging.Info("Oldest owner replaced", "business_id", businessID, "youth_id", oldest.YouthID)
			}
		}

		if existing != nil && existing.IsActive && existing.Role == constants.RelationshipOwner && req.Role == constants.RelationshipMember {
			owners, err := repo.ActiveOwners(ctx, businessID)
			if err != nil {
				return err
			}
			if len(owners) <= constants.MinActiveOwners {
				return &apperr.CapacityExceededError{Message: constants.MsgLastOwner}
			}
		}

		if existing == nil {
			link = &gormModels.BusinessYouthRelationship{
				BusinessID: businessID,
				YouthID:    req.YouthID,
				Role:       req.Role,
				JoinDate:   joinDate,
				IsActive:   true,
			}
			return repo.CreateYouthLink(ctx, link)
		}

		if !existing.IsActive || req.JoinDate != nil {
			existing.JoinDate = joinDate
		}
		existing.Role = req.Role
		existing.IsActive = true
		link = existing
		return repo.SaveYouthLink(ctx, existing)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RelationshipChanged("youth", "assign")
	return link, nil
}

// UnassignYouth deactivates the link. It is idempotent and refuses to remove
// the last active owner.
func (s *RelationshipService) UnassignYouth(ctx context.Context, businessID, youthID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.businessRepo.WithTx(tx).GetByID(ctx, businessID, true); err != nil {
			return err
		}

		repo := s.repo.WithTx(tx)
		existing, err := repo.FindYouthLink(ctx, businessID, youthID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound("youth relationship", youthID)
		}
		if !existing.IsActive {
			return nil
		}

		if existing.Role == constants.RelationshipOwner {
			owners, err := repo.ActiveOwners(ctx, businessID)
			if err != nil {
				return err
			}
			if len(owners) <= constants.MinActiveOwners {
				return &apperr.CapacityExceededError{Message: constants.MsgLastOwner}
			}
		}
		return repo.DeactivateYouthLink(ctx, businessID, youthID)
	})
	if err != nil {
		return err
	}

	s.metrics.RelationshipChanged("youth", "unassign")
	return nil
}

func (s *RelationshipService) YouthOfBusiness(ctx context.Context, businessID uint, includeInactive bool) ([]gormModels.BusinessYouthRelationship, error) {
	if err := s.businessRepo.Exists(ctx, businessID); err != nil {
		return nil, err
	}
	return s.repo.YouthOfBusiness(ctx, businessID, includeInactive)
}

func (s *RelationshipService) BusinessesOfYouth(ctx context.Context, youthID uint, includeInactive bool) ([]gormModels.BusinessYouthRelationship, error) {
	if err := s.youthRepo.Exists(ctx, youthID); err != nil {
		return nil, err
	}
	return s.repo.BusinessesOfYouth(ctx, youthID, includeInactive)
}

/* ---------- mentor <-> business ---------- */

// AssignMentor inserts or reactivates the mentorship; reactivation keeps the
// single row and refreshes its assigned date.
func (s *RelationshipService) AssignMentor(ctx context.Context, businessID uint, req *requests.AssignMentorRequest) (*gormModels.MentorBusinessRelationship, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var link *gormModels.MentorBusinessRelationship
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		business, err := s.businessRepo.WithTx(tx).GetByID(ctx, businessID, true)
		if err != nil {
			return err
		}
		mentor, err := s.mentorRepo.WithTx(tx).GetByID(ctx, req.MentorID)
		if err != nil {
			return err
		}
		if !mentor.IsActive {
			return apperr.Invalid("mentorId", "mentor is not active")
		}
		if !mentor.CoversDistrict(business.District) {
			return apperr.Invalid("mentorId", fmt.Sprintf("mentor does not cover district %s", business.District))
		}

		repo := s.repo.WithTx(tx)
		existing, err := repo.FindMentorLink(ctx, req.MentorID, businessID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if existing == nil {
			link = &gormModels.MentorBusinessRelationship{
				MentorID:         req.MentorID,
				BusinessID:       businessID,
				AssignedDate:     now,
				IsActive:         true,
				MentorshipFocus:  req.MentorshipFocus,
				MeetingFrequency: req.MeetingFrequency,
				MentorshipGoals:  req.MentorshipGoals,
			}
			return repo.CreateMentorLink(ctx, link)
		}

		if !existing.IsActive {
			existing.AssignedDate = now
			existing.UnassignedDate = nil
		}
		existing.IsActive = true
		if req.MentorshipFocus != "" {
			existing.MentorshipFocus = req.MentorshipFocus
		}
		if req.MeetingFrequency != "" {
			existing.MeetingFrequency = req.MeetingFrequency
		}
		if req.MentorshipGoals != nil {
			existing.MentorshipGoals = req.MentorshipGoals
		}
		link = existing
		return repo.SaveMentorLink(ctx, existing)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RelationshipChanged("mentor", "assign")
	return link, nil
}

// UnassignMentor is idempotent: the row is kept and only deactivated once.
func (s *RelationshipService) UnassignMentor(ctx context.Context, businessID, mentorID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindMentorLink(ctx, mentorID, businessID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound("mentorship", mentorID)
		}
		if !existing.IsActive {
			return nil
		}
		now := time.Now().UTC()
		existing.IsActive = false
		existing.UnassignedDate = &now
		return repo.SaveMentorLink(ctx, existing)
	})
	if err != nil {
		return err
	}

	s.metrics.RelationshipChanged("mentor", "unassign")
	return nil
}

func (s *RelationshipService) UpdateMentorship(ctx context.Context, businessID, mentorID uint, req *requests.UpdateMentorshipRequest) (*gormModels.MentorBusinessRelationship, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var link *gormModels.MentorBusinessRelationship
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindMentorLink(ctx, mentorID, businessID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound("mentorship", mentorID)
		}

		if req.MentorshipFocus != nil {
			existing.MentorshipFocus = *req.MentorshipFocus
		}
		if req.MeetingFrequency != nil {
			existing.MeetingFrequency = *req.MeetingFrequency
		}
		if req.MentorshipGoals != nil {
			existing.MentorshipGoals = *req.MentorshipGoals
		}
		if req.LastMeetingDate != nil {
			existing.LastMeetingDate = req.LastMeetingDate.TimePtr()
		}
		if req.NextMeetingDate != nil {
			existing.NextMeetingDate = req.NextMeetingDate.TimePtr()
		}
		if req.ProgressRating != nil {
			existing.ProgressRating = req.ProgressRating
		}
		link = existing
		return repo.SaveMentorLink(ctx, existing)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (s *RelationshipService) MentorsOfBusiness(ctx context.Context, businessID uint, includeInactive bool) ([]gormModels.MentorBusinessRelationship, error) {
	if err := s.businessRepo.Exists(ctx, businessID); err != nil {
		return nil, err
	}
	return s.repo.MentorsOfBusiness(ctx, businessID, includeInactive)
}

func (s *RelationshipService) BusinessesOfMentor(ctx context.Context, mentorID uint, includeInactive bool) ([]gormModels.MentorBusinessRelationship, error) {
	if _, err := s.mentorRepo.GetByID(ctx, mentorID); err != nil {
		return nil, err
	}
	return s.repo.BusinessesOfMentor(ctx, mentorID, includeInactive)
}

/* ---------- business <-> makerspace ---------- */

// AssignMakerspace links the business to a makerspace. A business holds at
// most one active assignment; replacing it requires transfer.
func (s *RelationshipService) AssignMakerspace(ctx context.Context, businessID uint, assignedBy *uint, req *requests.AssignMakerspaceRequest) (*gormModels.BusinessMakerspaceAssignment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var assignment *gormModels.BusinessMakerspaceAssignment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.businessRepo.WithTx(tx).GetByID(ctx, businessID, true); err != nil {
			return err
		}
		ms, err := s.makerspaceRepo.WithTx(tx).GetByID(ctx, req.MakerspaceID)
		if err != nil {
			return err
		}
		if !ms.IsActive {
			return apperr.Invalid("makerspaceId", "makerspace is not active")
		}

		repo := s.repo.WithTx(tx)
		current, err := repo.ActiveMakerspace(ctx, businessID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if current != nil {
			if current.MakerspaceID == req.MakerspaceID {
				assignment = current
				return nil
			}
			if !req.Transfer {
				return apperr.Conflict(constants.MsgMakerspaceTaken)
			}
			if _, err := repo.DeactivateMakerspaceAssignments(ctx, businessID, now); err != nil {
				return err
			}
		}

		assignment = &gormModels.BusinessMakerspaceAssignment{
			BusinessID:   businessID,
			MakerspaceID: req.MakerspaceID,
			AssignedDate: now,
			AssignedBy:   assignedBy,
			IsActive:     true,
		}
		if err := repo.CreateMakerspaceAssignment(ctx, assignment); err != nil {
			return err
		}
		assignment.Makerspace = ms
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RelationshipChanged("makerspace", "assign")
	return assignment, nil
}

// UnassignMakerspace closes the active assignment, if any.
func (s *RelationshipService) UnassignMakerspace(ctx context.Context, businessID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.businessRepo.WithTx(tx).GetByID(ctx, businessID, true); err != nil {
			return err
		}
		_, err := s.repo.WithTx(tx).DeactivateMakerspaceAssignments(ctx, businessID, time.Now().UTC())
		return err
	})
	if err != nil {
		return err
	}

	s.metrics.RelationshipChanged("makerspace", "unassign")
	return nil
}

// ActiveMakerspace returns the current assignment or NotFound.
func (s *RelationshipService) ActiveMakerspace(ctx context.Context, businessID uint) (*gormModels.BusinessMakerspaceAssignment, error) {
	if err := s.businessRepo.Exists(ctx, businessID); err != nil {
		return nil, err
	}
	a, err := s.repo.ActiveMakerspace(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("makerspace assignment for business", businessID)
	}
	return a, nil
}

func (s *RelationshipService) BusinessesOfMakerspace(ctx context.Context, makerspaceID uint, includeInactive bool) ([]gormModels.BusinessMakerspaceAssignment, error) {
	if _, err := s.makerspaceRepo.GetByID(ctx, makerspaceID); err != nil {
		return nil, err
	}
	return s.repo.BusinessesOfMakerspace(ctx, makerspaceID, includeInactive)
}
