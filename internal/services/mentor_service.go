package services

import (
	"context"
	"strings"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/db/repositories"
	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

type MentorService struct {
	db       *gorm.DB
	repo     *repositories.MentorRepository
	userRepo *repositories.UserRepository
	relRepo  *repositories.RelationshipRepository
}

func NewMentorService(db *gorm.DB) *MentorService {
	return &MentorService{
		db:       db,
		repo:     repositories.NewMentorRepository(db),
		userRepo: repositories.NewUserRepository(db),
		relRepo:  repositories.NewRelationshipRepository(db),
	}
}

func districtList(ds []constants.District) gormModels.StringList {
	out := make(gormModels.StringList, 0, len(ds))
	for _, d := range ds {
		out = append(out, string(d))
	}
	return out
}

// Create links a mentor profile to an existing user; one profile per user.
func (s *MentorService) Create(ctx context.Context, req *requests.CreateMentorRequest) (*gormModels.Mentor, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	mentor := &gormModels.Mentor{
		UserID:            req.UserID,
		AssignedDistricts: districtList(req.AssignedDistricts),
		Specialization:    req.Specialization,
		PhoneNumber:       req.PhoneNumber,
		Email:             req.Email,
		Bio:               req.Bio,
		IsActive:          true,
		Version:           1,
	}
	if err := s.repo.Create(ctx, mentor); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, mentor.ID)
}

func (s *MentorService) Get(ctx context.Context, id uint) (*gormModels.Mentor, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns mentors, optionally only those covering district.
func (s *MentorService) List(ctx context.Context, district constants.District, includeInactive bool) ([]gormModels.Mentor, error) {
	if district != "" && !constants.Districts.Contains(district) {
		return nil, apperr.Invalid("district", "must be one of: "+strings.Join(constants.Districts.Strings(), ", "))
	}
	mentors, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	if district == "" {
		return mentors, nil
	}
	out := make([]gormModels.Mentor, 0, len(mentors))
	for _, m := range mentors {
		if m.CoversDistrict(district) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MentorService) Update(ctx context.Context, id uint, req *requests.UpdateMentorRequest) (*gormModels.Mentor, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		mentor, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := checkVersion(req.Version, mentor.Version); err != nil {
			return err
		}

		if req.AssignedDistricts != nil {
			mentor.AssignedDistricts = districtList(req.AssignedDistricts)
		}
		if req.Specialization != nil {
			mentor.Specialization = *req.Specialization
		}
		if req.PhoneNumber != nil {
			mentor.PhoneNumber = *req.PhoneNumber
		}
		if req.Email != nil {
			mentor.Email = *req.Email
		}
		if req.Bio != nil {
			mentor.Bio = *req.Bio
		}
		if req.IsActive != nil {
			mentor.IsActive = *req.IsActive
		}

		prev := mentor.Version
		mentor.Version++
		mentor.User = nil
		return repo.SaveVersioned(ctx, mentor, prev)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// PostMessage adds a message to a mentor/business conversation. The pair must
// have a mentorship, active or past.
func (s *MentorService) PostMessage(ctx context.Context, mentorID, businessID uint, req *requests.CreateMessageRequest) (*gormModels.MentorshipMessage, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.requireMentorship(ctx, mentorID, businessID); err != nil {
		return nil, err
	}

	msg := &gormModels.MentorshipMessage{
		MentorID:   mentorID,
		BusinessID: businessID,
		Sender:     req.Sender,
		Category:   req.Category,
		Message:    req.Message,
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MentorService) Messages(ctx context.Context, mentorID, businessID uint) ([]gormModels.MentorshipMessage, error) {
	if err := s.requireMentorship(ctx, mentorID, businessID); err != nil {
		return nil, err
	}
	return s.repo.Messages(ctx, mentorID, businessID)
}

func (s *MentorService) MarkMessageRead(ctx context.Context, mentorID, businessID, messageID uint) error {
	return s.repo.MarkRead(ctx, mentorID, businessID, messageID)
}

func (s *MentorService) requireMentorship(ctx context.Context, mentorID, businessID uint) error {
	link, err := s.relRepo.FindMentorLink(ctx, mentorID, businessID)
	if err != nil {
		return err
	}
	if link == nil {
		return apperr.NotFound("mentorship", mentorID)
	}
	return nil
}
