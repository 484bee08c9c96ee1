package repositories

import (
	"context"
	"errors"
	"time"

	"dare/enterprisehub/internal/constants"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

// RelationshipRepository persists youth/business, mentor/business and
// business/makerspace links. Rows are never deleted; IsActive toggles.
type RelationshipRepository struct {
	db *gorm.DB
}

func NewRelationshipRepository(db *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{db: db}
}

func (r *RelationshipRepository) WithTx(tx *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{db: tx}
}

/* ---------- youth <-> business ---------- */

// FindYouthLink returns the link row regardless of IsActive, or nil.
func (r *RelationshipRepository) FindYouthLink(ctx context.Context, businessID, youthID uint) (*gormModels.BusinessYouthRelationship, error) {
	var rel gormModels.BusinessYouthRelationship
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND youth_id = ?", businessID, youthID).
		First(&rel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get youth link", "youth relationship", youthID, err)
	}
	return &rel, nil
}

// ActiveOwners lists the active owners of a business, earliest join date first.
func (r *RelationshipRepository) ActiveOwners(ctx context.Context, businessID uint) ([]gormModels.BusinessYouthRelationship, error) {
	var owners []gormModels.BusinessYouthRelationship
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND role = ? AND is_active = ?", businessID, constants.RelationshipOwner, true).
		Order("join_date ASC, created_at ASC").
		Find(&owners).Error
	if err != nil {
		return nil, translate("list owners", "youth relationship", businessID, err)
	}
	return owners, nil
}

func (r *RelationshipRepository) CreateYouthLink(ctx context.Context, rel *gormModels.BusinessYouthRelationship) error {
	err := r.db.WithContext(ctx).Omit("Youth", "Business").Create(rel).Error
	return translate("create youth link", "youth relationship", rel.YouthID, err)
}

func (r *RelationshipRepository) SaveYouthLink(ctx context.Context, rel *gormModels.BusinessYouthRelationship) error {
	err := r.db.WithContext(ctx).Omit("Youth", "Business").Save(rel).Error
	return translate("update youth link", "youth relationship", rel.YouthID, err)
}

func (r *RelationshipRepository) DeactivateYouthLink(ctx context.Context, businessID, youthID uint) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.BusinessYouthRelationship{}).
		Where("business_id = ? AND youth_id = ?", businessID, youthID).
		Update("is_active", false).Error
	return translate("deactivate youth link", "youth relationship", youthID, err)
}

func (r *RelationshipRepository) YouthOfBusiness(ctx context.Context, businessID uint, includeInactive bool) ([]gormModels.BusinessYouthRelationship, error) {
	q := r.db.WithContext(ctx).Preload("Youth").Where("business_id = ?", businessID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var rels []gormModels.BusinessYouthRelationship
	if err := q.Order("join_date ASC").Find(&rels).Error; err != nil {
		return nil, translate("list youth of business", "youth relationship", businessID, err)
	}
	return rels, nil
}

func (r *RelationshipRepository) BusinessesOfYouth(ctx context.Context, youthID uint, includeInactive bool) ([]gormModels.BusinessYouthRelationship, error) {
	q := r.db.WithContext(ctx).
		Preload("Business").
		Joins("JOIN business_profiles bp ON bp.id = business_youth_relationships.business_id AND bp.is_deleted = ?", false).
		Where("business_youth_relationships.youth_id = ?", youthID)
	if !includeInactive {
		q = q.Where("business_youth_relationships.is_active = ?", true)
	}
	var rels []gormModels.BusinessYouthRelationship
	if err := q.Order("business_youth_relationships.join_date ASC").Find(&rels).Error; err != nil {
		return nil, translate("list businesses of youth", "youth relationship", youthID, err)
	}
	return rels, nil
}

/* ---------- mentor <-> business ---------- */

func (r *RelationshipRepository) FindMentorLink(ctx context.Context, mentorID, businessID uint) (*gormModels.MentorBusinessRelationship, error) {
	var rel gormModels.MentorBusinessRelationship
	err := r.db.WithContext(ctx).
		Where("mentor_id = ? AND business_id = ?", mentorID, businessID).
		First(&rel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get mentor link", "mentorship", businessID, err)
	}
	return &rel, nil
}

func (r *RelationshipRepository) CreateMentorLink(ctx context.Context, rel *gormModels.MentorBusinessRelationship) error {
	err := r.db.WithContext(ctx).Omit("Mentor", "Business").Create(rel).Error
	return translate("create mentor link", "mentorship", rel.BusinessID, err)
}

func (r *RelationshipRepository) SaveMentorLink(ctx context.Context, rel *gormModels.MentorBusinessRelationship) error {
	err := r.db.WithContext(ctx).Omit("Mentor", "Business").Save(rel).Error
	return translate("update mentor link", "mentorship", rel.BusinessID, err)
}

func (r *RelationshipRepository) MentorsOfBusiness(ctx context.Context, businessID uint, includeInactive bool) ([]gormModels.MentorBusinessRelationship, error) {
	q := r.db.WithContext(ctx).Preload("Mentor").Preload("Mentor.User").Where("business_id = ?", businessID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var rels []gormModels.MentorBusinessRelationship
	if err := q.Order("assigned_date ASC").Find(&rels).Error; err != nil {
		return nil, translate("list mentors of business", "mentorship", businessID, err)
	}
	return rels, nil
}

func (r *RelationshipRepository) BusinessesOfMentor(ctx context.Context, mentorID uint, includeInactive bool) ([]gormModels.MentorBusinessRelationship, error) {
	q := r.db.WithContext(ctx).
		Preload("Business").
		Joins("JOIN business_profiles bp ON bp.id = mentor_business_relationships.business_id AND bp.is_deleted = ?", false).
		Where("mentor_business_relationships.mentor_id = ?", mentorID)
	if !includeInactive {
		q = q.Where("mentor_business_relationships.is_active = ?", true)
	}
	var rels []gormModels.MentorBusinessRelationship
	if err := q.Order("mentor_business_relationships.assigned_date ASC").Find(&rels).Error; err != nil {
		return nil, translate("list businesses of mentor", "mentorship", mentorID, err)
	}
	return rels, nil
}

/* ---------- business <-> makerspace ---------- */

// ActiveMakerspace returns the business's active assignment, or nil.
func (r *RelationshipRepository) ActiveMakerspace(ctx context.Context, businessID uint) (*gormModels.BusinessMakerspaceAssignment, error) {
	var a gormModels.BusinessMakerspaceAssignment
	err := r.db.WithContext(ctx).
		Preload("Makerspace").
		Where("business_id = ? AND is_active = ?", businessID, true).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get makerspace assignment", "makerspace assignment", businessID, err)
	}
	return &a, nil
}

func (r *RelationshipRepository) CreateMakerspaceAssignment(ctx context.Context, a *gormModels.BusinessMakerspaceAssignment) error {
	err := r.db.WithContext(ctx).Omit("Makerspace", "Business").Create(a).Error
	return translate("create makerspace assignment", "makerspace assignment", a.BusinessID, err)
}

// DeactivateMakerspaceAssignments closes every active assignment of the business
// and reports how many rows changed.
func (r *RelationshipRepository) DeactivateMakerspaceAssignments(ctx context.Context, businessID uint, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&gormModels.BusinessMakerspaceAssignment{}).
		Where("business_id = ? AND is_active = ?", businessID, true).
		Updates(map[string]any{"is_active": false, "unassigned_date": at})
	if res.Error != nil {
		return 0, translate("deactivate makerspace assignment", "makerspace assignment", businessID, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *RelationshipRepository) BusinessesOfMakerspace(ctx context.Context, makerspaceID uint, includeInactive bool) ([]gormModels.BusinessMakerspaceAssignment, error) {
	q := r.db.WithContext(ctx).
		Preload("Business").
		Joins("JOIN business_profiles bp ON bp.id = business_makerspace_assignments.business_id AND bp.is_deleted = ?", false).
		Where("business_makerspace_assignments.makerspace_id = ?", makerspaceID)
	if !includeInactive {
		q = q.Where("business_makerspace_assignments.is_active = ?", true)
	}
	var rows []gormModels.BusinessMakerspaceAssignment
	if err := q.Order("business_makerspace_assignments.assigned_date DESC").Find(&rows).Error; err != nil {
		return nil, translate("list businesses of makerspace", "makerspace assignment", makerspaceID, err)
	}
	return rows, nil
}

// DeactivateAllForBusiness closes every link of a business being soft-deleted.
func (r *RelationshipRepository) DeactivateAllForBusiness(ctx context.Context, businessID uint, at time.Time) error {
	db := r.db.WithContext(ctx)

	if err := db.Model(&gormModels.BusinessYouthRelationship{}).
		Where("business_id = ? AND is_active = ?", businessID, true).
		Update("is_active", false).Error; err != nil {
		return translate("deactivate youth links", "youth relationship", businessID, err)
	}
	if err := db.Model(&gormModels.MentorBusinessRelationship{}).
		Where("business_id = ? AND is_active = ?", businessID, true).
		Updates(map[string]any{"is_active": false, "unassigned_date": at}).Error; err != nil {
		return translate("deactivate mentor links", "mentorship", businessID, err)
	}
	_, err := r.DeactivateMakerspaceAssignments(ctx, businessID, at)
	return err
}
