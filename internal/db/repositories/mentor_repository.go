package repositories

import (
	"context"

	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

type MentorRepository struct {
	db *gorm.DB
}

func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{db: db}
}

func (r *MentorRepository) WithTx(tx *gorm.DB) *MentorRepository {
	return &MentorRepository{db: tx}
}

func (r *MentorRepository) Create(ctx context.Context, mentor *gormModels.Mentor) error {
	err := r.db.WithContext(ctx).Omit("User").Create(mentor).Error
	return translate("create mentor", "mentor for user", mentor.UserID, err)
}

func (r *MentorRepository) GetByID(ctx context.Context, id uint) (*gormModels.Mentor, error) {
	var mentor gormModels.Mentor
	err := r.db.WithContext(ctx).Preload("User").First(&mentor, id).Error
	if err != nil {
		return nil, translate("get mentor", "mentor", id, err)
	}
	return &mentor, nil
}

func (r *MentorRepository) GetByUserID(ctx context.Context, userID uint) (*gormModels.Mentor, error) {
	var mentor gormModels.Mentor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&mentor).Error
	if err != nil {
		return nil, translate("get mentor by user", "mentor for user", userID, err)
	}
	return &mentor, nil
}

// List returns mentors; district filtering happens in the service since the
// district list is a JSON text column.
func (r *MentorRepository) List(ctx context.Context, includeInactive bool) ([]gormModels.Mentor, error) {
	q := r.db.WithContext(ctx).Preload("User")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var mentors []gormModels.Mentor
	if err := q.Order("id ASC").Find(&mentors).Error; err != nil {
		return nil, translate("list mentors", "mentor", nil, err)
	}
	return mentors, nil
}

func (r *MentorRepository) SaveVersioned(ctx context.Context, mentor *gormModels.Mentor, prevVersion int) error {
	err := saveVersioned(r.db.WithContext(ctx), mentor, prevVersion)
	return translate("update mentor", "mentor", mentor.ID, err)
}

func (r *MentorRepository) CreateMessage(ctx context.Context, msg *gormModels.MentorshipMessage) error {
	err := r.db.WithContext(ctx).Create(msg).Error
	return translate("create message", "mentorship message", msg.ID, err)
}

// Messages lists the conversation of a mentor/business pair, oldest first.
func (r *MentorRepository) Messages(ctx context.Context, mentorID, businessID uint) ([]gormModels.MentorshipMessage, error) {
	var msgs []gormModels.MentorshipMessage
	err := r.db.WithContext(ctx).
		Where("mentor_id = ? AND business_id = ?", mentorID, businessID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, translate("list messages", "mentorship message", businessID, err)
	}
	return msgs, nil
}

// MarkRead flags one message read. It reports NotFound when the message does
// not belong to the pair.
func (r *MentorRepository) MarkRead(ctx context.Context, mentorID, businessID, messageID uint) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.MentorshipMessage{}).
		Where("id = ? AND mentor_id = ? AND business_id = ?", messageID, mentorID, businessID).
		Update("is_read", true)
	if res.Error != nil {
		return translate("mark message read", "mentorship message", messageID, res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("mark message read", "mentorship message", messageID, gorm.ErrRecordNotFound)
	}
	return nil
}
