package gorm

import (
	"dare/enterprisehub/internal/constants"
	"time"
)

// Mentor is linked to exactly one User account.
type Mentor struct {
	ID                uint       `gorm:"column:id;primaryKey" json:"id"`
	UserID            uint       `gorm:"column:user_id;uniqueIndex;not null" json:"userId"`
	AssignedDistricts StringList `gorm:"column:assigned_districts" json:"assignedDistricts"`
	Specialization    string     `gorm:"column:specialization;size:200" json:"specialization"`
	PhoneNumber       string     `gorm:"column:phone_number;size:30" json:"phoneNumber"`
	Email             string     `gorm:"column:email;size:200" json:"email"`
	Bio               string     `gorm:"column:bio" json:"bio,omitempty"`
	IsActive          bool       `gorm:"column:is_active;default:true" json:"isActive"`
	Version           int        `gorm:"column:version;not null;default:1" json:"version"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Mentor) TableName() string {
	return "mentors"
}

// CoversDistrict reports whether d is among the mentor's districts.
func (m Mentor) CoversDistrict(d constants.District) bool {
	for _, assigned := range m.AssignedDistricts {
		if assigned == string(d) {
			return true
		}
	}
	return false
}

// MentorBusinessRelationship is a mentor's assignment to a business. Unassigning
// clears IsActive and keeps the row.
type MentorBusinessRelationship struct {
	MentorID         uint       `gorm:"column:mentor_id;primaryKey" json:"mentorId"`
	BusinessID       uint       `gorm:"column:business_id;primaryKey;index" json:"businessId"`
	AssignedDate     time.Time  `gorm:"column:assigned_date;not null" json:"assignedDate"`
	UnassignedDate   *time.Time `gorm:"column:unassigned_date" json:"unassignedDate,omitempty"`
	IsActive         bool       `gorm:"column:is_active;default:true" json:"isActive"`
	MentorshipFocus  string     `gorm:"column:mentorship_focus;size:200" json:"mentorshipFocus,omitempty"`
	MeetingFrequency string     `gorm:"column:meeting_frequency;size:50" json:"meetingFrequency,omitempty"`
	MentorshipGoals  StringList `gorm:"column:mentorship_goals" json:"mentorshipGoals"`
	LastMeetingDate  *time.Time `gorm:"column:last_meeting_date" json:"lastMeetingDate,omitempty"`
	NextMeetingDate  *time.Time `gorm:"column:next_meeting_date" json:"nextMeetingDate,omitempty"`
	ProgressRating   *int       `gorm:"column:progress_rating" json:"progressRating,omitempty"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	Mentor   *Mentor          `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	Business *BusinessProfile `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}

func (MentorBusinessRelationship) TableName() string {
	return "mentor_business_relationships"
}

type MentorshipMessage struct {
	ID         uint                    `gorm:"column:id;primaryKey" json:"id"`
	MentorID   uint                    `gorm:"column:mentor_id;index:idx_message_pair;not null" json:"mentorId"`
	BusinessID uint                    `gorm:"column:business_id;index:idx_message_pair;not null" json:"businessId"`
	Sender     constants.MessageSender `gorm:"column:sender;size:20;not null" json:"sender"`
	Category   string                  `gorm:"column:category;size:50" json:"category"`
	Message    string                  `gorm:"column:message;not null" json:"message"`
	IsRead     bool                    `gorm:"column:is_read;default:false" json:"isRead"`
	CreatedAt  time.Time               `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (MentorshipMessage) TableName() string {
	return "mentorship_messages"
}
