package requests

import (
	"dare/enterprisehub/internal/constants"
	gormModels "dare/enterprisehub/internal/models/gorm"
)

// CreateBusinessRequest creates a business and its 1..3 owners in one transaction.
type CreateBusinessRequest struct {
	BusinessName           string                       `json:"businessName" validate:"required,notblank,max=200"`
	BusinessDescription    string                       `json:"businessDescription"`
	District               constants.District           `json:"district" validate:"required,district"`
	Subcounty              string                       `json:"subcounty" validate:"max=100"`
	Village                string                       `json:"village" validate:"max=100"`
	DareModel              constants.DareModel          `json:"dareModel" validate:"required,dare_model"`
	RegistrationStatus     constants.RegistrationStatus `json:"registrationStatus" validate:"omitempty,registration_status"`
	RegistrationNumber     string                       `json:"registrationNumber" validate:"max=100"`
	EnterpriseType         constants.EnterpriseType     `json:"enterpriseType" validate:"omitempty,enterprise_type"`
	EnterpriseSize         constants.EnterpriseSize     `json:"enterpriseSize" validate:"omitempty,enterprise_size"`
	Sector                 constants.Sector             `json:"sector" validate:"omitempty,sector"`
	BusinessObjectives     gormModels.StringList        `json:"businessObjectives"`
	ShortTermGoals         gormModels.StringList        `json:"shortTermGoals"`
	SubPartnerNames        gormModels.StringList        `json:"subPartnerNames"`
	LogoURL                string                       `json:"logoUrl" validate:"omitempty,http_url"`
	StartDate              *Date                        `json:"startDate"`
	ExpectedWeeklyRevenue  *float64                     `json:"expectedWeeklyRevenue" validate:"omitempty,gte=0"`
	ExpectedMonthlyRevenue *float64                     `json:"expectedMonthlyRevenue" validate:"omitempty,gte=0"`
	TotalInvestment        *float64                     `json:"totalInvestment" validate:"omitempty,gte=0"`
	YouthIDs               []uint                       `json:"youthIds" validate:"required,min=1,max=3,unique,dive,gt=0"`
}

type UpdateBusinessRequest struct {
	BusinessName           *string                       `json:"businessName" validate:"omitempty,notblank,max=200"`
	BusinessDescription    *string                       `json:"businessDescription"`
	District               *constants.District           `json:"district" validate:"omitempty,district"`
	Subcounty              *string                       `json:"subcounty" validate:"omitempty,max=100"`
	Village                *string                       `json:"village" validate:"omitempty,max=100"`
	DareModel              *constants.DareModel          `json:"dareModel" validate:"omitempty,dare_model"`
	RegistrationStatus     *constants.RegistrationStatus `json:"registrationStatus" validate:"omitempty,registration_status"`
	RegistrationNumber     *string                       `json:"registrationNumber" validate:"omitempty,max=100"`
	EnterpriseType         *constants.EnterpriseType     `json:"enterpriseType" validate:"omitempty,enterprise_type"`
	EnterpriseSize         *constants.EnterpriseSize     `json:"enterpriseSize" validate:"omitempty,enterprise_size"`
	Sector                 *constants.Sector             `json:"sector" validate:"omitempty,sector"`
	BusinessObjectives     *gormModels.StringList        `json:"businessObjectives"`
	ShortTermGoals         *gormModels.StringList        `json:"shortTermGoals"`
	SubPartnerNames        *gormModels.StringList        `json:"subPartnerNames"`
	LogoURL                *string                       `json:"logoUrl" validate:"omitempty,http_url"`
	StartDate              *Date                         `json:"startDate"`
	ExpectedWeeklyRevenue  *float64                      `json:"expectedWeeklyRevenue" validate:"omitempty,gte=0"`
	ExpectedMonthlyRevenue *float64                      `json:"expectedMonthlyRevenue" validate:"omitempty,gte=0"`
	TotalInvestment        *float64                      `json:"totalInvestment" validate:"omitempty,gte=0"`
	Version                *int                          `json:"version" validate:"omitempty,gt=0"`
}

type BusinessFilter struct {
	District  constants.District
	Sector    constants.Sector
	DareModel constants.DareModel
	Search    string
	Limit     int
	Offset    int
}

type AssignYouthRequest struct {
	YouthID     uint                       `json:"youthId" validate:"required,gt=0"`
	Role        constants.RelationshipRole `json:"role" validate:"required,relationship_role"`
	JoinDate    *Date                      `json:"joinDate"`
	OwnerPolicy constants.OwnerPolicy      `json:"ownerPolicy" validate:"omitempty,owner_policy"`
}

type AssignMentorRequest struct {
	MentorID         uint                  `json:"mentorId" validate:"required,gt=0"`
	MentorshipFocus  string                `json:"mentorshipFocus" validate:"max=200"`
	MeetingFrequency string                `json:"meetingFrequency" validate:"max=50"`
	MentorshipGoals  gormModels.StringList `json:"mentorshipGoals"`
}

type UpdateMentorshipRequest struct {
	MentorshipFocus  *string                `json:"mentorshipFocus" validate:"omitempty,max=200"`
	MeetingFrequency *string                `json:"meetingFrequency" validate:"omitempty,max=50"`
	MentorshipGoals  *gormModels.StringList `json:"mentorshipGoals"`
	LastMeetingDate  *Date                  `json:"lastMeetingDate"`
	NextMeetingDate  *Date                  `json:"nextMeetingDate"`
	ProgressRating   *int                   `json:"progressRating" validate:"omitempty,min=1,max=5"`
}

type AssignMakerspaceRequest struct {
	MakerspaceID uint `json:"makerspaceId" validate:"required,gt=0"`
	Transfer     bool `json:"transfer"`
}
