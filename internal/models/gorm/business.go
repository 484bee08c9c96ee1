package gorm

import (
	"dare/enterprisehub/internal/constants"
	"time"
)

type BusinessProfile struct {
	ID                     uint                         `gorm:"column:id;primaryKey" json:"id"`
	BusinessName           string                       `gorm:"column:business_name;size:200;not null" json:"businessName"`
	BusinessDescription    string                       `gorm:"column:business_description" json:"businessDescription"`
	District               constants.District           `gorm:"column:district;size:50;index;not null" json:"district"`
	Subcounty              string                       `gorm:"column:subcounty;size:100" json:"subcounty"`
	Village                string                       `gorm:"column:village;size:100" json:"village"`
	DareModel              constants.DareModel          `gorm:"column:dare_model;size:30;not null" json:"dareModel"`
	RegistrationStatus     constants.RegistrationStatus `gorm:"column:registration_status;size:30" json:"registrationStatus"`
	RegistrationNumber     string                       `gorm:"column:registration_number;size:100" json:"registrationNumber,omitempty"`
	EnterpriseType         constants.EnterpriseType     `gorm:"column:enterprise_type;size:50" json:"enterpriseType"`
	EnterpriseSize         constants.EnterpriseSize     `gorm:"column:enterprise_size;size:20" json:"enterpriseSize"`
	Sector                 constants.Sector             `gorm:"column:sector;size:50;index" json:"sector"`
	BusinessObjectives     StringList                   `gorm:"column:business_objectives" json:"businessObjectives"`
	ShortTermGoals         StringList                   `gorm:"column:short_term_goals" json:"shortTermGoals"`
	SubPartnerNames        StringList                   `gorm:"column:sub_partner_names" json:"subPartnerNames"`
	LogoURL                string                       `gorm:"column:logo_url" json:"logoUrl,omitempty"`
	StartDate              *time.Time                   `gorm:"column:start_date" json:"startDate,omitempty"`
	ExpectedWeeklyRevenue  *float64                     `gorm:"column:expected_weekly_revenue" json:"expectedWeeklyRevenue,omitempty"`
	ExpectedMonthlyRevenue *float64                     `gorm:"column:expected_monthly_revenue" json:"expectedMonthlyRevenue,omitempty"`
	TotalInvestment        *float64                     `gorm:"column:total_investment" json:"totalInvestment,omitempty"`
	IsDeleted              bool                         `gorm:"column:is_deleted;default:false;index" json:"isDeleted"`
	Version                int                          `gorm:"column:version;not null;default:1" json:"version"`
	CreatedAt              time.Time                    `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt              time.Time                    `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	YouthRelationships []BusinessYouthRelationship `gorm:"foreignKey:BusinessID" json:"youth,omitempty"`
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}

// BusinessYouthRelationship links a youth to a business as Owner or Member.
type BusinessYouthRelationship struct {
	BusinessID uint                       `gorm:"column:business_id;primaryKey" json:"businessId"`
	YouthID    uint                       `gorm:"column:youth_id;primaryKey;index" json:"youthId"`
	Role       constants.RelationshipRole `gorm:"column:role;size:20;not null" json:"role"`
	JoinDate   time.Time                  `gorm:"column:join_date;not null" json:"joinDate"`
	IsActive   bool                       `gorm:"column:is_active;default:true" json:"isActive"`
	CreatedAt  time.Time                  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time                  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	Youth    *YouthProfile    `gorm:"foreignKey:YouthID" json:"youthProfile,omitempty"`
	Business *BusinessProfile `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}

func (BusinessYouthRelationship) TableName() string {
	return "business_youth_relationships"
}
