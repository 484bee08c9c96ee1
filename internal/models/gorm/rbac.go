package gorm

import "time"

// Role names match constants.UserRole values stored on users.role.
type Role struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:50;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Permissions []Permission `gorm:"-" json:"permissions,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

type Permission struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Resource    string    `gorm:"column:resource;size:50;not null;uniqueIndex:idx_permission_resource_action,priority:1" json:"resource"`
	Action      string    `gorm:"column:action;size:30;not null;uniqueIndex:idx_permission_resource_action,priority:2" json:"action"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Permission) TableName() string {
	return "permissions"
}

type RolePermission struct {
	RoleID       uint      `gorm:"column:role_id;primaryKey" json:"roleId"`
	PermissionID uint      `gorm:"column:permission_id;primaryKey" json:"permissionId"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// AllModels is the migration order for every table.
func AllModels() []any {
	return []any{
		&User{},
		&Role{},
		&Permission{},
		&RolePermission{},
		&YouthProfile{},
		&BusinessProfile{},
		&BusinessYouthRelationship{},
		&Mentor{},
		&MentorBusinessRelationship{},
		&MentorshipMessage{},
		&Makerspace{},
		&BusinessMakerspaceAssignment{},
		&MakerspaceResource{},
		&MakerspaceResourceCost{},
		&BusinessResource{},
		&BusinessResourceCost{},
		&BusinessTracking{},
		&FeasibilityAssessment{},
	}
}
