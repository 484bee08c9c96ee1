package constants

// Resources and actions used by RBAC grants.
const (
	ResourceUsers       = "users"
	ResourceYouth       = "youth"
	ResourceBusinesses  = "businesses"
	ResourceMentors     = "mentors"
	ResourceMakerspaces = "makerspaces"
	ResourceFeasibility = "feasibility"
	ResourceTracking    = "tracking"
	ResourceRoles       = "roles"
	ResourceDashboard   = "dashboard"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionReview = "review"
	ActionVerify = "verify"
	ActionAssign = "assign"
)

var AllResources = []string{
	ResourceUsers, ResourceYouth, ResourceBusinesses, ResourceMentors, ResourceMakerspaces,
	ResourceFeasibility, ResourceTracking, ResourceRoles, ResourceDashboard,
}

var AllActions = []string{ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionReview, ActionVerify, ActionAssign}

// DefaultGrants seeds the RBAC tables. Admin is not listed: it bypasses checks.
var DefaultGrants = map[UserRole]map[string][]string{
	RoleManager: {
		ResourceUsers:       {ActionRead},
		ResourceYouth:       {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		ResourceBusinesses:  {ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionAssign},
		ResourceMentors:     {ActionRead, ActionCreate, ActionUpdate, ActionAssign},
		ResourceMakerspaces: {ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionAssign},
		ResourceFeasibility: {ActionRead, ActionCreate, ActionUpdate},
		ResourceTracking:    {ActionRead, ActionCreate, ActionUpdate, ActionVerify},
		ResourceDashboard:   {ActionRead},
	},
	RoleReviewer: {
		ResourceYouth:       {ActionRead},
		ResourceBusinesses:  {ActionRead},
		ResourceFeasibility: {ActionRead, ActionReview},
		ResourceTracking:    {ActionRead, ActionVerify},
		ResourceDashboard:   {ActionRead},
	},
	RoleMentor: {
		ResourceYouth:       {ActionRead},
		ResourceBusinesses:  {ActionRead, ActionUpdate},
		ResourceMentors:     {ActionRead, ActionUpdate},
		ResourceMakerspaces: {ActionRead},
		ResourceFeasibility: {ActionRead, ActionCreate, ActionUpdate},
		ResourceTracking:    {ActionRead, ActionCreate, ActionUpdate},
	},
	RoleMentee: {
		ResourceBusinesses: {ActionRead},
		ResourceMentors:    {ActionRead},
		ResourceTracking:   {ActionRead, ActionCreate},
	},
	RoleUser: {
		ResourceBusinesses: {ActionRead},
	},
}
