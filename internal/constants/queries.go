package constants

// Raw dashboard queries executed through sqlx. Written with '?' bindvars and
// rebound per driver.
const (
	CountActiveYouth = `
	SELECT COUNT(*) FROM youth_profiles WHERE is_deleted = false
	`

	CountBusinessesByDistrict = `
	SELECT district AS label, COUNT(*) AS total
	FROM business_profiles
	WHERE is_deleted = false
	GROUP BY district
	ORDER BY district
	`

	CountActiveMentors = `
	SELECT COUNT(*) FROM mentors WHERE is_active = true
	`

	CountActiveMentorships = `
	SELECT COUNT(*) FROM mentor_business_relationships WHERE is_active = true
	`

	CountActiveMakerspaceAssignments = `
	SELECT COUNT(*) FROM business_makerspace_assignments WHERE is_active = true
	`

	CountAssessmentsByStatus = `
	SELECT status AS label, COUNT(*) AS total
	FROM feasibility_assessments
	GROUP BY status
	ORDER BY status
	`

	CountTrackingByVerification = `
	SELECT is_verified, COUNT(*) AS total
	FROM business_trackings
	GROUP BY is_verified
	`

	AverageFeasibilityPercentage = `
	SELECT AVG(overall_feasibility_percentage)
	FROM feasibility_assessments
	WHERE overall_feasibility_percentage IS NOT NULL
	`

	InsertAdminUser = `
	INSERT INTO users (username, password_hash, full_name, role, is_active, created_at, updated_at)
	VALUES (?, ?, ?, 'admin', true, ?, ?)
	`

	GetUserByUsername = `
	SELECT id, username, role, is_active FROM users WHERE username = ?
	`
)
