package db

import (
	"context"
	"fmt"
	"strings"

	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/logging"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"gorm.io/gorm"
)

const legacyMentorDistrictColumn = "assigned_district"

// constraintStatements are business rules promoted to hard database constraints.
var constraintStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_makerspace_one_active
		ON business_makerspace_assignments (business_id) WHERE is_active = true`,
	`CREATE INDEX IF NOT EXISTS idx_byr_business_active
		ON business_youth_relationships (business_id, is_active)`,
	`CREATE INDEX IF NOT EXISTS idx_tracking_business_recent
		ON business_trackings (business_id, period_start DESC)`,
}

// Migrate brings the schema up to date: tables, constraint indexes and the
// legacy mentor district fold.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(gormModels.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range constraintStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}

	folded, err := FoldLegacyMentorDistricts(ctx, db)
	if err != nil {
		return err
	}
	if folded > 0 {
		logging.Info("Folded legacy mentor districts", "mentors", folded)
	}
	return nil
}

type legacyMentorRow struct {
	ID                uint
	AssignedDistrict  *string
	AssignedDistricts gormModels.StringList
}

// FoldLegacyMentorDistricts merges the old single-valued assigned_district
// column into assigned_districts and drops it. Returns the number of mentors
// whose list changed.
func FoldLegacyMentorDistricts(ctx context.Context, db *gorm.DB) (int, error) {
	migrator := db.WithContext(ctx).Migrator()
	if !migrator.HasColumn(&gormModels.Mentor{}, legacyMentorDistrictColumn) {
		return 0, nil
	}

	changed := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []legacyMentorRow
		err := tx.Table("mentors").
			Select("id, assigned_district, assigned_districts").
			Where("assigned_district IS NOT NULL AND assigned_district <> ''").
			Scan(&rows).Error
		if err != nil {
			return fmt.Errorf("read legacy districts: %w", err)
		}

		for _, row := range rows {
			merged, didChange := mergeDistrict(row.AssignedDistricts, *row.AssignedDistrict)
			if !didChange {
				continue
			}
			err := tx.Table("mentors").
				Where("id = ?", row.ID).
				Update("assigned_districts", merged).Error
			if err != nil {
				return fmt.Errorf("fold districts for mentor %d: %w", row.ID, err)
			}
			changed++
		}

		return tx.Migrator().DropColumn(&gormModels.Mentor{}, legacyMentorDistrictColumn)
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

func mergeDistrict(list gormModels.StringList, legacy string) (gormModels.StringList, bool) {
	legacy = strings.TrimSpace(legacy)
	if legacy == "" {
		return list, false
	}
	for _, d := range list {
		if strings.EqualFold(d, legacy) {
			return list, false
		}
	}
	if !constants.Districts.Contains(constants.District(legacy)) {
		logging.Warn("Legacy mentor district is outside the program districts", "district", legacy)
	}
	// legacy value was the primary district, keep it first
	return append(gormModels.StringList{legacy}, list...), true
}
