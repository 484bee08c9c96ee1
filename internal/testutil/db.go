// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/db"
	gormModels "dare/enterprisehub/internal/models/gorm"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(context.Background(), gdb))
	return gdb
}

func CreateUser(t *testing.T, gdb *gorm.DB, username string, role constants.UserRole) *gormModels.User {
	t.Helper()
	u := &gormModels.User{
		Username:     username,
		PasswordHash: "x",
		FullName:     strings.ToUpper(username[:1]) + username[1:],
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, gdb.Create(u).Error)
	return u
}

func CreateYouth(t *testing.T, gdb *gorm.DB, first string) *gormModels.YouthProfile {
	t.Helper()
	y := &gormModels.YouthProfile{
		FirstName: first,
		LastName:  "Test",
		Gender:    constants.GenderFemale,
		District:  constants.DistrictKasese,
		Skills:    gormModels.StringList{"tailoring"},
		Version:   1,
	}
	require.NoError(t, gdb.Create(y).Error)
	return y
}

func CreateBusiness(t *testing.T, gdb *gorm.DB, name string) *gormModels.BusinessProfile {
	t.Helper()
	b := &gormModels.BusinessProfile{
		BusinessName: name,
		District:     constants.DistrictKasese,
		DareModel:    constants.DareCollaborative,
		Sector:       constants.SectorAgriculture,
		Version:      1,
	}
	require.NoError(t, gdb.Create(b).Error)
	return b
}

// AttachOwner inserts an active Owner row directly, bypassing business rules.
func AttachOwner(t *testing.T, gdb *gorm.DB, businessID, youthID uint, joined time.Time) {
	t.Helper()
	rel := &gormModels.BusinessYouthRelationship{
		BusinessID: businessID,
		YouthID:    youthID,
		Role:       constants.RelationshipOwner,
		JoinDate:   joined,
		IsActive:   true,
	}
	require.NoError(t, gdb.Create(rel).Error)
}

func CreateMentor(t *testing.T, gdb *gorm.DB, username string) *gormModels.Mentor {
	t.Helper()
	u := CreateUser(t, gdb, username, constants.RoleMentor)
	m := &gormModels.Mentor{
		UserID:            u.ID,
		AssignedDistricts: gormModels.StringList{string(constants.DistrictKasese)},
		Specialization:    "Agribusiness",
		IsActive:          true,
		Version:           1,
	}
	require.NoError(t, gdb.Create(m).Error)
	return m
}

func CreateMakerspace(t *testing.T, gdb *gorm.DB, name string) *gormModels.Makerspace {
	t.Helper()
	m := &gormModels.Makerspace{
		Name:     name,
		District: constants.DistrictKabarole,
		IsActive: true,
	}
	require.NoError(t, gdb.Create(m).Error)
	return m
}

func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }

func StrPtr(v string) *string { return &v }
