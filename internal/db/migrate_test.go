package db_test

import (
	"context"
	"testing"

	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/db"
	gormModels "dare/enterprisehub/internal/models/gorm"
	"dare/enterprisehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	gdb := testutil.NewTestDB(t)

	require.NoError(t, db.Migrate(context.Background(), gdb))

	for _, model := range gormModels.AllModels() {
		assert.True(t, gdb.Migrator().HasTable(model))
	}
}

func TestMigrate_OneActiveMakerspacePerBusiness(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")
	ms1 := testutil.CreateMakerspace(t, gdb, "Fort Portal Hub")
	ms2 := testutil.CreateMakerspace(t, gdb, "Kyenjojo Works")

	first := &gormModels.BusinessMakerspaceAssignment{BusinessID: biz.ID, MakerspaceID: ms1.ID, IsActive: true}
	require.NoError(t, gdb.Create(first).Error)

	second := &gormModels.BusinessMakerspaceAssignment{BusinessID: biz.ID, MakerspaceID: ms2.ID, IsActive: true}
	assert.Error(t, gdb.Create(second).Error)

	require.NoError(t, gdb.Model(first).Update("is_active", false).Error)
	assert.NoError(t, gdb.Create(&gormModels.BusinessMakerspaceAssignment{BusinessID: biz.ID, MakerspaceID: ms2.ID, IsActive: true}).Error)
}

func TestFoldLegacyMentorDistricts(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, gdb.Exec("ALTER TABLE mentors ADD COLUMN assigned_district text").Error)

	withLegacy := testutil.CreateMentor(t, gdb, "amina")
	require.NoError(t, gdb.Exec("UPDATE mentors SET assigned_district = ?, assigned_districts = ? WHERE id = ?",
		"Kabarole", `["Kasese"]`, withLegacy.ID).Error)

	alreadyListed := testutil.CreateMentor(t, gdb, "brian")
	require.NoError(t, gdb.Exec("UPDATE mentors SET assigned_district = ? WHERE id = ?", "Kasese", alreadyListed.ID).Error)

	untouched := testutil.CreateMentor(t, gdb, "carol")

	folded, err := db.FoldLegacyMentorDistricts(ctx, gdb)
	require.NoError(t, err)
	assert.Equal(t, 1, folded)

	var got gormModels.Mentor
	require.NoError(t, gdb.First(&got, withLegacy.ID).Error)
	assert.Equal(t, gormModels.StringList{"Kabarole", "Kasese"}, got.AssignedDistricts)

	require.NoError(t, gdb.First(&got, alreadyListed.ID).Error)
	assert.Equal(t, gormModels.StringList{string(constants.DistrictKasese)}, got.AssignedDistricts)

	require.NoError(t, gdb.First(&got, untouched.ID).Error)
	assert.Equal(t, gormModels.StringList{string(constants.DistrictKasese)}, got.AssignedDistricts)

	assert.False(t, gdb.Migrator().HasColumn(&gormModels.Mentor{}, "assigned_district"))

	folded, err = db.FoldLegacyMentorDistricts(ctx, gdb)
	require.NoError(t, err)
	assert.Zero(t, folded)
}
