package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"
	"dare/enterprisehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYouth_CreateUpdateDelete(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewYouthService(gdb)
	ctx := context.Background()

	youth, err := svc.Create(ctx, &requests.CreateYouthRequest{
		FirstName: "Amina",
		LastName:  "Kabugo",
		Gender:    constants.GenderFemale,
		District:  constants.DistrictBunyangabu,
		Skills:    gormModels.StringList{"tailoring", "bookkeeping"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, youth.Version)

	district := constants.DistrictKasese
	updated, err := svc.Update(ctx, youth.ID, &requests.UpdateYouthRequest{District: &district, Version: testutil.IntPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, district, updated.District)
	assert.Equal(t, gormModels.StringList{"tailoring", "bookkeeping"}, updated.Skills)

	_, err = svc.Update(ctx, youth.ID, &requests.UpdateYouthRequest{District: &district, Version: testutil.IntPtr(1)})
	var conflict *apperr.ConflictError
	assert.True(t, errors.As(err, &conflict))

	require.NoError(t, svc.Delete(ctx, youth.ID))
	_, err = svc.Get(ctx, youth.ID)
	var nf *apperr.NotFoundError
	assert.True(t, errors.As(err, &nf))

	page, err := svc.List(ctx, requests.YouthFilter{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestYouth_CreateValidation(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewYouthService(gdb)

	_, err := svc.Create(context.Background(), &requests.CreateYouthRequest{
		FirstName: "Amina",
		District:  "Kampala",
		Gender:    "Other",
		Email:     "not-an-email",
	})

	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "lastName")
	assert.Contains(t, verr.Fields, "district")
	assert.Contains(t, verr.Fields, "gender")
	assert.Contains(t, verr.Fields, "email")

	_, err = svc.Create(context.Background(), &requests.CreateYouthRequest{
		FirstName: "  ",
		LastName:  "\t",
		District:  constants.DistrictKasese,
	})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must not be blank", verr.Fields["firstName"])
	assert.Equal(t, "must not be blank", verr.Fields["lastName"])

	youth := testutil.CreateYouth(t, gdb, "amina")
	blank := " "
	_, err = svc.Update(context.Background(), youth.ID, &requests.UpdateYouthRequest{LastName: &blank})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "lastName")
}

func TestYouth_ListFilters(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewYouthService(gdb)
	ctx := context.Background()

	testutil.CreateYouth(t, gdb, "amina")
	testutil.CreateYouth(t, gdb, "brian")
	other := testutil.CreateYouth(t, gdb, "carol")
	require.NoError(t, gdb.Model(other).Update("district", constants.DistrictKyenjojo).Error)

	page, err := svc.List(ctx, requests.YouthFilter{District: constants.DistrictKasese})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = svc.List(ctx, requests.YouthFilter{Search: "BRI"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "brian", page.Items[0].FirstName)

	page, err = svc.List(ctx, requests.YouthFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Limit)
}

const youthCSV = `first_name,last_name,district,gender,skills,date_of_birth
Amina,Kabugo,Kasese,Female,tailoring; baking,2003-05-14
Brian,,Kabarole,Male,,
Carol,Atuhaire,Kampala,Female,,
David,Mugisha,Kyenjojo,Male,carpentry,14/05/2003
Esther,Biira,Bunyangabu,,,
`

func TestYouth_ImportCSV(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewYouthService(gdb)
	ctx := context.Background()

	report, err := svc.ImportCSV(ctx, strings.NewReader(youthCSV), false)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	require.Len(t, report.Failed, 3)
	assert.Equal(t, 3, report.Failed[0].Line)
	assert.Contains(t, report.Failed[0].Error, "lastName")
	assert.Equal(t, 4, report.Failed[1].Line)
	assert.Contains(t, report.Failed[1].Error, "district")
	assert.Equal(t, 5, report.Failed[2].Line)
	assert.Contains(t, report.Failed[2].Error, "dateOfBirth")

	page, err := svc.List(ctx, requests.YouthFilter{Search: "amina"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, gormModels.StringList{"tailoring", "baking"}, page.Items[0].Skills)
	require.NotNil(t, page.Items[0].DateOfBirth)
	assert.Equal(t, 2003, page.Items[0].DateOfBirth.Year())
}

func TestYouth_ImportCSVDryRun(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewYouthService(gdb)
	ctx := context.Background()

	report, err := svc.ImportCSV(ctx, strings.NewReader(youthCSV), true)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)

	page, err := svc.List(ctx, requests.YouthFilter{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestYouth_ImportCSVMissingColumn(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewYouthService(gdb)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("first_name,last_name\nA,B\n"), false)

	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "missing column district", verr.Fields["file"])
}
