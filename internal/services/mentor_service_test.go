package services

import (
	"context"
	"errors"
	"testing"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"
	"dare/enterprisehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMentor_CreateAndListByDistrict(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewMentorService(gdb)
	ctx := context.Background()

	user := testutil.CreateUser(t, gdb, "florence", constants.RoleMentor)
	mentor, err := svc.Create(ctx, &requests.CreateMentorRequest{
		UserID:            user.ID,
		AssignedDistricts: []constants.District{constants.DistrictKabarole, constants.DistrictBunyangabu},
		Specialization:    "Finance",
	})
	require.NoError(t, err)
	assert.Equal(t, gormModels.StringList{"Kabarole", "Bunyangabu"}, mentor.AssignedDistricts)

	_, err = svc.Create(ctx, &requests.CreateMentorRequest{UserID: user.ID, AssignedDistricts: []constants.District{constants.DistrictKasese}})
	var conflict *apperr.ConflictError
	assert.True(t, errors.As(err, &conflict), "one mentor profile per user")

	testutil.CreateMentor(t, gdb, "kasese-mentor")

	covering, err := svc.List(ctx, constants.DistrictBunyangabu, false)
	require.NoError(t, err)
	require.Len(t, covering, 1)
	assert.Equal(t, mentor.ID, covering[0].ID)

	all, err := svc.List(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.List(ctx, "Gulu", false)
	var verr *apperr.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestMentor_UpdateDeactivates(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewMentorService(gdb)
	ctx := context.Background()
	mentor := testutil.CreateMentor(t, gdb, "george")

	inactive := false
	updated, err := svc.Update(ctx, mentor.ID, &requests.UpdateMentorRequest{IsActive: &inactive, Version: testutil.IntPtr(1)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, 2, updated.Version)

	active, err := svc.List(ctx, "", false)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = svc.Update(ctx, mentor.ID, &requests.UpdateMentorRequest{AssignedDistricts: []constants.District{"Mbarara"}})
	var verr *apperr.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestMentor_Messages(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewMentorService(gdb)
	rel := NewRelationshipService(gdb, nil)
	ctx := context.Background()

	mentor := testutil.CreateMentor(t, gdb, "harriet")
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")

	_, err := svc.PostMessage(ctx, mentor.ID, biz.ID, &requests.CreateMessageRequest{Sender: constants.SenderMentor, Message: "Hello"})
	var nf *apperr.NotFoundError
	require.True(t, errors.As(err, &nf), "no mentorship yet")

	_, err = rel.AssignMentor(ctx, biz.ID, &requests.AssignMentorRequest{MentorID: mentor.ID})
	require.NoError(t, err)

	msg, err := svc.PostMessage(ctx, mentor.ID, biz.ID, &requests.CreateMessageRequest{Sender: constants.SenderMentor, Category: "marketing", Message: "Bring your sales book"})
	require.NoError(t, err)
	_, err = svc.PostMessage(ctx, mentor.ID, biz.ID, &requests.CreateMessageRequest{Sender: constants.SenderBusiness, Message: "Will do"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkMessageRead(ctx, mentor.ID, biz.ID, msg.ID))
	err = svc.MarkMessageRead(ctx, mentor.ID, biz.ID, 999)
	assert.True(t, errors.As(err, &nf))

	require.NoError(t, rel.UnassignMentor(ctx, biz.ID, mentor.ID))
	thread, err := svc.Messages(ctx, mentor.ID, biz.ID)
	require.NoError(t, err, "history stays readable after unassignment")
	require.Len(t, thread, 2)
	assert.True(t, thread[0].IsRead)
	assert.False(t, thread[1].IsRead)

	_, err = svc.PostMessage(ctx, mentor.ID, biz.ID, &requests.CreateMessageRequest{Sender: "stranger", Message: "hi"})
	var verr *apperr.ValidationError
	assert.True(t, errors.As(err, &verr))
}
