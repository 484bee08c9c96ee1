package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"
	"dare/enterprisehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fullBusiness returns a business with three owners who joined a day apart.
func fullBusiness(t *testing.T, gdb *gorm.DB) (*gormModels.BusinessProfile, []*gormModels.YouthProfile) {
	t.Helper()
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var owners []*gormModels.YouthProfile
	for i, name := range []string{"amina", "brian", "carol"} {
		y := testutil.CreateYouth(t, gdb, name)
		testutil.AttachOwner(t, gdb, biz.ID, y.ID, base.AddDate(0, 0, i))
		owners = append(owners, y)
	}
	return biz, owners
}

func activeOwnerIDs(t *testing.T, gdb *gorm.DB, businessID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, gdb.Model(&gormModels.BusinessYouthRelationship{}).
		Where("business_id = ? AND role = ? AND is_active = ?", businessID, constants.RelationshipOwner, true).
		Order("youth_id").
		Pluck("youth_id", &ids).Error)
	return ids
}

func TestAssignYouth_FourthOwnerRejected(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewRelationshipService(gdb, nil)
	biz, owners := fullBusiness(t, gdb)
	extra := testutil.CreateYouth(t, gdb, "david")

	_, err := svc.AssignYouth(context.Background(), biz.ID, &requests.AssignYouthRequest{
		YouthID: extra.ID,
		Role:    constants.RelationshipOwner,
	})

	var capErr *apperr.CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, constants.MsgOwnerCapacity, capErr.Message)
	assert.Equal(t, []uint{owners[0].ID, owners[1].ID, owners[2].ID}, activeOwnerIDs(t, gdb, biz.ID))
}

func TestAssignYouth_ReplaceOldestOwner(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewRelationshipService(gdb, nil)
	biz, owners := fullBusiness(t, gdb)
	extra := testutil.CreateYouth(t, gdb, "david")

	link, err := svc.AssignYouth(context.Background(), biz.ID, &requests.AssignYouthRequest{
		YouthID:     extra.ID,
		Role:        constants.RelationshipOwner,
		OwnerPolicy: constants.OwnerPolicyReplaceOldest,
	})
	require.NoError(t, err)
	assert.True(t, link.IsActive)

	assert.Equal(t, []uint{owners[1].ID, owners[2].ID, extra.ID}, activeOwnerIDs(t, gdb, biz.ID))
}

func TestAssignYouth_MemberDoesNotCountTowardOwners(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewRelationshipService(gdb, nil)
	biz, _ := fullBusiness(t, gdb)
	extra := testutil.CreateYouth(t, gdb, "david")

	link, err := svc.AssignYouth(context.Background(), biz.ID, &requests.AssignYouthRequest{
		YouthID: extra.ID,
		Role:    constants.RelationshipMember,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.RelationshipMember, link.Role)
}

func TestAssignYouth_ReassignKeepsSingleRow(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewRelationshipService(gdb, nil)
	ctx := context.Background()
	biz, _ := fullBusiness(t, gdb)
	member := testutil.CreateYouth(t, gdb, "david")

	req := &requests.AssignYouthRequest{YouthID: member.ID, Role: constants.RelationshipMember}
	_, err := svc.AssignYouth(ctx, biz.ID, req)
	require.NoError(t, err)
	require.NoError(t, svc.UnassignYouth(ctx, biz.ID, member.ID))
	_, err = svc.AssignYouth(ctx, biz.ID, req)
	require.NoError(t, err)

	var rows int64
	require.NoError(t, gdb.Model(&gormModels.BusinessYouthRelationship{}).
		Where("business_id = ? AND youth_id = ?", biz.ID, member.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestUnassignYouth_LastOwnerGuardAndIdempotence(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewRelationshipService(gdb, nil)
	ctx := context.Background()

	biz := testutil.CreateBusiness(t, gdb, "Kyenjojo Tea")
	first := testutil.CreateYouth(t, gdb, "amina")
	second := testutil.CreateYouth(t, gdb, "brian")
	testutil.AttachOwner(t, gdb, biz.ID, first.ID, time.Now().UTC())
	testutil.AttachOwner(t, gdb, biz.ID, second.ID, time.Now().UTC())

	require.NoError(t, svc.UnassignYouth(ctx, biz.ID, second.ID))
	require.NoError(t, svc.UnassignYouth(ctx, biz.ID, second.ID))

	err := svc.UnassignYouth(ctx, biz.ID, first.ID)
	var capErr *apperr.CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, constants.MsgLastOwner, capErr.Message)

	_, err = svc.AssignYouth(ctx, biz.ID, &requests.AssignYouthRequest{YouthID: first.ID, Role: constants.RelationshipMember})
	assert.True(t, errors.As(err, &capErr), "demoting the last owner must fail")

	err = svc.UnassignYouth(ctx, biz.ID, 999)
	var nf *apperr.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestAssignMentor_DistrictAndIdempotentUnassign(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewRelationshipService(gdb, nil)
	ctx := context.Background()

	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")
	mentor := testutil.CreateMentor(t, gdb, "mentor1")

	link, err := svc.AssignMentor(ctx, biz.ID, &requests.AssignMentorRequest{MentorID: mentor.ID, MentorshipFocus: "Marketing"})
	require.NoError(t, err)
	firstAssigned := link.AssignedDate

	require.NoError(t, svc.UnassignMentor(ctx, biz.ID, mentor.ID))
	require.NoError(t, svc.UnassignMentor(ctx, biz.ID, mentor.ID))

	var rows []gormModels.MentorBusinessRelationship
	require.NoError(t, gdb.Where("business_id = ?", biz.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsActive)
	assert.NotNil(t, rows[0].UnassignedDate)

	link, err = svc.AssignMentor(ctx, biz.ID, &requests.AssignMentorRequest{MentorID: mentor.ID})
	require.NoError(t, err)
	assert.True(t, link.IsActive)
	assert.Nil(t, link.UnassignedDate)
	assert.Equal(t, "Marketing", link.MentorshipFocus)
	assert.False(t, link.AssignedDate.Before(firstAssigned))

	elsewhere := testutil.CreateBusiness(t, gdb, "Fort Portal Bakery")
	require.NoError(t, gdb.Model(elsewhere).Update("district", constants.DistrictKyenjojo).Error)
	_, err = svc.AssignMentor(ctx, elsewhere.ID, &requests.AssignMentorRequest{MentorID: mentor.ID})
	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "mentorId")
}

func TestAssignMakerspace_ConflictAndTransfer(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewRelationshipService(gdb, nil)
	ctx := context.Background()

	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")
	hub := testutil.CreateMakerspace(t, gdb, "Fort Portal Hub")
	works := testutil.CreateMakerspace(t, gdb, "Kyenjojo Works")
	admin := testutil.CreateUser(t, gdb, "admin", constants.RoleAdmin)

	first, err := svc.AssignMakerspace(ctx, biz.ID, &admin.ID, &requests.AssignMakerspaceRequest{MakerspaceID: hub.ID})
	require.NoError(t, err)
	require.NotNil(t, first.AssignedBy)
	assert.Equal(t, admin.ID, *first.AssignedBy)

	again, err := svc.AssignMakerspace(ctx, biz.ID, nil, &requests.AssignMakerspaceRequest{MakerspaceID: hub.ID})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = svc.AssignMakerspace(ctx, biz.ID, nil, &requests.AssignMakerspaceRequest{MakerspaceID: works.ID})
	var conflict *apperr.ConflictError
	require.True(t, errors.As(err, &conflict))

	moved, err := svc.AssignMakerspace(ctx, biz.ID, nil, &requests.AssignMakerspaceRequest{MakerspaceID: works.ID, Transfer: true})
	require.NoError(t, err)
	assert.Equal(t, works.ID, moved.MakerspaceID)

	current, err := svc.ActiveMakerspace(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, works.ID, current.MakerspaceID)

	history, err := svc.BusinessesOfMakerspace(ctx, hub.ID, true)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.False(t, history[0].IsActive)
	assert.NotNil(t, history[0].UnassignedDate)

	require.NoError(t, svc.UnassignMakerspace(ctx, biz.ID))
	_, err = svc.ActiveMakerspace(ctx, biz.ID)
	var nf *apperr.NotFoundError
	assert.True(t, errors.As(err, &nf))
}
