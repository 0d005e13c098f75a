package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() User {
	return User{
		ID:              1,
		Phone:           "555",
		Name:            Ptr("Asha"),
		Email:           Ptr("asha@example.com"),
		Role:            RoleGeneralUser,
		ColonyID:        Ptr(int64(7)),
		ReputationScore: 12.5,
		CurrentStreak:   3,
		LongestStreak:   9,
		TotalActivities: 40,
		IsVerified:      true,
		CreatedAt:       "2024-01-02T03:04:05",
	}
}

func TestMerge_ChangesOnlySuppliedField(t *testing.T) {
	orig := sampleUser()
	before, err := json.Marshal(orig)
	require.NoError(t, err)

	merged := orig.Merge(UserPatch{CurrentStreak: Ptr(4)})

	assert.Equal(t, 4, merged.CurrentStreak)

	want := sampleUser()
	want.CurrentStreak = 4
	assert.Empty(t, cmp.Diff(want, merged))

	after, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "receiver must not be mutated")
}

func TestMerge_EmptyPatchIsIdentity(t *testing.T) {
	orig := sampleUser()
	assert.Empty(t, cmp.Diff(orig, orig.Merge(UserPatch{})))
	assert.True(t, UserPatch{}.IsEmpty())
	assert.False(t, UserPatch{Name: Ptr("x")}.IsEmpty())
}

func TestMerge_LaterWriteWins(t *testing.T) {
	u := sampleUser().
		Merge(UserPatch{Name: Ptr("first")}).
		Merge(UserPatch{Name: Ptr("second")})
	require.NotNil(t, u.Name)
	assert.Equal(t, "second", *u.Name)
}

func TestMerge_DoesNotAliasPatchOrReceiver(t *testing.T) {
	orig := sampleUser()
	name := "patched"
	merged := orig.Merge(UserPatch{Name: &name})

	name = "changed after merge"
	assert.Equal(t, "patched", *merged.Name)

	*merged.Email = "other@example.com"
	assert.Equal(t, "asha@example.com", *orig.Email)
}

func TestMerge_AllFields(t *testing.T) {
	role := RoleCityAdmin
	merged := sampleUser().Merge(UserPatch{
		Name:            Ptr("N"),
		Email:           Ptr("e@x"),
		Role:            &role,
		ColonyID:        Ptr(int64(99)),
		ReputationScore: Ptr(1.0),
		CurrentStreak:   Ptr(0),
		LongestStreak:   Ptr(10),
		TotalActivities: Ptr(41),
		IsVerified:      Ptr(false),
	})

	assert.Equal(t, int64(1), merged.ID)
	assert.Equal(t, "555", merged.Phone)
	assert.Equal(t, "N", *merged.Name)
	assert.Equal(t, "e@x", *merged.Email)
	assert.Equal(t, RoleCityAdmin, merged.Role)
	assert.Equal(t, int64(99), *merged.ColonyID)
	assert.Equal(t, 1.0, merged.ReputationScore)
	assert.Equal(t, 0, merged.CurrentStreak)
	assert.Equal(t, 10, merged.LongestStreak)
	assert.Equal(t, 41, merged.TotalActivities)
	assert.False(t, merged.IsVerified)
	assert.Equal(t, "2024-01-02T03:04:05", merged.CreatedAt)
}

func TestPatchFrom_RebuildsUser(t *testing.T) {
	fresh := sampleUser()
	fresh.TotalActivities = 100
	fresh.Name = Ptr("Renamed")

	stale := sampleUser()
	got := stale.Merge(PatchFrom(fresh))
	assert.Empty(t, cmp.Diff(fresh, got))
}

func TestClone_Deep(t *testing.T) {
	u := sampleUser()
	c := u.Clone()
	*c.ColonyID = 1
	assert.Equal(t, int64(7), *u.ColonyID)

	var nilUser *User
	assert.Nil(t, nilUser.Clone())
}

func TestUser_JSONUsesBackendFieldNames(t *testing.T) {
	in := `{"id":2,"phone":"777","name":null,"email":null,"role":"general_user",
		"colony_id":null,"reputation_score":0,"current_streak":0,"longest_streak":0,
		"total_activities":0,"is_verified":false,"created_at":"2025-05-01T00:00:00"}`
	var u User
	require.NoError(t, json.Unmarshal([]byte(in), &u))
	assert.Equal(t, int64(2), u.ID)
	assert.Equal(t, "777", u.Phone)
	assert.Nil(t, u.Name)
	assert.Nil(t, u.ColonyID)
	assert.Equal(t, RoleGeneralUser, u.Role)
}

func TestDisplayName(t *testing.T) {
	u := sampleUser()
	assert.Equal(t, "Asha", u.DisplayName())
	u.Name = nil
	assert.Equal(t, "User 1", u.DisplayName())
	u.Name = Ptr("")
	assert.Equal(t, "User 1", u.DisplayName())
}

func TestRole_IsAdmin(t *testing.T) {
	admins := []Role{RolePlatformOwner, RolePlatformOperations, RolePolicyAuthority, RoleCityAdmin}
	for _, r := range admins {
		assert.True(t, r.IsAdmin(), r)
	}
	members := []Role{RoleClubOrganizer, RoleCommunityLeader, RoleVerifiedUser, RoleGeneralUser, Role("")}
	for _, r := range members {
		assert.False(t, r.IsAdmin(), r)
	}
}
