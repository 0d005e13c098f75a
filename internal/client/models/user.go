package models

// Role is the access tier of a user, from platform owner down to general user.
type Role string

const (
	RolePlatformOwner      Role = "platform_owner"
	RolePlatformOperations Role = "platform_operations"
	RolePolicyAuthority    Role = "policy_authority"
	RoleCityAdmin          Role = "city_admin"
	RoleClubOrganizer      Role = "club_organizer"
	RoleCommunityLeader    Role = "community_leader"
	RoleVerifiedUser       Role = "verified_user"
	RoleGeneralUser        Role = "general_user"
)

// IsAdmin reports whether r is one of the administrative tiers.
func (r Role) IsAdmin() bool {
	switch r {
	case RolePlatformOwner, RolePlatformOperations, RolePolicyAuthority, RoleCityAdmin:
		return true
	default:
		return false
	}
}

// User is the authenticated individual as returned by the backend.
// ID and Phone never change once set.
type User struct {
	ID              int64   `json:"id"`
	Phone           string  `json:"phone"`
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Role            Role    `json:"role"`
	ColonyID        *int64  `json:"colony_id"`
	ReputationScore float64 `json:"reputation_score"`
	CurrentStreak   int     `json:"current_streak"`
	LongestStreak   int     `json:"longest_streak"`
	TotalActivities int     `json:"total_activities"`
	IsVerified      bool    `json:"is_verified"`
	CreatedAt       string  `json:"created_at"`
}

// DisplayName returns the name, or a "User <id>" placeholder.
func (u User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return "User " + itoa(u.ID)
}

// UserPatch carries a partial User. Nil fields are left untouched by Merge.
type UserPatch struct {
	Name            *string  `json:"name,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Role            *Role    `json:"role,omitempty"`
	ColonyID        *int64   `json:"colony_id,omitempty"`
	ReputationScore *float64 `json:"reputation_score,omitempty"`
	CurrentStreak   *int     `json:"current_streak,omitempty"`
	LongestStreak   *int     `json:"longest_streak,omitempty"`
	TotalActivities *int     `json:"total_activities,omitempty"`
	IsVerified      *bool    `json:"is_verified,omitempty"`
}

// IsEmpty reports whether the patch supplies no field at all.
func (p UserPatch) IsEmpty() bool {
	return p == UserPatch{}
}

// Merge returns a copy of u with every field supplied by p overwritten.
// u itself is not modified, and the result shares no pointers with u or p.
func (u User) Merge(p UserPatch) User {
	out := u.clone()
	if p.Name != nil {
		out.Name = Ptr(*p.Name)
	}
	if p.Email != nil {
		out.Email = Ptr(*p.Email)
	}
	if p.Role != nil {
		out.Role = *p.Role
	}
	if p.ColonyID != nil {
		out.ColonyID = Ptr(*p.ColonyID)
	}
	if p.ReputationScore != nil {
		out.ReputationScore = *p.ReputationScore
	}
	if p.CurrentStreak != nil {
		out.CurrentStreak = *p.CurrentStreak
	}
	if p.LongestStreak != nil {
		out.LongestStreak = *p.LongestStreak
	}
	if p.TotalActivities != nil {
		out.TotalActivities = *p.TotalActivities
	}
	if p.IsVerified != nil {
		out.IsVerified = *p.IsVerified
	}
	return out
}

// PatchFrom builds a patch that overwrites every mutable field with the
// values of u. It is used to fold a fresh server copy into the session.
func PatchFrom(u User) UserPatch {
	c := u.clone()
	return UserPatch{
		Name:            c.Name,
		Email:           c.Email,
		Role:            &c.Role,
		ColonyID:        c.ColonyID,
		ReputationScore: &c.ReputationScore,
		CurrentStreak:   &c.CurrentStreak,
		LongestStreak:   &c.LongestStreak,
		TotalActivities: &c.TotalActivities,
		IsVerified:      &c.IsVerified,
	}
}

// Clone returns a deep copy of u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := u.clone()
	return &c
}

func (u User) clone() User {
	out := u
	if u.Name != nil {
		out.Name = Ptr(*u.Name)
	}
	if u.Email != nil {
		out.Email = Ptr(*u.Email)
	}
	if u.ColonyID != nil {
		out.ColonyID = Ptr(*u.ColonyID)
	}
	return out
}

