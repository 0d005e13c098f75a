package models

// State, District, Zone and Colony form the geography hierarchy.
type State struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type District struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	StateID int64  `json:"state_id"`
}

type Zone struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Code       string   `json:"code"`
	DistrictID int64    `json:"district_id"`
	Colonies   []Colony `json:"colonies"`
}

type Colony struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	ZoneID int64  `json:"zone_id"`
}

type Event struct {
	ID                  int64   `json:"id"`
	Title               string  `json:"title"`
	Description         *string `json:"description"`
	ActivityType        string  `json:"activity_type"`
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	ColonyID            int64   `json:"colony_id"`
	LocationDetails     *string `json:"location_details"`
	CreatorID           int64   `json:"creator_id"`
	ClubID              *int64  `json:"club_id"`
	MaxParticipants     *int    `json:"max_participants"`
	CurrentParticipants int     `json:"current_participants"`
	Status              string  `json:"status"`
	IsPaid              bool    `json:"is_paid"`
	EntryFee            float64 `json:"entry_fee"`
	CreatedAt           string  `json:"created_at"`
}

type EventCreate struct {
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	ActivityType    string  `json:"activity_type"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	ColonyID        int64   `json:"colony_id"`
	LocationDetails *string `json:"location_details,omitempty"`
	MaxParticipants *int    `json:"max_participants,omitempty"`
	IsPaid          bool    `json:"is_paid"`
	EntryFee        float64 `json:"entry_fee"`
	ClubID          *int64  `json:"club_id,omitempty"`
}

// EventFilter narrows GET /events. Zero values are omitted.
type EventFilter struct {
	ColonyID     int64
	Status       string
	ActivityType string
}

type Club struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	ClubType         string  `json:"club_type"`
	OwnerID          int64   `json:"owner_id"`
	ColonyID         *int64  `json:"colony_id"`
	DistrictID       *int64  `json:"district_id"`
	IsVerified       bool    `json:"is_verified"`
	SubscriptionTier string  `json:"subscription_tier"`
	CreatedAt        string  `json:"created_at"`
}

type ClubCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ClubType    string  `json:"club_type"`
	ColonyID    *int64  `json:"colony_id,omitempty"`
	DistrictID  *int64  `json:"district_id,omitempty"`
}

type LeaderboardEntry struct {
	UserID          int64   `json:"user_id"`
	Name            string  `json:"name"`
	ReputationScore float64 `json:"reputation_score"`
	CurrentStreak   int     `json:"current_streak"`
	TotalActivities int     `json:"total_activities"`
	Rank            int     `json:"rank"`
}

// Leaderboard scopes accepted by GET /leaderboard.
const (
	ScopeNational = "national"
	ScopeState    = "state"
	ScopeDistrict = "district"
	ScopeZone     = "zone"
	ScopeColony   = "colony"
)

type Leaderboard struct {
	Scope   string             `json:"scope"`
	Entries []LeaderboardEntry `json:"entries"`
}

type SystemStats struct {
	TotalUsers         int `json:"total_users"`
	ActiveUsersToday   int `json:"active_users_today"`
	TotalEvents        int `json:"total_events"`
	OngoingEvents      int `json:"ongoing_events"`
	TotalClubs         int `json:"total_clubs"`
	TotalColonies      int `json:"total_colonies"`
	PendingModerations int `json:"pending_moderations"`
}

type SystemRule struct {
	ID          int64   `json:"id"`
	RuleKey     string  `json:"rule_key"`
	RuleValue   string  `json:"rule_value"`
	Description *string `json:"description"`
	UpdatedByID int64   `json:"updated_by_id"`
	UpdatedAt   string  `json:"updated_at"`
}

// SystemRuleUpsert creates a rule or replaces the value of an existing key.
type SystemRuleUpsert struct {
	RuleKey     string  `json:"rule_key"`
	RuleValue   string  `json:"rule_value"`
	Description *string `json:"description,omitempty"`
}

type FeatureFlag struct {
	ID                int64   `json:"id"`
	FeatureName       string  `json:"feature_name"`
	IsEnabled         bool    `json:"is_enabled"`
	RolloutPercentage float64 `json:"rollout_percentage"`
	EnabledDistricts  []int64 `json:"enabled_districts"`
	Description       *string `json:"description"`
	UpdatedByID       int64   `json:"updated_by_id"`
	UpdatedAt         string  `json:"updated_at"`
}

// FeatureFlagUpsert creates a flag or overwrites the flag with the same name.
type FeatureFlagUpsert struct {
	FeatureName       string  `json:"feature_name"`
	IsEnabled         bool    `json:"is_enabled"`
	RolloutPercentage float64 `json:"rollout_percentage"`
	EnabledDistricts  []int64 `json:"enabled_districts,omitempty"`
	Description       *string `json:"description,omitempty"`
}
