package client

import (
	"context"

	"github.com/dmitrijs2005/communityos/internal/client/models"
)

// Client is the transport-agnostic contract of the backend REST API.
type Client interface {
	SendOTP(ctx context.Context, phone string) (*models.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, phone, otp string) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)

	States(ctx context.Context) ([]models.State, error)
	Districts(ctx context.Context, stateID int64) ([]models.District, error)
	Zones(ctx context.Context, districtID int64) ([]models.Zone, error)
	Colonies(ctx context.Context, zoneID int64) ([]models.Colony, error)

	Events(ctx context.Context, f models.EventFilter) ([]models.Event, error)
	Event(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, e models.EventCreate) (*models.Event, error)
	Clubs(ctx context.Context, colonyID, districtID int64) ([]models.Club, error)
	CreateClub(ctx context.Context, c models.ClubCreate) (*models.Club, error)
	Leaderboard(ctx context.Context, scope string, geoID int64, limit int) (*models.Leaderboard, error)

	AdminStats(ctx context.Context) (*models.SystemStats, error)
	SystemRules(ctx context.Context) ([]models.SystemRule, error)
	FeatureFlags(ctx context.Context) ([]models.FeatureFlag, error)
	UpsertSystemRule(ctx context.Context, r models.SystemRuleUpsert) (*models.SystemRule, error)
	UpsertFeatureFlag(ctx context.Context, f models.FeatureFlagUpsert) (*models.FeatureFlag, error)
	Health(ctx context.Context) (map[string]any, error)

	// OnUnauthorized registers fn to run after a 401 purged the stored session.
	OnUnauthorized(fn func(ctx context.Context))
}
