package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/communityos/internal/client/models"
)

// SendOTP calls POST /auth/send-otp. Calls closer together than the
// configured resend interval fail with ErrThrottled before any I/O.
func (c *HTTPClient) SendOTP(ctx context.Context, phone string) (*models.SendOTPResponse, error) {
	if !c.otpLimiter.Allow() {
		return nil, ErrThrottled
	}
	var out models.SendOTPResponse
	if err := c.do(ctx, http.MethodPost, "/auth/send-otp", nil, models.SendOTPRequest{Phone: phone}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP calls POST /auth/verify-otp. A 2xx answer without a token or a
// user is reported as ErrDecode.
func (c *HTTPClient) VerifyOTP(ctx context.Context, phone, otp string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-otp", nil, models.VerifyOTPRequest{Phone: phone, OTP: otp}, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("%w: verify-otp: missing access_token", ErrDecode)
	}
	if out.User == nil {
		return nil, fmt.Errorf("%w: verify-otp: missing user", ErrDecode)
	}
	return &out, nil
}

// Me calls GET /auth/me.
func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile calls PUT /users/profile. The backend takes the fields as
// query parameters and answers {success, user}.
func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	q := url.Values{}
	if upd.Name != nil {
		q.Set("name", *upd.Name)
	}
	if upd.Email != nil {
		q.Set("email", *upd.Email)
	}
	if upd.ColonyID != nil {
		q.Set("colony_id", strconv.FormatInt(*upd.ColonyID, 10))
	}

	var out models.ProfileResponse
	if err := c.do(ctx, http.MethodPut, "/users/profile", q, nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, fmt.Errorf("%w: users/profile: missing user", ErrDecode)
	}
	return out.User, nil
}

func (c *HTTPClient) States(ctx context.Context) ([]models.State, error) {
	var out []models.State
	err := c.do(ctx, http.MethodGet, "/geo/states", nil, nil, &out)
	return out, err
}

func (c *HTTPClient) Districts(ctx context.Context, stateID int64) ([]models.District, error) {
	q := url.Values{}
	setID(q, "state_id", stateID)
	var out []models.District
	err := c.do(ctx, http.MethodGet, "/geo/districts", q, nil, &out)
	return out, err
}

func (c *HTTPClient) Zones(ctx context.Context, districtID int64) ([]models.Zone, error) {
	q := url.Values{}
	setID(q, "district_id", districtID)
	var out []models.Zone
	err := c.do(ctx, http.MethodGet, "/geo/zones", q, nil, &out)
	return out, err
}

func (c *HTTPClient) Colonies(ctx context.Context, zoneID int64) ([]models.Colony, error) {
	q := url.Values{}
	setID(q, "zone_id", zoneID)
	var out []models.Colony
	err := c.do(ctx, http.MethodGet, "/geo/colonies", q, nil, &out)
	return out, err
}

func (c *HTTPClient) Events(ctx context.Context, f models.EventFilter) ([]models.Event, error) {
	q := url.Values{}
	setID(q, "colony_id", f.ColonyID)
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.ActivityType != "" {
		q.Set("activity_type", f.ActivityType)
	}
	var out []models.Event
	err := c.do(ctx, http.MethodGet, "/events", q, nil, &out)
	return out, err
}

func (c *HTTPClient) Event(ctx context.Context, id int64) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, e models.EventCreate) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPost, "/events", nil, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Clubs(ctx context.Context, colonyID, districtID int64) ([]models.Club, error) {
	q := url.Values{}
	setID(q, "colony_id", colonyID)
	setID(q, "district_id", districtID)
	var out []models.Club
	err := c.do(ctx, http.MethodGet, "/clubs", q, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateClub(ctx context.Context, club models.ClubCreate) (*models.Club, error) {
	var out models.Club
	if err := c.do(ctx, http.MethodPost, "/clubs", nil, club, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leaderboard calls GET /leaderboard. An empty scope means national and a
// non-positive limit leaves the server default in place.
func (c *HTTPClient) Leaderboard(ctx context.Context, scope string, geoID int64, limit int) (*models.Leaderboard, error) {
	q := url.Values{}
	if scope != "" {
		q.Set("scope", scope)
	}
	setID(q, "geo_id", geoID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out models.Leaderboard
	if err := c.do(ctx, http.MethodGet, "/leaderboard", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AdminStats(ctx context.Context) (*models.SystemStats, error) {
	var out models.SystemStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SystemRules(ctx context.Context) ([]models.SystemRule, error) {
	var out []models.SystemRule
	err := c.do(ctx, http.MethodGet, "/admin/system-rules", nil, nil, &out)
	return out, err
}

func (c *HTTPClient) FeatureFlags(ctx context.Context) ([]models.FeatureFlag, error) {
	var out []models.FeatureFlag
	err := c.do(ctx, http.MethodGet, "/admin/feature-flags", nil, nil, &out)
	return out, err
}

// UpsertSystemRule calls POST /admin/system-rules. Platform owners only.
func (c *HTTPClient) UpsertSystemRule(ctx context.Context, r models.SystemRuleUpsert) (*models.SystemRule, error) {
	var out models.SystemRule
	if err := c.do(ctx, http.MethodPost, "/admin/system-rules", nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertFeatureFlag calls POST /admin/feature-flags. Platform owners only.
func (c *HTTPClient) UpsertFeatureFlag(ctx context.Context, f models.FeatureFlagUpsert) (*models.FeatureFlag, error) {
	var out models.FeatureFlag
	if err := c.do(ctx, http.MethodPost, "/admin/feature-flags", nil, f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health calls GET /health; the payload shape is backend-defined.
func (c *HTTPClient) Health(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
