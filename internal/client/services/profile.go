package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/communityos/internal/client/models"
	"github.com/dmitrijs2005/communityos/internal/common"
)

// ProfileAPI is the part of the backend API used for profile maintenance.
type ProfileAPI interface {
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)
}

// ProfileService pushes profile edits to the backend and folds the server's
// copy of the user back into the session.
type ProfileService struct {
	api     ProfileAPI
	session *SessionStore
}

func NewProfileService(api ProfileAPI, session *SessionStore) *ProfileService {
	return &ProfileService{api: api, session: session}
}

// UpdateProfile sends upd to the backend and merges the returned user into
// the session.
func (p *ProfileService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	if !p.session.State().Authenticated {
		return nil, common.ErrorUnauthenticated
	}
	u, err := p.api.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	p.session.UpdateUser(ctx, models.PatchFrom(*u))
	return u, nil
}

// Refresh fetches the current user and merges it into the session.
func (p *ProfileService) Refresh(ctx context.Context) (*models.User, error) {
	if !p.session.State().Authenticated {
		return nil, common.ErrorUnauthenticated
	}
	u, err := p.api.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh profile: %w", err)
	}
	p.session.UpdateUser(ctx, models.PatchFrom(*u))
	return u, nil
}
