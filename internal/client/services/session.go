package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/communityos/internal/client/auth"
	"github.com/dmitrijs2005/communityos/internal/client/client"
	"github.com/dmitrijs2005/communityos/internal/client/models"
	"github.com/dmitrijs2005/communityos/internal/client/repositories/kv"
	"github.com/dmitrijs2005/communityos/internal/common"
	"github.com/dmitrijs2005/communityos/internal/logging"
)

// Authenticator is the part of the backend API the session needs.
type Authenticator interface {
	SendOTP(ctx context.Context, phone string) (*models.SendOTPResponse, error)
	VerifyOTP(ctx context.Context, phone, otp string) (*models.AuthResponse, error)
}

// State is a snapshot of the session. Authenticated is true exactly when
// both Token and User are set.
type State struct {
	User          *models.User
	Token         string
	Authenticated bool
	Loading       bool
}

// SessionStore owns the in-memory session and keeps it in step with the
// persisted record (token + user) in the key/value store.
//
// Login, Logout and LoadUser are serialized. UpdateUser and Invalidate only
// take the state lock, so they are safe to call while one of those is in
// flight (a 401 during Login ends up in Invalidate).
type SessionStore struct {
	auth  Authenticator
	store kv.Repository
	log   logging.Logger
	now   func() time.Time

	op sync.Mutex

	mu      sync.Mutex
	state   State
	gen     uint64
	seq     uint64
	written uint64
	subs    map[int]func(State)
	nextSub int

	pending sync.WaitGroup
}

// NewSessionStore returns a store in the Loading state. Call LoadUser once
// at startup to restore the persisted session.
func NewSessionStore(auth Authenticator, store kv.Repository, log logging.Logger) *SessionStore {
	if log == nil {
		log = logging.NewNop()
	}
	return &SessionStore{
		auth:  auth,
		store: store,
		log:   log,
		now:   time.Now,
		state: State{Loading: true},
		subs:  make(map[int]func(State)),
	}
}

// State returns a snapshot of the current session.
func (s *SessionStore) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned func removes the subscription.
func (s *SessionStore) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// SendOTP asks the backend to send a one-time password to phone.
func (s *SessionStore) SendOTP(ctx context.Context, phone string) (*models.SendOTPResponse, error) {
	resp, err := s.auth.SendOTP(ctx, phone)
	if err != nil {
		s.log.Warn(ctx, "send otp failed", "error", err)
		return nil, err
	}
	return resp, nil
}

// Login verifies the OTP, persists token and user, then marks the session
// authenticated. On any failure the in-memory session is left untouched.
func (s *SessionStore) Login(ctx context.Context, phone, otp string) error {
	s.op.Lock()
	defer s.op.Unlock()

	resp, err := s.auth.VerifyOTP(ctx, phone, otp)
	if err != nil {
		s.log.Error(ctx, "login failed", "error", err)
		return fmt.Errorf("verify otp: %w", err)
	}
	if resp == nil || resp.AccessToken == "" || resp.User == nil {
		s.log.Error(ctx, "login failed", "error", "incomplete auth response")
		return fmt.Errorf("%w: incomplete auth response", client.ErrDecode)
	}

	raw, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	// Background writes of the previous user must neither land after the new
	// record nor be started against it.
	s.pending.Wait()
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()

	if err := s.store.Set(ctx, common.TokenStorageKey, resp.AccessToken); err != nil {
		s.log.Error(ctx, "login failed", "error", err)
		return fmt.Errorf("%w: save token: %w", client.ErrStorage, err)
	}
	if err := s.store.Set(ctx, common.UserStorageKey, string(raw)); err != nil {
		s.log.Error(ctx, "login failed", "error", err)
		if derr := s.store.Delete(ctx, common.TokenStorageKey); derr != nil {
			s.log.Warn(ctx, "failed to roll back token", "error", derr)
		}
		return fmt.Errorf("%w: save user: %w", client.ErrStorage, err)
	}

	user := resp.User.Clone()
	s.update(func(st *State) {
		st.Token = resp.AccessToken
		st.User = user
		st.Loading = false
	})
	s.log.Info(ctx, "logged in", "user_id", user.ID)
	return nil
}

// Logout removes the persisted record and clears the session. Storage
// errors are logged; the in-memory session is cleared regardless.
func (s *SessionStore) Logout(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()

	// Let in-flight user writes land before the record is removed.
	s.pending.Wait()

	if err := s.store.Delete(ctx, common.TokenStorageKey, common.UserStorageKey); err != nil {
		s.log.Error(ctx, "failed to clear stored session", "error", err)
	}
	s.update(func(st *State) {
		st.Token = ""
		st.User = nil
	})
}

// LoadUser restores the session from the persisted record. Anything short
// of a token plus a decodable user yields an unauthenticated session.
// Loading is false afterwards on every path.
func (s *SessionStore) LoadUser(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()

	token, user, err := s.readRecord(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load stored session", "error", err)
	}

	if user != nil {
		if errors.Is(auth.CheckExpiry(token, s.now()), common.ErrTokenExpired) {
			s.log.Warn(ctx, "stored token has expired, keeping session until the backend rejects it", "user_id", user.ID)
		}
		s.update(func(st *State) {
			st.Token = token
			st.User = user
			st.Loading = false
		})
		s.log.Debug(ctx, "session restored", "user_id", user.ID)
		return
	}

	s.update(func(st *State) {
		st.Token = ""
		st.User = nil
		st.Loading = false
	})
}

func (s *SessionStore) readRecord(ctx context.Context) (string, *models.User, error) {
	token, ok, err := s.store.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", nil, fmt.Errorf("%w: read token: %w", client.ErrStorage, err)
	}
	if !ok || token == "" {
		return "", nil, nil
	}

	raw, ok, err := s.store.Get(ctx, common.UserStorageKey)
	if err != nil {
		return "", nil, fmt.Errorf("%w: read user: %w", client.ErrStorage, err)
	}
	if !ok {
		return "", nil, nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return "", nil, fmt.Errorf("%w: stored user: %w", client.ErrDecode, err)
	}
	if u.ID == 0 || u.Phone == "" {
		return "", nil, fmt.Errorf("%w: stored user has no id or phone", client.ErrDecode)
	}
	return token, &u, nil
}

// UpdateUser merges patch into the current user and persists the result in
// the background. It does nothing when the session is not authenticated.
func (s *SessionStore) UpdateUser(ctx context.Context, patch models.UserPatch) {
	s.mu.Lock()
	if !s.state.Authenticated {
		s.mu.Unlock()
		return
	}
	merged := s.state.User.Merge(patch)
	s.state.User = &merged
	gen := s.gen
	s.seq++
	seq := s.seq
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.pending.Add(1)
	s.mu.Unlock()

	s.notify(snap, subs)

	go s.persistUser(context.WithoutCancel(ctx), gen, seq, merged)
}

func (s *SessionStore) persistUser(ctx context.Context, gen, seq uint64, u models.User) {
	defer s.pending.Done()

	raw, err := json.Marshal(u)
	if err != nil {
		s.log.Error(ctx, "failed to encode user", "error", err)
		return
	}

	// The write happens under the state lock so it cannot interleave with a
	// session change or overwrite a newer copy of the user.
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || seq <= s.written {
		s.log.Debug(ctx, "dropping stale user write", "user_id", u.ID)
		return
	}
	if err := s.store.Set(ctx, common.UserStorageKey, string(raw)); err != nil {
		s.log.Error(ctx, "failed to persist user", "error", err)
		return
	}
	s.written = seq
}

// Flush blocks until background user writes have finished.
func (s *SessionStore) Flush() {
	s.pending.Wait()
}

// Invalidate drops the in-memory session without touching storage. It is
// registered as the transport's unauthorized callback, which has already
// purged the persisted record.
func (s *SessionStore) Invalidate(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.state.Authenticated
	s.mu.Unlock()

	s.update(func(st *State) {
		st.Token = ""
		st.User = nil
	})
	if wasAuthenticated {
		s.log.Warn(ctx, "session invalidated by backend")
	}
}

// update applies fn under the state lock, starts a new session generation
// and notifies subscribers with the resulting snapshot.
func (s *SessionStore) update(fn func(st *State)) {
	s.mu.Lock()
	fn(&s.state)
	s.state.Authenticated = s.state.Token != "" && s.state.User != nil
	s.gen++
	snap, subs := s.snapshotLocked(), s.subscribersLocked()
	s.mu.Unlock()

	s.notify(snap, subs)
}

func (s *SessionStore) snapshotLocked() State {
	st := s.state
	st.User = s.state.User.Clone()
	return st
}

func (s *SessionStore) subscribersLocked() []func(State) {
	out := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func (s *SessionStore) notify(st State, subs []func(State)) {
	for _, fn := range subs {
		snap := st
		snap.User = st.User.Clone()
		fn(snap)
	}
}
