package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/communityos/internal/client/client"
	"github.com/dmitrijs2005/communityos/internal/client/config"
	clientdb "github.com/dmitrijs2005/communityos/internal/client/db"
	"github.com/dmitrijs2005/communityos/internal/client/models"
	"github.com/dmitrijs2005/communityos/internal/client/repositories/kv"
	"github.com/dmitrijs2005/communityos/internal/client/services"
	"github.com/dmitrijs2005/communityos/internal/common"
	"github.com/dmitrijs2005/communityos/internal/filex"
	"github.com/dmitrijs2005/communityos/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// sessionService is the part of services.SessionStore the CLI drives.
type sessionService interface {
	State() services.State
	SendOTP(ctx context.Context, phone string) (*models.SendOTPResponse, error)
	Login(ctx context.Context, phone, otp string) error
	Logout(ctx context.Context)
	LoadUser(ctx context.Context)
	Subscribe(fn func(services.State)) func()
	Flush()
}

type profileService interface {
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	Refresh(ctx context.Context) (*models.User, error)
}

// resourceAPI lists the backend calls the browsing commands use.
type resourceAPI interface {
	States(ctx context.Context) ([]models.State, error)
	Districts(ctx context.Context, stateID int64) ([]models.District, error)
	Zones(ctx context.Context, districtID int64) ([]models.Zone, error)
	Colonies(ctx context.Context, zoneID int64) ([]models.Colony, error)
	Events(ctx context.Context, f models.EventFilter) ([]models.Event, error)
	Event(ctx context.Context, id int64) (*models.Event, error)
	Clubs(ctx context.Context, colonyID, districtID int64) ([]models.Club, error)
	CreateClub(ctx context.Context, c models.ClubCreate) (*models.Club, error)
	Leaderboard(ctx context.Context, scope string, geoID int64, limit int) (*models.Leaderboard, error)
	AdminStats(ctx context.Context) (*models.SystemStats, error)
	SystemRules(ctx context.Context) ([]models.SystemRule, error)
	FeatureFlags(ctx context.Context) ([]models.FeatureFlag, error)
	UpsertSystemRule(ctx context.Context, r models.SystemRuleUpsert) (*models.SystemRule, error)
	UpsertFeatureFlag(ctx context.Context, f models.FeatureFlagUpsert) (*models.FeatureFlag, error)
	Health(ctx context.Context) (map[string]any, error)
}

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session sessionService
	profile profileService
	api     resourceAPI
	metrics prometheus.Gatherer
	reader  *bufio.Reader
	out     io.Writer

	mu          sync.Mutex
	lastAuthed  bool
	lastUserKey string
}

// NewApp opens the local session database under cfg.DataDir and builds the
// REST client and session store on top of it.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		log.Error(ctx, "error preparing data directory", "dir", c.DataDir, "error", err)
		return nil, err
	}
	c.DataDir = dir

	db, err := clientdb.Open(ctx, c.DatabasePath())
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	reg := prometheus.NewRegistry()
	store := kv.NewSQLiteRepository(db)
	api := client.New(c.BaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "http")),
		client.WithOTPResendInterval(c.OTPResendInterval),
		client.WithMetrics(client.NewMetrics(reg)),
	)

	session := services.NewSessionStore(api, store, log.With("component", "session"))
	api.OnUnauthorized(session.Invalidate)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		session: session,
		profile: services.NewProfileService(api, session),
		api:     api,
		metrics: reg,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores the stored session and blocks in the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	unsubscribe := a.session.Subscribe(a.onSessionChange)
	defer unsubscribe()
	defer a.Close()

	a.Root(ctx)
}

// Close waits for pending session writes and closes the database.
func (a *App) Close() error {
	a.session.Flush()
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated
}

// onSessionChange reports sign-in and sign-out, whatever caused them.
func (a *App) onSessionChange(st services.State) {
	if st.Loading {
		return
	}

	key := ""
	if st.User != nil {
		key = fmt.Sprint(st.User.ID)
	}

	a.mu.Lock()
	changed := st.Authenticated != a.lastAuthed || (st.Authenticated && key != a.lastUserKey)
	wasAuthed := a.lastAuthed
	a.lastAuthed, a.lastUserKey = st.Authenticated, key
	a.mu.Unlock()

	if !changed {
		return
	}
	switch {
	case st.Authenticated:
		fmt.Fprintf(a.out, "Signed in as %s\n", st.User.DisplayName())
	case wasAuthed:
		fmt.Fprintln(a.out, "Signed out")
	}
}

// requireLogin prints a hint and returns common.ErrorUnauthenticated when
// there is no session.
func (a *App) requireLogin() error {
	if a.isLoggedIn() {
		return nil
	}
	fmt.Fprintln(a.out, "Please log in first (type 'login')")
	return common.ErrorUnauthenticated
}

func (a *App) requireAdmin() error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if u := a.session.State().User; u == nil || !u.Role.IsAdmin() {
		fmt.Fprintln(a.out, "Admin access required")
		return errUsage
	}
	return nil
}
