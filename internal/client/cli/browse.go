package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/communityos/internal/client/models"
)

// Geo walks the geography hierarchy:
//
//	geo                        states
//	geo districts <state_id>
//	geo zones <district_id>
//	geo colonies <zone_id>
func (a *App) Geo(ctx context.Context, args []string) error {
	level := "states"
	if len(args) > 0 {
		level = args[0]
	}

	id, err := parseID(args, 1)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: geo [districts|zones|colonies <parent_id>]")
		return err
	}

	var rows []string
	switch level {
	case "states":
		states, err := a.api.States(ctx)
		if err != nil {
			return a.fail(ctx, "Could not load states", err)
		}
		for _, s := range states {
			rows = append(rows, fmt.Sprintf("%d\t%s\t%s", s.ID, s.Code, s.Name))
		}
	case "districts":
		districts, err := a.api.Districts(ctx, id)
		if err != nil {
			return a.fail(ctx, "Could not load districts", err)
		}
		for _, d := range districts {
			rows = append(rows, fmt.Sprintf("%d\t%s\t%s", d.ID, d.Code, d.Name))
		}
	case "zones":
		zones, err := a.api.Zones(ctx, id)
		if err != nil {
			return a.fail(ctx, "Could not load zones", err)
		}
		for _, z := range zones {
			rows = append(rows, fmt.Sprintf("%d\t%s\t%s (%d colonies)", z.ID, z.Code, z.Name, len(z.Colonies)))
		}
	case "colonies":
		colonies, err := a.api.Colonies(ctx, id)
		if err != nil {
			return a.fail(ctx, "Could not load colonies", err)
		}
		for _, c := range colonies {
			rows = append(rows, fmt.Sprintf("%d\t%s\t%s", c.ID, c.Code, c.Name))
		}
	default:
		fmt.Fprintln(a.out, "Usage: geo [districts|zones|colonies <parent_id>]")
		return errUsage
	}

	a.printRows("ID\tCODE\tNAME", rows)
	return nil
}

// Events lists events: events [colony_id] [status].
func (a *App) Events(ctx context.Context, args []string) error {
	colonyID, err := parseID(args, 0)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: events [colony_id] [status]")
		return err
	}
	f := models.EventFilter{ColonyID: colonyID}
	if len(args) > 1 {
		f.Status = args[1]
	}

	events, err := a.api.Events(ctx, f)
	if err != nil {
		return a.fail(ctx, "Could not load events", err)
	}

	rows := make([]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, fmt.Sprintf("%d\t%s\t%s\t%s\t%s", e.ID, e.Title, e.ActivityType, e.StartTime, e.Status))
	}
	a.printRows("ID\tTITLE\tTYPE\tSTART\tSTATUS", rows)
	return nil
}

// Event shows one event: event <id>.
func (a *App) Event(ctx context.Context, args []string) error {
	id, err := parseID(args, 0)
	if err != nil || id == 0 {
		fmt.Fprintln(a.out, "Usage: event <id>")
		return errUsage
	}

	e, err := a.api.Event(ctx, id)
	if err != nil {
		return a.fail(ctx, "Could not load event", err)
	}

	capacity := "unlimited"
	if e.MaxParticipants != nil {
		capacity = strconv.Itoa(*e.MaxParticipants)
	}
	fee := "free"
	if e.IsPaid {
		fee = fmt.Sprintf("%.2f", e.EntryFee)
	}
	table(a.out, "FIELD\tVALUE", []string{
		fmt.Sprintf("title\t%s", e.Title),
		fmt.Sprintf("type\t%s", e.ActivityType),
		fmt.Sprintf("when\t%s - %s", e.StartTime, e.EndTime),
		fmt.Sprintf("where\t%s", deref(e.LocationDetails)),
		fmt.Sprintf("participants\t%d / %s", e.CurrentParticipants, capacity),
		fmt.Sprintf("fee\t%s", fee),
		fmt.Sprintf("status\t%s", e.Status),
	})
	if d := deref(e.Description); d != "" {
		fmt.Fprintln(a.out, d)
	}
	return nil
}

// Clubs lists clubs: clubs [colony_id].
func (a *App) Clubs(ctx context.Context, args []string) error {
	colonyID, err := parseID(args, 0)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: clubs [colony_id]")
		return err
	}

	clubs, err := a.api.Clubs(ctx, colonyID, 0)
	if err != nil {
		return a.fail(ctx, "Could not load clubs", err)
	}

	rows := make([]string, 0, len(clubs))
	for _, c := range clubs {
		rows = append(rows, fmt.Sprintf("%d\t%s\t%s\t%s", c.ID, c.Name, c.ClubType, c.SubscriptionTier))
	}
	a.printRows("ID\tNAME\tTYPE\tTIER", rows)
	return nil
}

// NewClub prompts for club details and creates the club.
func (a *App) NewClub(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Club name", a.out)
	if err != nil {
		return err
	}
	clubType, err := getSimpleText(a.reader, "Club type (e.g. sports, cultural, fitness)", a.out)
	if err != nil {
		return err
	}
	if name == "" || clubType == "" {
		fmt.Fprintln(a.out, "Name and type are required")
		return errEmptyInput
	}
	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	in := models.ClubCreate{Name: name, ClubType: clubType}
	if description != "" {
		in.Description = &description
	}
	if u := a.session.State().User; u != nil && u.ColonyID != nil {
		in.ColonyID = models.Ptr(*u.ColonyID)
	}

	club, err := a.api.CreateClub(ctx, in)
	if err != nil {
		return a.fail(ctx, "Could not create club", err)
	}
	fmt.Fprintf(a.out, "Club %q created with id %d\n", club.Name, club.ID)
	return nil
}

// Leaderboard prints rankings: leaderboard [scope] [geo_id].
func (a *App) Leaderboard(ctx context.Context, args []string) error {
	scope := models.ScopeNational
	if len(args) > 0 {
		scope = strings.ToLower(args[0])
	}
	switch scope {
	case models.ScopeNational, models.ScopeState, models.ScopeDistrict, models.ScopeZone, models.ScopeColony:
	default:
		fmt.Fprintln(a.out, "Usage: leaderboard [national|state|district|zone|colony] [geo_id]")
		return errUsage
	}
	geoID, err := parseID(args, 1)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: leaderboard [national|state|district|zone|colony] [geo_id]")
		return err
	}

	lb, err := a.api.Leaderboard(ctx, scope, geoID, 20)
	if err != nil {
		return a.fail(ctx, "Could not load leaderboard", err)
	}

	rows := make([]string, 0, len(lb.Entries))
	for _, e := range lb.Entries {
		rows = append(rows, fmt.Sprintf("%d\t%s\t%.1f\t%d\t%d", e.Rank, e.Name, e.ReputationScore, e.CurrentStreak, e.TotalActivities))
	}
	a.printRows("RANK\tNAME\tSCORE\tSTREAK\tACTIVITIES", rows)
	return nil
}

// Admin prints the platform dashboard. Only administrative roles may use it.
func (a *App) Admin(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}

	stats, err := a.api.AdminStats(ctx)
	if err != nil {
		return a.fail(ctx, "Could not load stats", err)
	}
	table(a.out, "METRIC\tVALUE", []string{
		fmt.Sprintf("users\t%d", stats.TotalUsers),
		fmt.Sprintf("active today\t%d", stats.ActiveUsersToday),
		fmt.Sprintf("events\t%d (%d ongoing)", stats.TotalEvents, stats.OngoingEvents),
		fmt.Sprintf("clubs\t%d", stats.TotalClubs),
		fmt.Sprintf("colonies\t%d", stats.TotalColonies),
		fmt.Sprintf("pending moderation\t%d", stats.PendingModerations),
	})

	rules, err := a.api.SystemRules(ctx)
	if err != nil {
		return a.fail(ctx, "Could not load system rules", err)
	}
	rows := make([]string, 0, len(rules))
	for _, r := range rules {
		rows = append(rows, fmt.Sprintf("%s\t%s", r.RuleKey, r.RuleValue))
	}
	a.printRows("RULE\tVALUE", rows)

	flags, err := a.api.FeatureFlags(ctx)
	if err != nil {
		return a.fail(ctx, "Could not load feature flags", err)
	}
	rows = rows[:0]
	for _, f := range flags {
		state := "off"
		if f.IsEnabled {
			state = fmt.Sprintf("on (%.0f%%)", f.RolloutPercentage)
		}
		rows = append(rows, fmt.Sprintf("%s\t%s", f.FeatureName, state))
	}
	a.printRows("FEATURE\tSTATE", rows)
	return nil
}

// SetRule creates or updates a system rule: setrule <key> <value...>.
func (a *App) SetRule(ctx context.Context, args []string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: setrule <key> <value>")
		return errUsage
	}

	rule, err := a.api.UpsertSystemRule(ctx, models.SystemRuleUpsert{
		RuleKey:   args[0],
		RuleValue: strings.Join(args[1:], " "),
	})
	if err != nil {
		return a.fail(ctx, "Could not save rule", err)
	}
	fmt.Fprintf(a.out, "Rule %s = %s\n", rule.RuleKey, rule.RuleValue)
	return nil
}

// SetFlag switches a feature flag: setflag <name> on|off [rollout_percent].
func (a *App) SetFlag(ctx context.Context, args []string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	usage := func() error {
		fmt.Fprintln(a.out, "Usage: setflag <name> on|off [rollout_percent]")
		return errUsage
	}
	if len(args) < 2 || len(args) > 3 {
		return usage()
	}

	upd := models.FeatureFlagUpsert{FeatureName: args[0]}
	switch strings.ToLower(args[1]) {
	case "on":
		upd.IsEnabled = true
		upd.RolloutPercentage = 100
	case "off":
	default:
		return usage()
	}
	if len(args) == 3 {
		pct, err := strconv.ParseFloat(args[2], 64)
		if err != nil || pct < 0 || pct > 100 {
			return usage()
		}
		upd.RolloutPercentage = pct
	}

	flag, err := a.api.UpsertFeatureFlag(ctx, upd)
	if err != nil {
		return a.fail(ctx, "Could not save feature flag", err)
	}
	state := "off"
	if flag.IsEnabled {
		state = fmt.Sprintf("on (%.0f%%)", flag.RolloutPercentage)
	}
	fmt.Fprintf(a.out, "Feature %s is %s\n", flag.FeatureName, state)
	return nil
}

// Health prints the backend health report.
func (a *App) Health(ctx context.Context) error {
	h, err := a.api.Health(ctx)
	if err != nil {
		return a.fail(ctx, "Backend unhealthy", err)
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, fmt.Sprintf("%s\t%v", k, h[k]))
	}
	table(a.out, "KEY\tVALUE", rows)
	return nil
}

func (a *App) printRows(header string, rows []string) {
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "Nothing found")
		return
	}
	table(a.out, header, rows)
}

// fail reports err to the user and logs it, then returns it unchanged.
func (a *App) fail(ctx context.Context, msg string, err error) error {
	fmt.Fprintf(a.out, "%s: %s\n", msg, describe(err))
	if a.log != nil {
		a.log.Debug(ctx, msg, "error", err)
	}
	return err
}
