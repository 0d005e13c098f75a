package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Me(ctx context.Context) error
	Profile(ctx context.Context) error
	Geo(ctx context.Context, args []string) error
	Events(ctx context.Context, args []string) error
	Event(ctx context.Context, args []string) error
	Clubs(ctx context.Context, args []string) error
	NewClub(ctx context.Context) error
	Leaderboard(ctx context.Context, args []string) error
	Admin(ctx context.Context) error
	SetRule(ctx context.Context, args []string) error
	SetFlag(ctx context.Context, args []string) error
	Health(ctx context.Context) error
	NetStats(ctx context.Context) error
}

const (
	guestHelp = "Available commands: login, geo, events, event, clubs, leaderboard, health, netstats, status, exit"
	userHelp  = "Available commands: me, profile, geo, events, event, clubs, newclub, leaderboard, admin, setrule, setflag, health, netstats, status, logout, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The prompt shows statusFn(). The loop exits on EOF or on "exit"/"quit".
//
// Command handlers report their own errors to the user, so their return
// values are ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cos %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "me":
			_ = a.Me(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "geo":
			_ = a.Geo(ctx, args)

		case "events":
			_ = a.Events(ctx, args)

		case "event":
			_ = a.Event(ctx, args)

		case "clubs":
			_ = a.Clubs(ctx, args)

		case "newclub":
			_ = a.NewClub(ctx)

		case "lb", "leaderboard":
			_ = a.Leaderboard(ctx, args)

		case "admin":
			_ = a.Admin(ctx)

		case "setrule":
			_ = a.SetRule(ctx, args)

		case "setflag":
			_ = a.SetFlag(ctx, args)

		case "health":
			_ = a.Health(ctx)

		case "netstats":
			_ = a.NetStats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
