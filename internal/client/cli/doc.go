// Package cli provides the interactive Community OS command-line client.
//
// It wires configuration, the local session database, the REST client and
// the session store, then runs a REPL on top of them. The REPL is the
// session's UI consumer: it subscribes to session changes and reports
// sign-in and sign-out as they happen, including sign-outs forced by the
// backend answering 401.
//
// Key features:
//   - Login with phone + one-time code, Logout
//   - Profile view, refresh and edit
//   - Geography, events, clubs and leaderboard browsing
//   - Admin dashboard for administrative roles
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
