package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	st := a.session.State()
	switch {
	case st.Loading:
		return "(loading)"
	case st.Authenticated:
		return fmt.Sprintf("(%s %s)", st.User.DisplayName(), st.User.Role)
	default:
		return "(guest)"
	}
}

// Root restores the stored session and runs the REPL on the app's reader.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Community OS CLI (type 'help' for commands)")

	a.session.LoadUser(ctx)
	if !a.isLoggedIn() {
		printlnFn("You are not logged in. Type 'login' to sign in with your phone number.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
