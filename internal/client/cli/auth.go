package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/communityos/internal/client/auth"
	"github.com/dmitrijs2005/communityos/internal/client/client"
)

// getSimpleText, getSecret and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getSecret     = GetSecret
	getMultiline  = GetMultiline
)

// now is the clock used for token expiry display.
var now = time.Now

// Login asks for a phone number, requests a one-time code and signs in with
// the code the user types. A throttled resend is not fatal: the code sent
// a moment ago is still valid.
func (a *App) Login(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}
	if phone == "" {
		fmt.Fprintln(a.out, "Phone number is required")
		return errEmptyInput
	}

	resp, err := a.session.SendOTP(ctx, phone)
	switch {
	case errors.Is(err, client.ErrThrottled):
		fmt.Fprintln(a.out, "A code was sent recently, please use that one")
	case err != nil:
		fmt.Fprintln(a.out, "Could not send code:", describe(err))
		return err
	default:
		if resp.Message != "" {
			fmt.Fprintln(a.out, resp.Message)
		}
		if resp.OTP != "" {
			fmt.Fprintf(a.out, "Development code: %s\n", resp.OTP)
		}
	}

	otp, err := getSecret(a.reader, a.out, "Enter code: ")
	if err != nil {
		return err
	}
	if otp == "" {
		fmt.Fprintln(a.out, "Code is required")
		return errEmptyInput
	}

	if err := a.session.Login(ctx, phone, otp); err != nil {
		fmt.Fprintln(a.out, "Login failed:", describe(err))
		return err
	}
	return nil
}

// Logout ends the session locally and removes the stored record.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	a.session.Logout(ctx)
	return nil
}

// Status prints who is signed in and when the token expires, if the token
// carries an expiry.
func (a *App) Status(ctx context.Context) error {
	st := a.session.State()
	if !st.Authenticated {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "Signed in as %s (%s), phone %s\n", st.User.DisplayName(), st.User.Role, st.User.Phone)

	claims, err := auth.Inspect(st.Token)
	if err != nil {
		fmt.Fprintln(a.out, "Token: opaque")
		return nil
	}
	exp, ok := claims.Expiry()
	switch {
	case !ok:
		fmt.Fprintln(a.out, "Token: no expiry")
	case claims.Expired(now()):
		fmt.Fprintf(a.out, "Token: expired at %s\n", exp.Local().Format(time.RFC1123))
	default:
		fmt.Fprintf(a.out, "Token: valid until %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}
