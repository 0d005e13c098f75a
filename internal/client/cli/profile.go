package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/communityos/internal/client/models"
)

// Me refreshes the user from the backend and prints it.
func (a *App) Me(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	u, err := a.profile.Refresh(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", describe(err))
		return err
	}
	a.printUser(u)
	return nil
}

// Profile prompts for name, email and colony; blank answers keep the
// current value.
func (a *App) Profile(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	var upd models.ProfileUpdate

	name, err := getSimpleText(a.reader, "Name (blank to keep)", a.out)
	if err != nil {
		return err
	}
	if name != "" {
		upd.Name = &name
	}

	email, err := getSimpleText(a.reader, "Email (blank to keep)", a.out)
	if err != nil {
		return err
	}
	if email != "" {
		upd.Email = &email
	}

	colony, err := getSimpleText(a.reader, "Colony id (blank to keep)", a.out)
	if err != nil {
		return err
	}
	if colony != "" {
		id, err := strconv.ParseInt(colony, 10, 64)
		if err != nil || id <= 0 {
			fmt.Fprintf(a.out, "Invalid colony id %q\n", colony)
			return errUsage
		}
		upd.ColonyID = &id
	}

	if upd.Name == nil && upd.Email == nil && upd.ColonyID == nil {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}

	u, err := a.profile.UpdateProfile(ctx, upd)
	if err != nil {
		fmt.Fprintln(a.out, "Profile update failed:", describe(err))
		return err
	}
	fmt.Fprintln(a.out, "Profile updated")
	a.printUser(u)
	return nil
}

func (a *App) printUser(u *models.User) {
	colony := "-"
	if u.ColonyID != nil {
		colony = strconv.FormatInt(*u.ColonyID, 10)
	}
	verified := "no"
	if u.IsVerified {
		verified = "yes"
	}
	table(a.out, "FIELD\tVALUE", []string{
		fmt.Sprintf("id\t%d", u.ID),
		fmt.Sprintf("name\t%s", u.DisplayName()),
		fmt.Sprintf("phone\t%s", u.Phone),
		fmt.Sprintf("email\t%s", deref(u.Email)),
		fmt.Sprintf("role\t%s", u.Role),
		fmt.Sprintf("colony\t%s", colony),
		fmt.Sprintf("reputation\t%.1f", u.ReputationScore),
		fmt.Sprintf("streak\t%d (best %d)", u.CurrentStreak, u.LongestStreak),
		fmt.Sprintf("activities\t%d", u.TotalActivities),
		fmt.Sprintf("verified\t%s", verified),
	})
}
