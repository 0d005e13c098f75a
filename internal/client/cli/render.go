package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/communityos/internal/client/client"
)

var (
	errEmptyInput = errors.New("empty input")
	errUsage      = errors.New("usage")
)

// describe turns a client error into a one-line message for the user.
func describe(err error) string {
	var httpErr *client.HTTPError
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "session expired, please log in again"
	case errors.As(err, &httpErr):
		if d := httpErr.Detail(); d != "" {
			return d
		}
		return httpErr.Error()
	case errors.Is(err, client.ErrNetwork):
		return "backend unreachable"
	case errors.Is(err, client.ErrDecode):
		return "unexpected response from backend"
	default:
		return err.Error()
	}
}

// table writes tab-separated rows with aligned columns.
func table(w io.Writer, header string, rows []string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, r := range rows {
		fmt.Fprintln(tw, r)
	}
	_ = tw.Flush()
}

// parseID parses args[i] as a positive id; a missing argument yields 0.
func parseID(args []string, i int) (int64, error) {
	if len(args) <= i {
		return 0, nil
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errUsage, args[i])
	}
	return id, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
