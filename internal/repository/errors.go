// Package repository defines error values shared across the stores. These
// sentinels let handlers distinguish expected domain outcomes (a taken
// username, a double like) from storage failures without inspecting raw
// database errors, which are logged but never shown to clients.
package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"
)

// ErrUsernameExists is returned when signing up with a username that is
// already taken. Handlers translate this into a {success:false} envelope.
var ErrUsernameExists = errors.New("username already exists")

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. The two cases are deliberately indistinguishable so a caller
// cannot probe which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrMovieNotFound is returned when an imdb id does not resolve to a
// catalog row.
var ErrMovieNotFound = errors.New("movie not found")

// ErrAlreadyLiked is returned when the (user, movie) pair already exists.
// The unique key on likes is the sole arbiter: of two concurrent likes for
// the same pair, exactly one row is stored and the loser observes this error.
var ErrAlreadyLiked = errors.New("movie already liked")

// ErrStoreUnavailable classifies connectivity-class failures (pool
// exhaustion, dead connections, timeouts) so handlers can answer 503 instead
// of a generic internal error.
var ErrStoreUnavailable = errors.New("store unavailable")

// isDuplicate reports whether err is a MySQL duplicate-key violation.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// IsUnavailable reports whether err is a connectivity-class failure rather
// than a statement-level one.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrStoreUnavailable) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}
