// Package clock stamps persisted records with the time they were written
package clock

import (
	"time"

	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
)

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/dragonwilds-editor/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// Now returns the current time
func (System) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return System{}
}

// Stamp formats the clock's current time as UTC RFC 3339, the format used
// for every persisted timestamp.
func Stamp(c Clock) string {
	return c.Now().UTC().Format(time.RFC3339)
}

// ParseStamp reads a timestamp written by Stamp
func ParseStamp(stamp string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid timestamp %q", stamp)
	}
	return t, nil
}
