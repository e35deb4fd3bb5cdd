// Package clock abstracts "now" so timers and archival cutoffs can be
// tested deterministically.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}
