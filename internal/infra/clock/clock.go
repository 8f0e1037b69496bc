// Package clock provides the wall clock used outside tests.
package clock

import "time"

// System reads the current time from the operating system.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}
