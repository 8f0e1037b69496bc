package ledger

import "time"

// Settings are the ledger-wide inputs every valuation depends on.
type Settings struct {
	DefaultCurrency string
	Location        *time.Location
}

// Loc returns the configured location, or time.Local when unset.
func (s Settings) Loc() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}
