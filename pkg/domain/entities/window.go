package entities

import "time"

// Window represents a time range for ledger queries. The zero value (or
// AllTime) matches every event. Bounded windows enforce only the lower
// bound, inclusively: an event stamped exactly at Start is inside, and
// an event stamped ahead of the caller's clock still counts. Ledger rows
// are written by many machines whose clocks may disagree.
type Window struct {
	Start time.Time
	All   bool
}

// AllTime returns a window matching every event
func AllTime() Window {
	return Window{All: true}
}

// LastDays returns a window matching everything since n days before now
func LastDays(n int, now time.Time) Window {
	return Window{Start: now.Add(-time.Duration(n) * 24 * time.Hour)}
}

// Last7Days returns the trailing-week window
func Last7Days(now time.Time) Window {
	return LastDays(7, now)
}

// Last30Days returns the trailing-month window
func Last30Days(now time.Time) Window {
	return LastDays(30, now)
}

// LastQuarter returns the trailing-90-day window
func LastQuarter(now time.Time) Window {
	return LastDays(90, now)
}

// Contains reports whether t falls within the window
func (w Window) Contains(t time.Time) bool {
	return w.All || !t.Before(w.Start)
}
