package catalog

import "time"

// State is what the storefront should present.
type State int

const (
	// StateActive shows the catalog.
	StateActive State = iota
	// StateInactive shows the "sale is closed" notice.
	StateInactive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "inactive"
}

// SaleWindow is the period during which the catalog is open.
type SaleWindow struct {
	Start time.Time
	End   time.Time
}

// Active reports whether now falls within the window, both ends inclusive.
func (w SaleWindow) Active(now time.Time) bool {
	return !now.Before(w.Start) && !now.After(w.End)
}

// State returns StateActive inside the window and StateInactive outside it.
func (w SaleWindow) State(now time.Time) State {
	if w.Active(now) {
		return StateActive
	}
	return StateInactive
}
