package models

import "time"

// TimeWindow is a half-open [Start, End) epoch-second window in a concrete
// display timezone. All source reads and derived statistics are scoped to it.
type TimeWindow struct {
	StartTS int64
	EndTS   int64
}

// Start returns the inclusive lower bound in loc.
func (w TimeWindow) Start(loc *time.Location) time.Time {
	return time.Unix(w.StartTS, 0).In(loc)
}

// End returns the exclusive upper bound in loc.
func (w TimeWindow) End(loc *time.Location) time.Time {
	return time.Unix(w.EndTS, 0).In(loc)
}
