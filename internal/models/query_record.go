package models

import "time"

// QueryRecord is one raw row from a query-log database. IDs are unique only
// within their source database; after merging multiple sources they are not
// relied upon for identity.
type QueryRecord struct {
	ID        int64
	Timestamp int64 // epoch seconds, as stored by the appliance
	Status    int
	Domain    string
	Client    string
	ReplyTime *float64 // seconds; nil when the source has no measurement
}

// DayPeriod is the fixed local-hour split: Day covers hours 6-23, Night 0-5.
type DayPeriod string

const (
	PeriodDay   DayPeriod = "Day"
	PeriodNight DayPeriod = "Night"
)

// DayPeriodForHour maps an hour-of-day (0-23) to its period.
func DayPeriodForHour(hour int) DayPeriod {
	if hour >= 6 {
		return PeriodDay
	}
	return PeriodNight
}

// NormalizedRecord extends QueryRecord with derived, timezone-aware columns.
// Records are immutable after normalization; downstream stages only read them.
type NormalizedRecord struct {
	QueryRecord

	LocalTime  time.Time // Timestamp in the display timezone
	Date       time.Time // LocalTime truncated to midnight, same timezone
	Hour       int       // 0-23
	DayPeriod  DayPeriod
	DayName    string // weekday name, e.g. "Monday"
	StatusType StatusType
}
