package models

// SentinelNA is the value reported for string statistics whose underlying
// subgroup is empty. The dashboard renders it as-is instead of failing.
const SentinelNA = "N/A"

// PeriodStats holds the top-entity statistics for one day/night partition.
// Structurally identical to the overall top-entity stats, scoped to the
// partition.
type PeriodStats struct {
	TotalQueries int    `json:"totalQueries"`
	TopClient    string `json:"topClient"`

	TopAllowedClient string `json:"topAllowedClient"`
	TopBlockedClient string `json:"topBlockedClient"`

	TopAllowedDomain       string `json:"topAllowedDomain"`
	TopAllowedDomainCount  int    `json:"topAllowedDomainCount"`
	TopAllowedDomainClient string `json:"topAllowedDomainClient"`

	TopBlockedDomain       string `json:"topBlockedDomain"`
	TopBlockedDomainCount  int    `json:"topBlockedDomainCount"`
	TopBlockedDomainClient string `json:"topBlockedDomainClient"`
}

// Summary is the flat mapping of named statistics produced by one pipeline
// run. One typed field per statistic; optional means are pointers that stay
// nil when fewer than two qualifying rows exist.
type Summary struct {
	// Heading
	NDataPoints     int    `json:"nDataPoints"`
	OldestDataPoint string `json:"oldestDataPoint"` // full database, not just the window
	LatestDataPoint string `json:"latestDataPoint"`
	MinDate         string `json:"minDate"` // window bounds
	MaxDate         string `json:"maxDate"`
	DataSpanDays    int    `json:"dataSpanDays"`
	DataSpanStr     string `json:"dataSpanStr"`

	// Volume and ratios
	TotalQueries int     `json:"totalQueries"`
	AllowedCount int     `json:"allowedCount"`
	BlockedCount int     `json:"blockedCount"`
	AllowedPct   float64 `json:"allowedPct"`
	BlockedPct   float64 `json:"blockedPct"`

	// Top entities
	TopClient              string `json:"topClient"`
	TopAllowedClient       string `json:"topAllowedClient"`
	TopBlockedClient       string `json:"topBlockedClient"`
	TopAllowedDomain       string `json:"topAllowedDomain"`
	TopAllowedDomainCount  int    `json:"topAllowedDomainCount"`
	TopAllowedDomainClient string `json:"topAllowedDomainClient"`
	TopBlockedDomain       string `json:"topBlockedDomain"`
	TopBlockedDomainCount  int    `json:"topBlockedDomainCount"`
	TopBlockedDomainClient string `json:"topBlockedDomainClient"`

	// Persistence
	MostPersistentClient string `json:"mostPersistentClient"`
	BlockedDomain        string `json:"blockedDomain"`
	RepeatAttempts       int    `json:"repeatAttempts"`

	// Calendar activity ("02 January 2006")
	DateMostQueries  string `json:"dateMostQueries"`
	DateMostAllowed  string `json:"dateMostAllowed"`
	DateMostBlocked  string `json:"dateMostBlocked"`
	DateLeastQueries string `json:"dateLeastQueries"`
	DateLeastAllowed string `json:"dateLeastAllowed"`
	DateLeastBlocked string `json:"dateLeastBlocked"`

	// Hour-of-day activity
	MostActiveHour  int `json:"mostActiveHour"`
	LeastActiveHour int `json:"leastActiveHour"`
	AvgQueriesMost  int `json:"avgQueriesMost"`
	AvgQueriesLeast int `json:"avgQueriesLeast"`

	// Day-of-week activity (integer-rounded means)
	MostActiveDay  string `json:"mostActiveDay"`
	MostActiveAvg  int    `json:"mostActiveAvg"`
	LeastActiveDay string `json:"leastActiveDay"`
	LeastActiveAvg int    `json:"leastActiveAvg"`

	// Day/Night split
	Day   PeriodStats `json:"day"`
	Night PeriodStats `json:"night"`

	// Streaks
	LongestStreakLengthBlocked int    `json:"longestStreakLengthBlocked"`
	StreakDateBlocked          string `json:"streakDateBlocked"`
	StreakHourBlocked          string `json:"streakHourBlocked"`
	LongestStreakLengthAllowed int    `json:"longestStreakLengthAllowed"`
	StreakDateAllowed          string `json:"streakDateAllowed"`
	StreakHourAllowed          string `json:"streakHourAllowed"`

	// Idle gaps
	MaxIdleSeconds        *float64 `json:"maxIdleSeconds"`
	BeforeGap             string   `json:"beforeGap"`
	AfterGap              string   `json:"afterGap"`
	AvgTimeBetweenBlocked *float64 `json:"avgTimeBetweenBlocked"` // seconds
	AvgTimeBetweenAllowed *float64 `json:"avgTimeBetweenAllowed"` // seconds

	// Diversity
	UniqueClients      int    `json:"uniqueClients"`
	UniqueDomains      int    `json:"uniqueDomains"`
	MostDiverseClient  string `json:"mostDiverseClient"`
	UniqueDomainsCount int    `json:"uniqueDomainsCount"`

	// Latency. Mean/max/min are |reply_time| in milliseconds; the slowest
	// domain mean stays in seconds and keeps its sign, matching the
	// appliance's own reporting.
	AvgReplyTimeMs      float64 `json:"avgReplyTimeMs"`
	MaxReplyTimeMs      float64 `json:"maxReplyTimeMs"`
	MinReplyTimeMs      float64 `json:"minReplyTimeMs"`
	SlowestDomain       string  `json:"slowestDomain"`
	SlowestAvgReplyTime float64 `json:"slowestAvgReplyTime"` // seconds
}
