package models

import "time"

// HourlyBucket is one sparse row of the hourly pre-aggregation: the number of
// queries for an (hour, disposition, client) combination. Combinations that
// never occurred are not materialized; consumers reindexing to a dense grid
// fill the gaps with zero themselves.
type HourlyBucket struct {
	HourStart  time.Time  `json:"hourStart"` // LocalTime truncated to the hour
	StatusType StatusType `json:"statusType"`
	Client     string     `json:"client"`
	Count      int        `json:"count"`
}

// HourlyAggregation is the pre-aggregated table used to answer interactive
// filter queries without rescanning the normalized records, plus the top-N
// clients by overall query count.
type HourlyAggregation struct {
	Buckets    []HourlyBucket `json:"buckets"`
	TopClients []string       `json:"topClients"`
}
