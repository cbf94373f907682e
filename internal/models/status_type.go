package models

// StatusType is the three-way disposition of a query, derived from the
// appliance's numeric status code.
type StatusType string

const (
	StatusAllowed StatusType = "Allowed"
	StatusBlocked StatusType = "Blocked"
	StatusOther   StatusType = "Other"
)

// Status code sets for the appliance query log. Fixed, not configurable;
// every downstream percentage and ranking depends on this exact mapping.
var (
	allowedStatusCodes = map[int]struct{}{
		2: {}, 3: {}, 12: {}, 13: {}, 14: {}, 17: {},
	}
	blockedStatusCodes = map[int]struct{}{
		1: {}, 4: {}, 5: {}, 6: {}, 7: {}, 8: {}, 9: {}, 10: {}, 11: {}, 15: {}, 16: {}, 18: {},
	}
)

// ClassifyStatus maps a status code to its StatusType. The classification is
// total: codes in neither set, including unknown future codes, are Other.
func ClassifyStatus(code int) StatusType {
	if _, ok := allowedStatusCodes[code]; ok {
		return StatusAllowed
	}
	if _, ok := blockedStatusCodes[code]; ok {
		return StatusBlocked
	}
	return StatusOther
}
