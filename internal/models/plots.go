package models

import "time"

// ClientDispositionCount is one bar segment of the stacked top-clients plot.
type ClientDispositionCount struct {
	Client     string     `json:"client"`
	StatusType StatusType `json:"statusType"`
	Count      int        `json:"count"`
}

// DomainCount is one bar of a top-domains plot. Label is the display form of
// Domain, shortened for long names.
type DomainCount struct {
	Domain string `json:"domain"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// DateReplyTime is one point of the mean-reply-time-per-date plot.
type DateReplyTime struct {
	Date        time.Time `json:"date"`
	MeanReplyMs float64   `json:"meanReplyMs"`
}

// PlotData carries the plot-ready tabular summaries consumed by the
// presentation layer. Rendering is not this package's concern.
type PlotData struct {
	ClientsByDisposition []ClientDispositionCount `json:"clientsByDisposition"`
	TopBlockedDomains    []DomainCount            `json:"topBlockedDomains"`
	TopAllowedDomains    []DomainCount            `json:"topAllowedDomains"`
	ReplyTimeByDate      []DateReplyTime          `json:"replyTimeByDate"`
}

// maxDomainLabelLen is the display budget for domain labels on plots.
const maxDomainLabelLen = 45

// TruncateDomain shortens a long domain for display, keeping the head and
// tail around an ellipsis so both the subdomain and the TLD stay visible.
// Domains at or under the budget are returned unchanged.
func TruncateDomain(domain string) string {
	if len(domain) <= maxDomainLabelLen {
		return domain
	}
	head := (maxDomainLabelLen - 3) / 2
	tail := maxDomainLabelLen - 3 - head
	return domain[:head] + "..." + domain[len(domain)-tail:]
}
