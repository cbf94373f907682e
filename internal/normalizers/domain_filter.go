package normalizers

import (
	"context"
	"regexp"

	"dns-insights/internal/models"
	"dns-insights/internal/shared/loggers"
)

// IgnoreDomains drops records whose domain matches the exclusion pattern
// (unanchored regex search). An empty pattern is a no-op. An invalid pattern
// is logged and the input returned unfiltered; exclusion is best-effort and
// never aborts an analysis.
func IgnoreDomains(ctx context.Context, records []models.QueryRecord, pattern string) []models.QueryRecord {
	if pattern == "" {
		return records
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		loggers.Ctx(ctx).Warn().
			Str("pattern", pattern).
			Msg("ignored invalid regex pattern for domain exclusion")
		return records
	}

	kept := make([]models.QueryRecord, 0, len(records))
	for _, rec := range records {
		if !re.MatchString(rec.Domain) {
			kept = append(kept, rec)
		}
	}
	return kept
}
