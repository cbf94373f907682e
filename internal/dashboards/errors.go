package dashboards

import "dns-insights/internal/shared/svcerrors"

const errorCodeNoSnapshot = "DSH_1000"

// newNoSnapshotError reports that no reload has produced artifacts yet.
func newNoSnapshotError() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(errorCodeNoSnapshot, "no dashboard data loaded yet", nil)
}
