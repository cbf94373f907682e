package ingestors

import "dns-insights/internal/shared/svcerrors"

const (
	errorCodeEmptyResult       = "ING_1000"
	errorCodeSourceUnavailable = "ING_9000"
	errorCodeSourceRead        = "ING_9001"
)

// newEmptyResultError reports a window that matched no rows in any source.
// Recoverable: the previously produced artifacts stay served.
func newEmptyResultError() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(errorCodeEmptyResult, "no queries found in the analyzed window", nil)
}

// newSourceUnavailableError reports a source database that could not be
// opened or probed. Fatal for the run.
func newSourceUnavailableError(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(errorCodeSourceUnavailable, cause)
}

func newSourceReadError(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(errorCodeSourceRead, cause)
}
