package errors

import (
	stderrs "errors"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// ClickHouse server exception codes the analytics sink cares about
const (
	chUnknownTable        = 60
	chUnknownDatabase     = 81
	chTimeoutExceeded     = 159
	chSocketTimeout       = 209
	chNetworkError        = 210
	chTooManySimultaneous = 202
	chAuthFailed          = 516
)

// ClickHouseException returns the server exception in err's chain
func ClickHouseException(err error) (*clickhouse.Exception, bool) {
	var ex *clickhouse.Exception
	if stderrs.As(err, &ex) {
		return ex, true
	}
	return nil, false
}

// FromClickHouse wraps err with a code derived from the server exception, if any
func FromClickHouse(err error, msg string) error {
	if err == nil {
		return nil
	}
	ex, ok := ClickHouseException(err)
	if !ok {
		return Wrap(err, ErrorCodeDB, msg)
	}
	switch ex.Code {
	case chUnknownTable, chUnknownDatabase, chAuthFailed,
		chTimeoutExceeded, chSocketTimeout, chNetworkError, chTooManySimultaneous:
		return Wrap(err, ErrorCodeUnavailable, msg)
	default:
		return Wrap(err, ErrorCodeDB, msg)
	}
}

// IsClickHouseRetryable reports a transient ClickHouse server condition
func IsClickHouseRetryable(err error) bool {
	ex, ok := ClickHouseException(err)
	if !ok {
		return false
	}
	switch ex.Code {
	case chTimeoutExceeded, chSocketTimeout, chNetworkError, chTooManySimultaneous:
		return true
	}
	return false
}
