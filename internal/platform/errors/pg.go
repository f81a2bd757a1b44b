package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the report store cares about
const (
	pgUniqueViolation           = "23505"
	pgNotNullViolation          = "23502"
	pgCheckViolation            = "23514"
	pgStringDataRightTruncation = "22001"
	pgInvalidTextRepresentation = "22P02"
	pgUndefinedTable            = "42P01"

	pgSerializationFailure   = "40001"
	pgDeadlockDetected       = "40P01"
	pgLockNotAvailable       = "55P03"
	pgReadOnlySQLTransaction = "25006"
	pgCannotConnectNow       = "57P03"
	pgTooManyConnections     = "53300"
)

// PgError returns the *pgconn.PgError in err's chain
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == pgUniqueViolation
}

// DBErrorCode classifies a Postgres error. ok is false when err is not a PgError
func DBErrorCode(err error) (code ErrorCode, ok bool) {
	pgErr, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgNotNullViolation, pgCheckViolation:
		return ErrorCodeValidation, true
	case pgStringDataRightTruncation, pgInvalidTextRepresentation:
		return ErrorCodeInvalidArgument, true
	case pgReadOnlySQLTransaction, pgCannotConnectNow, pgTooManyConnections, pgUndefinedTable:
		return ErrorCodeUnavailable, true
	default:
		return ErrorCodeDB, true
	}
}

// FromPostgres wraps err with its mapped code, attaching the column as field when known.
// nil stays nil and pgx.ErrNoRows style misses should be handled by the caller first
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
		if stderrs.Is(err, context.DeadlineExceeded) {
			code = ErrorCodeUnavailable
		}
	}
	out := Wrap(err, code, msg)
	if pgErr, ok := PgError(err); ok && strings.TrimSpace(pgErr.ColumnName) != "" {
		out = WithField(out, pgErr.ColumnName)
	}
	return out
}

// IsRetryable reports whether a Postgres error is transient contention.
// Local cancellation is never retryable
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := PgError(err); ok {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	for _, frag := range []string{
		"commit unexpectedly resulted in rollback",
		"deadlock detected",
		"could not serialize access",
		"terminating connection due to administrator command",
	} {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}
