// Package repoerr classifies failures raised by the record access layer.
//
// Single-row lookups that match nothing are not errors: they return a nil
// entity and a nil error. Everything else is wrapped in *Error so callers can
// branch on the category with errors.Is while still reaching the original
// storage error through errors.Unwrap.
package repoerr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrIntegrityViolation = errors.New("integrity violation")
)

type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the category sentinel; the wrapped error is reached through Unwrap.
func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func InvalidArgument(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrInvalidArgument, Err: fmt.Errorf(format, args...)}
}

func IntegrityViolation(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrIntegrityViolation, Err: fmt.Errorf(format, args...)}
}

// FromStorage attaches a category to an error returned by gorm or the driver.
// Unclassified errors keep only the operation name.
func FromStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var repoErr *Error
	if errors.As(err, &repoErr) {
		return err
	}
	if kind := classify(err); kind != nil {
		return &Error{Op: op, Kind: kind, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

func IsIntegrityViolation(err error) bool {
	return errors.Is(err, ErrIntegrityViolation)
}

func classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrIntegrityViolation
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded):
		return ErrStorageUnavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ErrStorageUnavailable
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return ErrStorageUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrStorageUnavailable
	}
	return nil
}

// classifySQLState maps SQLSTATE codes to a category.
//
//	23505 unique_violation, 23503 foreign_key_violation -> integrity
//	08xxx connection exception, 53xxx insufficient resources,
//	57P01-57P03 shutdown / cannot connect now            -> unavailable
func classifySQLState(code string) error {
	switch {
	case code == "23505", code == "23503":
		return ErrIntegrityViolation
	case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "53"):
		return ErrStorageUnavailable
	case code == "57P01", code == "57P02", code == "57P03":
		return ErrStorageUnavailable
	}
	return nil
}
