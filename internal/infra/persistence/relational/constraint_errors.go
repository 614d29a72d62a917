package relational

import (
	"database/sql"
	"database/sql/driver"
	"net"
	"strings"

	"users/internal/errors"
	"users/internal/infra/connmgr"

	"gorm.io/gorm"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// isUniqueConstraintViolation covers gorm's translated error for postgres and mysql
// and the raw modernc error for sqlite, which gorm cannot translate.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}

	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_NOTNULL {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// isDisconnect reports errors after which the pool should be thrown away.
// A caller's deadline or cancellation is not link loss, even though
// context.DeadlineExceeded satisfies net.Error.
func isDisconnect(err error) bool {
	if connmgr.IsCallerCancellation(err) {
		return false
	}
	if errors.IsAny(err, driver.ErrBadConn, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}
