package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperr "integraservicios/internal/errors"
)

// MySQL server error numbers.
const (
	mysqlDuplicateEntry  = 1062
	mysqlDeadlock        = 1213
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// TranslateError converts driver errors into domain errors, keeping the original text.
// gorm.ErrRecordNotFound and unknown errors pass through unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	// Dialects with an error translator report constraint violations as gorm sentinels.
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", apperr.ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", apperr.ErrReferenced, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return fmt.Errorf("%w: %s", apperr.ErrConflict, pgErr.Message)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w: %s", apperr.ErrReferenced, pgErr.Message)
		}
		if pgerrcode.IsConnectionException(pgErr.Code) {
			return fmt.Errorf("%w: %s", apperr.ErrUnavailable, pgErr.Message)
		}
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry, mysqlDeadlock:
			return fmt.Errorf("%w: %s", apperr.ErrConflict, myErr.Message)
		case mysqlRowIsReferenced, mysqlNoReferencedRow:
			return fmt.Errorf("%w: %s", apperr.ErrReferenced, myErr.Message)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", apperr.ErrUnavailable, err)
	}
	return err
}
