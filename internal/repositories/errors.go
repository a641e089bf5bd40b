// Package repositories contains MySQL data access for all catalog entities.
// The sentinel errors below are shared across repositories so that higher
// layers can distinguish failure kinds with errors.Is instead of matching
// on error strings.
package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when the requested row does not exist.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique key,
// such as registering an email twice or liking the same video twice.
// Handlers translate it into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate entry")

// mysqlDuplicateEntry is the MySQL error number for unique key violations
const mysqlDuplicateEntry = 1062

// isDuplicateEntry reports whether err is a MySQL 1062 unique key violation
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
