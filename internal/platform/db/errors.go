package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	errDuplicateEntry   = 1062
	errRowIsReferenced  = 1451
	errNoReferencedRow  = 1452
	errRowIsReferenced2 = 1217
)

func mysqlErrNumber(err error) uint16 {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}
	return 0
}

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	return mysqlErrNumber(err) == errDuplicateEntry
}

// IsReferenced reports whether err is a delete or update blocked by a foreign key.
func IsReferenced(err error) bool {
	n := mysqlErrNumber(err)
	return n == errRowIsReferenced || n == errRowIsReferenced2
}

// IsMissingReference reports whether err is an insert pointing at a missing parent row.
func IsMissingReference(err error) bool {
	return mysqlErrNumber(err) == errNoReferencedRow
}
