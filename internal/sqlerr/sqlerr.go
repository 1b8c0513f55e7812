// Package sqlerr classifies database driver errors.
//
// It reads the driver-specific error codes (PostgreSQL SQLSTATE via pgconn,
// sqlite extended result codes via go-sqlite3) and normalises them into a
// small Code enum, so repositories can tell a foreign-key violation apart from
// every other failure without depending on a particular driver.
package sqlerr
