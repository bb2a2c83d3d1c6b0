package gormutil

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	errMySQLDuplicatedRecord          uint16 = 1062
	errMySQLForeignKeyConstraintFails uint16 = 1452
	errPostgresUniqueViolation               = "23505"
	errPostgresForeignKeyViolation           = "23503"
)

// IsDuplicatedRecordErr 一意制約違反エラーかどうか
//
// MySQL, PostgreSQL, SQLiteのドライバエラーと、gorm.ErrDuplicatedKeyに対応
func IsDuplicatedRecordErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mErr *mysql.MySQLError
	if errors.As(err, &mErr) {
		return mErr.Number == errMySQLDuplicatedRecord
	}
	var pErr *pgconn.PgError
	if errors.As(err, &pErr) {
		return pErr.Code == errPostgresUniqueViolation
	}
	var sErr sqlite3.Error
	if errors.As(err, &sErr) {
		return sErr.ExtendedCode == sqlite3.ErrConstraintUnique || sErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// IsForeignKeyConstraintFailsErr 外部キー制約違反エラーかどうか
func IsForeignKeyConstraintFailsErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var mErr *mysql.MySQLError
	if errors.As(err, &mErr) {
		return mErr.Number == errMySQLForeignKeyConstraintFails
	}
	var pErr *pgconn.PgError
	if errors.As(err, &pErr) {
		return pErr.Code == errPostgresForeignKeyViolation
	}
	var sErr sqlite3.Error
	if errors.As(err, &sErr) {
		return sErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
