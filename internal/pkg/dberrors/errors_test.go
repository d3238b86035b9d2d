package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(pgError("23505", "teachers_email_key")))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create failed: %w", pgError("23505", ""))))
	assert.False(t, IsUniqueViolation(pgError("23503", "")))
	assert.False(t, IsUniqueViolation(errors.New("plain error")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	err := pgError("23505", "students_email_key")
	assert.True(t, IsUniqueConstraintViolation(err, "students_email_key"))
	assert.False(t, IsUniqueConstraintViolation(err, "students_student_number_key"))
	assert.False(t, IsUniqueConstraintViolation(pgError("23503", "students_email_key"), "students_email_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(pgError("23503", "careers_area_id_fkey")))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("delete failed: %w", pgError("23503", ""))))
	assert.False(t, IsForeignKeyViolation(pgError("23505", "")))
	assert.False(t, IsForeignKeyViolation(errors.New("plain error")))
}
