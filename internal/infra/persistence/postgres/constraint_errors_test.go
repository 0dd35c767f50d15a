package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	t.Parallel()

	unique := fmt.Errorf("insert vendor: %w", &pgconn.PgError{Code: "23505", ConstraintName: "vendors_email_key"})
	foreignKey := errors.Wrap(&pgconn.PgError{Code: "23503"}, "insert product")
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(foreignKey))

	assert.True(t, isForeignKeyConstraintViolation(foreignKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.True(t, isCheckConstraintViolation(check))
	assert.False(t, isCheckConstraintViolation(errors.New("connection reset")))
}
