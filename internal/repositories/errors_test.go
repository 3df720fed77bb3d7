package repositories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected map[string]string
	}{
		{
			name:     "SingleColumn",
			err:      &pgconn.PgError{Code: "23505", Detail: "Key (source)=(https://hh.ru/vacancy/1) already exists."},
			expected: map[string]string{"source": "https://hh.ru/vacancy/1"},
		},
		{
			name:     "Composite",
			err:      &pgconn.PgError{Code: "23505", Detail: "Key (source_name, name)=(hh, Cook) already exists."},
			expected: map[string]string{"source_name": "hh", "name": "Cook"},
		},
		{
			name:     "Wrapped",
			err:      fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", Detail: "Key (username)=(admin) already exists."}),
			expected: map[string]string{"username": "admin"},
		},
		{
			name:     "NoDetail",
			err:      &pgconn.PgError{Code: "23505", ColumnName: "source"},
			expected: map[string]string{"source": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var uv *UniqueViolationError
			require.ErrorAs(t, asUniqueViolation(tt.err), &uv)
			assert.Equal(t, tt.expected, uv.Fields)
		})
	}
}

func TestAsUniqueViolation_PassThrough(t *testing.T) {
	other := &pgconn.PgError{Code: "23502", Message: "null value"}
	assert.Same(t, other, asUniqueViolation(other))

	plain := errors.New("boom")
	assert.Equal(t, plain, asUniqueViolation(plain))
}

func TestUniqueViolationError_Error(t *testing.T) {
	err := &UniqueViolationError{Fields: map[string]string{"source": "a", "name": "b"}}
	assert.Equal(t, "unique violation: name=b, source=a", err.Error())
}
