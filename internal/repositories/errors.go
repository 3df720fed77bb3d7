package repositories

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE of unique_violation
const pgUniqueViolation = "23505"

// ErrNotFound is returned when a row addressed by id does not exist
var ErrNotFound = errors.New("not found")

var uniqueDetail = regexp.MustCompile(`\((.+?)\)=\((.*)\)`)

// UniqueViolationError maps each conflicting column to the value that collided
type UniqueViolationError struct {
	Fields map[string]string
}

func (e *UniqueViolationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, e.Fields[k]))
	}
	return "unique violation: " + strings.Join(pairs, ", ")
}

// asUniqueViolation converts a postgres unique_violation into *UniqueViolationError.
// Any other error is returned unchanged.
func asUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return err
	}

	fields := parseUniqueDetail(pgErr.Detail)
	if len(fields) == 0 && pgErr.ColumnName != "" {
		fields = map[string]string{pgErr.ColumnName: ""}
	}
	return &UniqueViolationError{Fields: fields}
}

// parseUniqueDetail reads `Key (col1, col2)=(v1, v2) already exists.`
func parseUniqueDetail(detail string) map[string]string {
	m := uniqueDetail.FindStringSubmatch(detail)
	if m == nil {
		return nil
	}

	columns := strings.Split(m[1], ", ")
	values := strings.Split(m[2], ", ")
	if len(columns) != len(values) {
		return map[string]string{m[1]: m[2]}
	}

	fields := make(map[string]string, len(columns))
	for i, c := range columns {
		fields[c] = values[i]
	}
	return fields
}
