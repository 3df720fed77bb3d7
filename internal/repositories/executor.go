package repositories

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-vacancies/internal/logger"
)

// TxGetter returns the transaction bound to ctx, or nil
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor prefers the request transaction over the pool
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// clauses accumulates SQL fragments with numbered placeholders
type clauses struct {
	parts []string
	args  []any
}

// add appends a fragment where every "?" is replaced by the next placeholder
func (c *clauses) add(fragment string, arg any) {
	c.args = append(c.args, arg)
	c.parts = append(c.parts, strings.ReplaceAll(fragment, "?", c.placeholder()))
}

func (c *clauses) placeholder() string {
	return "$" + strconv.Itoa(len(c.args))
}

// next reserves a placeholder for arg that is not part of the list
func (c *clauses) next(arg any) string {
	c.args = append(c.args, arg)
	return c.placeholder()
}

func (c *clauses) where() string {
	if len(c.parts) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.parts, " AND ")
}

func (c *clauses) set() string {
	return strings.Join(c.parts, ", ")
}
