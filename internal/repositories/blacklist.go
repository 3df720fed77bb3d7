package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// BlacklistRepository stores revoked tokens in postgres
type BlacklistRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBlacklistRepository(db *sqlx.DB, txGetter TxGetter) *BlacklistRepository {
	return &BlacklistRepository{db: db, txGetter: txGetter}
}

// Add revokes token. Revoking twice is a no-op.
func (r *BlacklistRepository) Add(ctx context.Context, token string) error {
	const query = `INSERT INTO jwt_blacklist (token) VALUES ($1) ON CONFLICT (token) DO NOTHING`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, token)

	logQuery(query, nil, "revoked", err)

	return err
}

// Exists reports whether token has been revoked
func (r *BlacklistRepository) Exists(ctx context.Context, token string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM jwt_blacklist WHERE token = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, token)

	logQuery(query, nil, exists, err)

	return exists, err
}
