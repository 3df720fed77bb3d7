package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

const vacancyColumns = `id, created_at, modified_at, name, source, source_name, description, is_published`

// VacancyReadRepository runs filter and search queries over vacancies
type VacancyReadRepository struct {
	db *sqlx.DB
}

func NewVacancyReadRepository(db *sqlx.DB) *VacancyReadRepository {
	return &VacancyReadRepository{db: db}
}

// Filter returns vacancies matching every non-nil field of f.
// Each row carries the total number of matches before pagination.
func (r *VacancyReadRepository) Filter(ctx context.Context, f models.VacancyFilter, page models.Page) ([]models.VacancyRow, error) {
	var c clauses
	if f.ID != nil {
		c.add("id = ?", *f.ID)
	}
	if f.SourceName != nil {
		c.add("source_name = ?", *f.SourceName)
	}
	if f.IsPublished != nil {
		c.add("is_published = ?", *f.IsPublished)
	}
	if f.ModifiedAt != nil {
		c.add("modified_at = ?", *f.ModifiedAt)
	}

	return r.selectPage(ctx, &c, page)
}

// Search filters vacancies by a modification date range, a full text query
// over the name and an exact source name. Unpublished rows are skipped when
// PublishedOnly is set.
func (r *VacancyReadRepository) Search(ctx context.Context, s models.VacancySearch, page models.Page) ([]models.VacancyRow, error) {
	var c clauses
	if s.PublishedOnly {
		c.add("is_published = ?", true)
	}
	if s.DateFrom != nil {
		c.add("modified_at >= ?", *s.DateFrom)
	}
	if s.DateTo != nil {
		c.add("modified_at <= ?", *s.DateTo)
	}
	if s.Query != nil {
		c.add("search_index @@ plainto_tsquery('russian', ?)", *s.Query)
	}
	if s.SourceName != nil {
		c.add("source_name = ?", *s.SourceName)
	}

	return r.selectPage(ctx, &c, page)
}

func (r *VacancyReadRepository) selectPage(ctx context.Context, c *clauses, page models.Page) ([]models.VacancyRow, error) {
	var limit any
	if page.Limit > 0 {
		limit = page.Limit
	}
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + vacancyColumns + `, COUNT(*) OVER() AS count FROM vacancies` +
		c.where() +
		` ORDER BY modified_at, source_name, id LIMIT ` + c.next(limit) + ` OFFSET ` + c.next(offset)

	rows := []models.VacancyRow{}
	err := sqlx.SelectContext(ctx, r.db, &rows, query, c.args...)

	logQuery(query, c.args, len(rows), err)

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// VacancyWriteRepository handles vacancy writes
type VacancyWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewVacancyWriteRepository(db *sqlx.DB, txGetter TxGetter) *VacancyWriteRepository {
	return &VacancyWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new vacancy. A nil IsPublished defaults to true.
func (r *VacancyWriteRepository) Create(ctx context.Context, d models.VacancyData) (*models.VacancyDB, error) {
	const query = `
		INSERT INTO vacancies (name, source, source_name, description, is_published)
		VALUES ($1, $2, $3, $4, COALESCE($5::BOOLEAN, TRUE))
		RETURNING ` + vacancyColumns

	args := []any{d.Name, d.Source, d.SourceName, d.Description, d.IsPublished}

	var v models.VacancyDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &v, query, args...)

	logQuery(query, args, v.ID, err)

	if err != nil {
		return nil, asUniqueViolation(err)
	}
	return &v, nil
}

// Upsert inserts a vacancy or, when its source already exists, overwrites the
// supplied fields and restamps modified_at. created_at is never touched.
// The boolean result is true when a new row was inserted.
func (r *VacancyWriteRepository) Upsert(ctx context.Context, d models.VacancyData) (bool, *models.VacancyDB, error) {
	if d.Source == nil {
		v, err := r.Create(ctx, d)
		return err == nil, v, err
	}

	const query = `
		INSERT INTO vacancies (name, source, source_name, description, is_published)
		VALUES ($1, $2, $3, $4, COALESCE($5::BOOLEAN, TRUE))
		ON CONFLICT (source) DO UPDATE SET
			name = EXCLUDED.name,
			source_name = EXCLUDED.source_name,
			description = COALESCE(EXCLUDED.description, vacancies.description),
			is_published = COALESCE($5::BOOLEAN, vacancies.is_published),
			modified_at = CURRENT_DATE
		RETURNING ` + vacancyColumns + `, (xmax = 0) AS created`

	args := []any{d.Name, d.Source, d.SourceName, d.Description, d.IsPublished}

	var res struct {
		models.VacancyDB
		Created bool `db:"created"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &res, query, args...)

	logQuery(query, args, res.Created, err)

	if err != nil {
		return false, nil, asUniqueViolation(err)
	}
	return res.Created, &res.VacancyDB, nil
}

// Update overwrites the supplied fields of vacancy id and restamps modified_at.
// Returns ErrNotFound when the vacancy does not exist.
func (r *VacancyWriteRepository) Update(ctx context.Context, id int64, d models.VacancyData) (*models.VacancyDB, error) {
	var c clauses
	if d.Name != nil {
		c.add("name = ?", *d.Name)
	}
	if d.Source != nil {
		c.add("source = ?", *d.Source)
	}
	if d.SourceName != nil {
		c.add("source_name = ?", *d.SourceName)
	}
	if d.Description != nil {
		c.add("description = ?", *d.Description)
	}
	if d.IsPublished != nil {
		c.add("is_published = ?", *d.IsPublished)
	}
	c.parts = append(c.parts, "modified_at = CURRENT_DATE")

	query := `UPDATE vacancies SET ` + c.set() + ` WHERE id = ` + c.next(id) + ` RETURNING ` + vacancyColumns

	var v models.VacancyDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &v, query, c.args...)

	logQuery(query, c.args, v.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, asUniqueViolation(err)
	}
	return &v, nil
}

// Delete removes vacancy id. Returns ErrNotFound when nothing was deleted.
func (r *VacancyWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM vacancies WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var affected int64
	if err == nil {
		affected, err = res.RowsAffected()
	}

	logQuery(query, []any{id}, affected, err)

	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpired removes vacancies last modified before the given date
func (r *VacancyWriteRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	const query = `DELETE FROM vacancies WHERE modified_at < $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, before)
	var affected int64
	if err == nil {
		affected, err = res.RowsAffected()
	}

	logQuery(query, []any{before}, affected, err)

	return affected, err
}
