package services

//go:generate mockgen -source=vacancy.go -destination=mock_vacancy.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

const msgSourceOrDescription = "Vacancy must have source or description."

// VacancyReader defines read-only operations for vacancies.
type VacancyReader interface {
	Filter(ctx context.Context, f models.VacancyFilter, page models.Page) ([]models.VacancyRow, error)
	Search(ctx context.Context, s models.VacancySearch, page models.Page) ([]models.VacancyRow, error)
}

// VacancyWriter defines write operations for vacancies.
type VacancyWriter interface {
	Create(ctx context.Context, d models.VacancyData) (*models.VacancyDB, error)
	Update(ctx context.Context, id int64, d models.VacancyData) (*models.VacancyDB, error)
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// VacancyService implements the public, private and search vacancy operations.
type VacancyService struct {
	reader         VacancyReader
	writer         VacancyWriter
	selfSourceName string
	retention      time.Duration
	now            func() time.Time
}

// NewVacancyService creates a new VacancyService instance.
// selfSourceName labels public submissions, retention bounds DropExpired.
func NewVacancyService(reader VacancyReader, writer VacancyWriter, selfSourceName string, retention time.Duration) *VacancyService {
	return &VacancyService{
		reader:         reader,
		writer:         writer,
		selfSourceName: selfSourceName,
		retention:      retention,
		now:            time.Now,
	}
}

// ListPublic returns published vacancies, optionally modified on a given day.
func (svc *VacancyService) ListPublic(ctx context.Context, modifiedAt *time.Time, page models.Page) (*models.VacancyPage, error) {
	published := true
	return svc.list(ctx, models.VacancyFilter{IsPublished: &published, ModifiedAt: modifiedAt}, page)
}

// GetPublic returns a published vacancy or ErrNotFound.
func (svc *VacancyService) GetPublic(ctx context.Context, id int64) (*models.VacancyDB, error) {
	published := true
	return svc.get(ctx, models.VacancyFilter{ID: &id, IsPublished: &published})
}

// CreatePublic stores an unpublished self-submission.
func (svc *VacancyService) CreatePublic(ctx context.Context, req models.PublicVacancyRequest) (*models.VacancyDB, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if isBlank(req.Source) && isBlank(req.Description) {
		return nil, NewValidationError(RootField, msgSourceOrDescription)
	}

	published := false
	return svc.create(ctx, models.VacancyData{
		Name:        req.Name,
		Source:      blankToNil(req.Source),
		SourceName:  &svc.selfSourceName,
		Description: blankToNil(req.Description),
		IsPublished: &published,
	})
}

// ListPrivate returns vacancies matching the filter regardless of publication.
func (svc *VacancyService) ListPrivate(ctx context.Context, f models.VacancyFilter, page models.Page) (*models.VacancyPage, error) {
	f.ID = nil
	return svc.list(ctx, f, page)
}

// GetPrivate returns any vacancy or ErrNotFound.
func (svc *VacancyService) GetPrivate(ctx context.Context, id int64) (*models.VacancyDB, error) {
	return svc.get(ctx, models.VacancyFilter{ID: &id})
}

// CreatePrivate stores a vacancy on behalf of an administrator.
// A missing source_name falls back to the site name.
func (svc *VacancyService) CreatePrivate(ctx context.Context, req models.PrivateVacancyRequest) (*models.VacancyDB, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	sourceName := req.SourceName
	if isBlank(sourceName) {
		sourceName = &svc.selfSourceName
	}

	return svc.create(ctx, models.VacancyData{
		Name:        req.Name,
		Source:      blankToNil(req.Source),
		SourceName:  sourceName,
		Description: req.Description,
		IsPublished: req.IsPublished,
	})
}

// Replace overwrites every field of vacancy id.
func (svc *VacancyService) Replace(ctx context.Context, id int64, req models.PutVacancyRequest) (*models.VacancyDB, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return svc.update(ctx, id, models.VacancyData{
		Name:        req.Name,
		Source:      req.Source,
		SourceName:  req.SourceName,
		Description: req.Description,
		IsPublished: req.IsPublished,
	})
}

// Patch overwrites the supplied fields of vacancy id.
// An empty patch returns the stored vacancy unchanged.
func (svc *VacancyService) Patch(ctx context.Context, id int64, req models.PatchVacancyRequest) (*models.VacancyDB, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	d := models.VacancyData{
		Name:        req.Name,
		Source:      req.Source,
		SourceName:  req.SourceName,
		Description: req.Description,
		IsPublished: req.IsPublished,
	}
	if d == (models.VacancyData{}) {
		return svc.GetPrivate(ctx, id)
	}
	return svc.update(ctx, id, d)
}

// Delete removes vacancy id or returns ErrNotFound.
func (svc *VacancyService) Delete(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete vacancy", "id", id, "err", err)
		return translate(err, "Vacancy")
	}
	return nil
}

// Search runs a full text search. Anonymous callers only ever see published vacancies.
func (svc *VacancyService) Search(ctx context.Context, s models.VacancySearch, page models.Page, authenticated bool) (*models.VacancyPage, error) {
	if !authenticated {
		s.PublishedOnly = true
	}

	rows, err := svc.reader.Search(ctx, s, page)
	if err != nil {
		logger.Log.Errorw("failed to search vacancies", "err", err)
		return nil, err
	}

	result := models.NewVacancyPage(rows)
	return &result, nil
}

// DropExpired deletes vacancies not modified within the retention window.
func (svc *VacancyService) DropExpired(ctx context.Context) (int64, error) {
	before := svc.now().UTC().Add(-svc.retention).Truncate(24 * time.Hour)

	deleted, err := svc.writer.DeleteExpired(ctx, before)
	if err != nil {
		logger.Log.Errorw("failed to drop expired vacancies", "before", before, "err", err)
		return 0, err
	}

	logger.Log.Infow("expired vacancies dropped", "before", before.Format(models.DateLayout), "deleted", deleted)
	return deleted, nil
}

func (svc *VacancyService) list(ctx context.Context, f models.VacancyFilter, page models.Page) (*models.VacancyPage, error) {
	rows, err := svc.reader.Filter(ctx, f, page)
	if err != nil {
		logger.Log.Errorw("failed to list vacancies", "err", err)
		return nil, err
	}

	result := models.NewVacancyPage(rows)
	return &result, nil
}

func (svc *VacancyService) get(ctx context.Context, f models.VacancyFilter) (*models.VacancyDB, error) {
	rows, err := svc.reader.Filter(ctx, f, models.Page{Limit: 1})
	if err != nil {
		logger.Log.Errorw("failed to get vacancy", "id", *f.ID, "err", err)
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0].VacancyDB, nil
}

func (svc *VacancyService) create(ctx context.Context, d models.VacancyData) (*models.VacancyDB, error) {
	v, err := svc.writer.Create(ctx, d)
	if err != nil {
		logger.Log.Errorw("failed to create vacancy", "err", err)
		return nil, translate(err, "Vacancy")
	}
	return v, nil
}

func (svc *VacancyService) update(ctx context.Context, id int64, d models.VacancyData) (*models.VacancyDB, error) {
	v, err := svc.writer.Update(ctx, id, d)
	if err != nil {
		logger.Log.Errorw("failed to update vacancy", "id", id, "err", err)
		return nil, translate(err, "Vacancy")
	}
	return v, nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

func blankToNil(s *string) *string {
	if isBlank(s) {
		return nil
	}
	return s
}
