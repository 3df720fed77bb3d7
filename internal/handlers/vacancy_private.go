package handlers

//go:generate mockgen -source=vacancy_private.go -destination=mock_vacancy_private.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

// PrivateVacancyLister lists vacancies regardless of publication.
type PrivateVacancyLister interface {
	ListPrivate(ctx context.Context, f models.VacancyFilter, page models.Page) (*models.VacancyPage, error)
}

// PrivateVacancyGetter fetches any vacancy.
type PrivateVacancyGetter interface {
	GetPrivate(ctx context.Context, id int64) (*models.VacancyDB, error)
}

// PrivateVacancyCreator creates vacancies on behalf of an administrator.
type PrivateVacancyCreator interface {
	CreatePrivate(ctx context.Context, req models.PrivateVacancyRequest) (*models.VacancyDB, error)
}

// VacancyReplacer overwrites every field of a vacancy.
type VacancyReplacer interface {
	Replace(ctx context.Context, id int64, req models.PutVacancyRequest) (*models.VacancyDB, error)
}

// VacancyPatcher overwrites some fields of a vacancy.
type VacancyPatcher interface {
	Patch(ctx context.Context, id int64, req models.PatchVacancyRequest) (*models.VacancyDB, error)
}

// VacancyDeleter removes a vacancy.
type VacancyDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewListPrivateVacanciesHandler returns an HTTP handler listing all vacancies.
// @Summary List vacancies
// @Tags private
// @Produce json
// @Param source_name query string false "Source name"
// @Param is_published query bool false "Publication flag"
// @Param modified_at query string false "Modification date, YYYY-MM-DD"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} models.VacancyListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} models.ErrorResponse "Authentication required"
// @Router /private/vacancies [get]
// @Security BearerAuth
func NewListPrivateVacanciesHandler(svc PrivateVacancyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		modifiedAt, err := parseDate(q, "modified_at")
		if err != nil {
			writeError(w, r, err)
			return
		}

		isPublished, err := parseBool(q, "is_published")
		if err != nil {
			writeError(w, r, err)
			return
		}

		filter := models.VacancyFilter{
			SourceName:  parseString(q, "source_name"),
			IsPublished: isPublished,
			ModifiedAt:  modifiedAt,
		}
		page := parsePage(q)

		vp, err := svc.ListPrivate(r.Context(), filter, page)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newListResponse(r, page, vp))
	}
}

// NewGetPrivateVacancyHandler returns an HTTP handler fetching any vacancy.
// @Summary Get vacancy
// @Tags private
// @Produce json
// @Param id path int true "Vacancy ID"
// @Success 200 {object} models.VacancyResponse
// @Failure 403 {object} models.ErrorResponse "Authentication required"
// @Failure 404 "Vacancy not found"
// @Router /private/vacancies/{id} [get]
// @Security BearerAuth
func NewGetPrivateVacancyHandler(svc PrivateVacancyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := vacancyID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		v, err := svc.GetPrivate(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewVacancyResponse(*v))
	}
}

// NewCreatePrivateVacancyHandler returns an HTTP handler creating a vacancy.
// @Summary Create vacancy
// @Tags private
// @Accept json
// @Produce json
// @Param request body models.PrivateVacancyRequest true "Vacancy"
// @Success 201 {object} models.VacancyResponse
// @Failure 400 {object} map[string]string "Validation errors"
// @Failure 403 {object} models.ErrorResponse "Authentication required"
// @Router /private/vacancies [post]
// @Security BearerAuth
func NewCreatePrivateVacancyHandler(svc PrivateVacancyCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PrivateVacancyRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		v, err := svc.CreatePrivate(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewVacancyResponse(*v))
	}
}

// NewReplaceVacancyHandler returns an HTTP handler for full updates.
// @Summary Replace vacancy
// @Tags private
// @Accept json
// @Produce json
// @Param id path int true "Vacancy ID"
// @Param request body models.PutVacancyRequest true "Vacancy"
// @Success 200 {object} models.VacancyResponse
// @Failure 400 {object} map[string]string "Validation errors"
// @Failure 403 {object} models.ErrorResponse "Authentication required"
// @Failure 404 "Vacancy not found"
// @Router /private/vacancies/{id} [put]
// @Security BearerAuth
func NewReplaceVacancyHandler(svc VacancyReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := vacancyID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req models.PutVacancyRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		v, err := svc.Replace(r.Context(), id, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewVacancyResponse(*v))
	}
}

// NewPatchVacancyHandler returns an HTTP handler for partial updates.
// @Summary Patch vacancy
// @Tags private
// @Accept json
// @Produce json
// @Param id path int true "Vacancy ID"
// @Param request body models.PatchVacancyRequest true "Fields to change"
// @Success 200 {object} models.VacancyResponse
// @Failure 400 {object} map[string]string "Validation errors"
// @Failure 403 {object} models.ErrorResponse "Authentication required"
// @Failure 404 "Vacancy not found"
// @Router /private/vacancies/{id} [patch]
// @Security BearerAuth
func NewPatchVacancyHandler(svc VacancyPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := vacancyID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req models.PatchVacancyRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		v, err := svc.Patch(r.Context(), id, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewVacancyResponse(*v))
	}
}

// NewDeleteVacancyHandler returns an HTTP handler removing a vacancy.
// @Summary Delete vacancy
// @Tags private
// @Param id path int true "Vacancy ID"
// @Success 204 "Deleted"
// @Failure 403 {object} models.ErrorResponse "Authentication required"
// @Failure 404 "Vacancy not found"
// @Router /private/vacancies/{id} [delete]
// @Security BearerAuth
func NewDeleteVacancyHandler(svc VacancyDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := vacancyID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// PrivateVacancyHandlers groups the administrator vacancy routes
type PrivateVacancyHandlers struct {
	List    http.HandlerFunc
	Get     http.HandlerFunc
	Create  http.HandlerFunc
	Replace http.HandlerFunc
	Patch   http.HandlerFunc
	Delete  http.HandlerFunc
}

// RegisterPrivateVacancyHandlers registers the administrator vacancy routes.
// writeMiddlewares wrap only the mutating routes.
func RegisterPrivateVacancyHandlers(r chi.Router, h PrivateVacancyHandlers, writeMiddlewares ...func(http.Handler) http.Handler) {
	r.Get("/private/vacancies", h.List)
	r.Get("/private/vacancies/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(writeMiddlewares...)
		r.Post("/private/vacancies", h.Create)
		r.Put("/private/vacancies/{id}", h.Replace)
		r.Patch("/private/vacancies/{id}", h.Patch)
		r.Delete("/private/vacancies/{id}", h.Delete)
	})
}
