package handlers

//go:generate mockgen -source=vacancy_public.go -destination=mock_vacancy_public.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

// PublicVacancyLister lists published vacancies.
type PublicVacancyLister interface {
	ListPublic(ctx context.Context, modifiedAt *time.Time, page models.Page) (*models.VacancyPage, error)
}

// PublicVacancyGetter fetches a single published vacancy.
type PublicVacancyGetter interface {
	GetPublic(ctx context.Context, id int64) (*models.VacancyDB, error)
}

// PublicVacancyCreator stores anonymous submissions.
type PublicVacancyCreator interface {
	CreatePublic(ctx context.Context, req models.PublicVacancyRequest) (*models.VacancyDB, error)
}

// NewListPublicVacanciesHandler returns an HTTP handler listing published vacancies.
// @Summary List published vacancies
// @Description Returns a page of published vacancies ordered by modification date
// @Tags public
// @Produce json
// @Param modified_at query string false "Modification date, YYYY-MM-DD"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} models.VacancyListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} models.ErrorResponse "Token rejected"
// @Router /public/vacancies [get]
func NewListPublicVacanciesHandler(svc PublicVacancyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		modifiedAt, err := parseDate(q, "modified_at")
		if err != nil {
			writeError(w, r, err)
			return
		}

		page := parsePage(q)

		vp, err := svc.ListPublic(r.Context(), modifiedAt, page)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newListResponse(r, page, vp))
	}
}

// NewGetPublicVacancyHandler returns an HTTP handler fetching a published vacancy.
// @Summary Get published vacancy
// @Tags public
// @Produce json
// @Param id path int true "Vacancy ID"
// @Success 200 {object} models.VacancyResponse
// @Failure 404 "Vacancy not found"
// @Router /public/vacancies/{id} [get]
func NewGetPublicVacancyHandler(svc PublicVacancyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := vacancyID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		v, err := svc.GetPublic(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewVacancyResponse(*v))
	}
}

// NewCreatePublicVacancyHandler returns an HTTP handler accepting vacancy submissions.
// Submissions are stored unpublished under the site name.
// @Summary Submit vacancy
// @Description Creates an unpublished vacancy. Either source or description is required.
// @Tags public
// @Accept json
// @Produce json
// @Param request body models.PublicVacancyRequest true "Vacancy"
// @Success 201 {object} models.VacancyResponse
// @Failure 400 {object} map[string]string "Validation errors"
// @Router /public/vacancies [post]
func NewCreatePublicVacancyHandler(svc PublicVacancyCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PublicVacancyRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		v, err := svc.CreatePublic(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewVacancyResponse(*v))
	}
}

// RegisterPublicVacancyHandlers registers the anonymous vacancy routes
func RegisterPublicVacancyHandlers(r chi.Router, list, get, create http.HandlerFunc) {
	r.Get("/public/vacancies", list)
	r.Post("/public/vacancies", create)
	r.Get("/public/vacancies/{id}", get)
}
