package handlers

//go:generate mockgen -source=search.go -destination=mock_search.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

// VacancySearcher runs full text vacancy searches.
type VacancySearcher interface {
	Search(ctx context.Context, s models.VacancySearch, page models.Page, authenticated bool) (*models.VacancyPage, error)
}

// NewSearchVacanciesHandler returns an HTTP handler for vacancy search.
// published_only is honoured for authenticated callers only and defaults to true.
// @Summary Search vacancies
// @Description Full text search over vacancy names
// @Tags search
// @Produce json
// @Param search_query query string false "Search terms"
// @Param date_from query string false "Modified on or after, YYYY-MM-DD"
// @Param date_to query string false "Modified on or before, YYYY-MM-DD"
// @Param source_name query string false "Source name"
// @Param published_only query bool false "Only published vacancies" default(true)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} models.VacancyListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} models.ErrorResponse "Token rejected"
// @Router /search/vacancies [get]
func NewSearchVacanciesHandler(svc VacancySearcher, isAuthenticated func(ctx context.Context) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		dateFrom, err := parseDate(q, "date_from")
		if err != nil {
			writeError(w, r, err)
			return
		}

		dateTo, err := parseDate(q, "date_to")
		if err != nil {
			writeError(w, r, err)
			return
		}

		publishedOnly, err := parseBool(q, "published_only")
		if err != nil {
			writeError(w, r, err)
			return
		}

		s := models.VacancySearch{
			DateFrom:      dateFrom,
			DateTo:        dateTo,
			Query:         parseString(q, "search_query"),
			SourceName:    parseString(q, "source_name"),
			PublishedOnly: publishedOnly == nil || *publishedOnly,
		}
		page := parsePage(q)

		vp, err := svc.Search(r.Context(), s, page, isAuthenticated(r.Context()))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newListResponse(r, page, vp))
	}
}

// RegisterSearchVacanciesHandler registers the search route
func RegisterSearchVacanciesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/search/vacancies", h)
}
