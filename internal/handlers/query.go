package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-vacancies/internal/models"
	"github.com/sbilibin2017/gw-vacancies/internal/services"
)

const (
	defaultLimit = 20

	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
	msgInvalidBool = "value could not be parsed to a boolean"
)

// parsePage reads limit and offset. Missing or malformed values fall back to defaults.
func parsePage(q url.Values) models.Page {
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}

	offset, err := strconv.Atoi(q.Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return models.Page{Limit: limit, Offset: offset}
}

func parseDate(q url.Values, name string) (*time.Time, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return nil, services.NewValidationError(name, msgInvalidDate)
	}
	return &t, nil
}

func parseBool(q url.Values, name string) (*bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, services.NewValidationError(name, msgInvalidBool)
	}
	return &b, nil
}

func parseString(q url.Values, name string) *string {
	if v := q.Get(name); v != "" {
		return &v
	}
	return nil
}

// newListResponse renders a page with links to its neighbours
func newListResponse(r *http.Request, page models.Page, vp *models.VacancyPage) models.VacancyListResponse {
	resp := models.VacancyListResponse{
		Count:   vp.Count,
		Results: make([]models.VacancyResponse, 0, len(vp.Vacancies)),
	}
	for _, v := range vp.Vacancies {
		resp.Results = append(resp.Results, models.NewVacancyResponse(v))
	}

	if page.Offset+page.Limit < int(vp.Count) {
		next := pageURL(r, page.Limit, page.Offset+page.Limit)
		resp.Next = &next
	}
	if page.Offset-page.Limit >= 0 {
		previous := pageURL(r, page.Limit, page.Offset-page.Limit)
		resp.Previous = &previous
	}
	return resp
}

func pageURL(r *http.Request, limit, offset int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	q := r.URL.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: q.Encode()}
	return u.String()
}
