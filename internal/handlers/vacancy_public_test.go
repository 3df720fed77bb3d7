package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
	"github.com/sbilibin2017/gw-vacancies/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func sampleVacancy(id int64) models.VacancyDB {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return models.VacancyDB{
		ID:          id,
		CreatedAt:   day,
		ModifiedAt:  day,
		Name:        "Driver",
		Source:      ptr("https://hh.ru/vacancy/1"),
		SourceName:  "hh",
		IsPublished: true,
	}
}

type publicMocks struct {
	lister  *MockPublicVacancyLister
	getter  *MockPublicVacancyGetter
	creator *MockPublicVacancyCreator
}

func newPublicRouter(t *testing.T) (http.Handler, publicMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := publicMocks{
		lister:  NewMockPublicVacancyLister(ctrl),
		getter:  NewMockPublicVacancyGetter(ctrl),
		creator: NewMockPublicVacancyCreator(ctrl),
	}

	r := chi.NewRouter()
	RegisterPublicVacancyHandlers(r,
		NewListPublicVacanciesHandler(m.lister),
		NewGetPublicVacancyHandler(m.getter),
		NewCreatePublicVacancyHandler(m.creator),
	)
	return r, m
}

func TestListPublicVacanciesHandler(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m publicMocks)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name:   "page with links",
			target: "/public/vacancies?limit=3&offset=3",
			mockSetup: func(m publicMocks) {
				m.lister.EXPECT().
					ListPublic(gomock.Any(), (*time.Time)(nil), models.Page{Limit: 3, Offset: 3}).
					Return(&models.VacancyPage{
						Vacancies: []models.VacancyDB{sampleVacancy(4), sampleVacancy(5), sampleVacancy(6)},
						Count:     10,
					}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp models.VacancyListResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, int64(10), resp.Count)
				assert.Len(t, resp.Results, 3)
				assert.Equal(t, "2024-03-01", resp.Results[0].ModifiedAt)
				assert.NotNil(t, resp.Next)
				assert.NotNil(t, resp.Previous)
			},
		},
		{
			name:   "modified_at filter",
			target: "/public/vacancies?modified_at=2024-03-01",
			mockSetup: func(m publicMocks) {
				m.lister.EXPECT().
					ListPublic(gomock.Any(), &day, models.Page{Limit: 20}).
					Return(&models.VacancyPage{}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, string(body))
			},
		},
		{
			name:         "malformed date",
			target:       "/public/vacancies?modified_at=01.03.2024",
			mockSetup:    func(m publicMocks) {},
			expectedCode: http.StatusBadRequest,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "modified_at")
			},
		},
		{
			name:   "store failure",
			target: "/public/vacancies",
			mockSetup: func(m publicMocks) {
				m.lister.EXPECT().ListPublic(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			check: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"reason":"Internal server error."}`, string(body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newPublicRouter(t)
			tt.mockSetup(m)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			tt.check(t, w.Body.Bytes())
		})
	}
}

func TestGetPublicVacancyHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		mockSetup    func(m publicMocks)
		expectedCode int
	}{
		{
			name:   "found",
			target: "/public/vacancies/4",
			mockSetup: func(m publicMocks) {
				v := sampleVacancy(4)
				m.getter.EXPECT().GetPublic(gomock.Any(), int64(4)).Return(&v, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/public/vacancies/5",
			mockSetup: func(m publicMocks) {
				m.getter.EXPECT().GetPublic(gomock.Any(), int64(5)).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "non integer id",
			target:       "/public/vacancies/abc",
			mockSetup:    func(m publicMocks) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newPublicRouter(t)
			tt.mockSetup(m)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusNotFound {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}

func TestCreatePublicVacancyHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockSetup    func(m publicMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: `{"name":"Courier","description":"Day shifts"}`,
			mockSetup: func(m publicMocks) {
				m.creator.EXPECT().
					CreatePublic(gomock.Any(), models.PublicVacancyRequest{Name: ptr("Courier"), Description: ptr("Day shifts")}).
					Return(&models.VacancyDB{ID: 1, Name: "Courier", SourceName: "khabjob", Description: ptr("Day shifts")}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "neither source nor description",
			body: `{"name":"X","source_name":"Y"}`,
			mockSetup: func(m publicMocks) {
				m.creator.EXPECT().CreatePublic(gomock.Any(), gomock.Any()).
					Return(nil, services.NewValidationError(services.RootField, "Vacancy must have source or description."))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"__root__":"Vacancy must have source or description."}`,
		},
		{
			name:         "unknown field",
			body:         `{"name":"X","salary":100}`,
			mockSetup:    func(m publicMocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"salary":"extra fields not permitted"}`,
		},
		{
			name:         "wrong type",
			body:         `{"name":42}`,
			mockSetup:    func(m publicMocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"name":"value is not a valid string"}`,
		},
		{
			name:         "invalid json",
			body:         `{name`,
			mockSetup:    func(m publicMocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"__root__":"Invalid JSON body."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newPublicRouter(t)
			tt.mockSetup(m)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/public/vacancies", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
