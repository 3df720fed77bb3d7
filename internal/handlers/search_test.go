package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSearchVacanciesHandler(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		target        string
		authenticated bool
		want          *models.VacancySearch
		expectedCode  int
	}{
		{
			name:   "anonymous defaults",
			target: "/search/vacancies?search_query=golang",
			want: &models.VacancySearch{
				Query:         ptr("golang"),
				PublishedOnly: true,
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "authenticated includes unpublished",
			target:        "/search/vacancies?published_only=false&source_name=hh&date_from=2024-03-01&date_to=2024-03-31",
			authenticated: true,
			want: &models.VacancySearch{
				DateFrom:      &from,
				DateTo:        &to,
				SourceName:    ptr("hh"),
				PublishedOnly: false,
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "malformed date_to",
			target:       "/search/vacancies?date_to=yesterday",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed published_only",
			target:       "/search/vacancies?published_only=perhaps",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockVacancySearcher(ctrl)
			if tt.want != nil {
				svc.EXPECT().
					Search(gomock.Any(), *tt.want, models.Page{Limit: 20}, tt.authenticated).
					Return(&models.VacancyPage{}, nil)
			}

			r := chi.NewRouter()
			RegisterSearchVacanciesHandler(r, NewSearchVacanciesHandler(svc, func(context.Context) bool {
				return tt.authenticated
			}))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
