package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
	"github.com/sbilibin2017/gw-vacancies/internal/repositories"
	"github.com/sbilibin2017/gw-vacancies/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selfSource = "khabjob"

func ptr[T any](v T) *T {
	return &v
}

func newVacancyService(t *testing.T) (*services.VacancyService, *services.MockVacancyReader, *services.MockVacancyWriter) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reader := services.NewMockVacancyReader(ctrl)
	writer := services.NewMockVacancyWriter(ctrl)
	return services.NewVacancyService(reader, writer, selfSource, 56*24*time.Hour), reader, writer
}

func rows(count int64, ids ...int64) []models.VacancyRow {
	result := make([]models.VacancyRow, 0, len(ids))
	for _, id := range ids {
		result = append(result, models.VacancyRow{VacancyDB: models.VacancyDB{ID: id}, Count: count})
	}
	return result
}

func TestVacancyService_ListPublic(t *testing.T) {
	svc, reader, _ := newVacancyService(t)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	page := models.Page{Limit: 3, Offset: 3}

	reader.EXPECT().
		Filter(gomock.Any(), models.VacancyFilter{IsPublished: ptr(true), ModifiedAt: &day}, page).
		Return(rows(10, 4, 5, 6), nil)

	got, err := svc.ListPublic(context.Background(), &day, page)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Count)
	assert.Len(t, got.Vacancies, 3)
	assert.Equal(t, int64(4), got.Vacancies[0].ID)
}

func TestVacancyService_ListPublic_Empty(t *testing.T) {
	svc, reader, _ := newVacancyService(t)

	reader.EXPECT().Filter(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	got, err := svc.ListPublic(context.Background(), nil, models.Page{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Count)
	assert.Empty(t, got.Vacancies)
}

func TestVacancyService_GetPublic(t *testing.T) {
	tests := []struct {
		name    string
		rows    []models.VacancyRow
		err     error
		wantErr error
	}{
		{name: "found", rows: rows(1, 9)},
		{name: "missing or unpublished", rows: nil, wantErr: services.ErrNotFound},
		{name: "store error", err: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reader, _ := newVacancyService(t)
			reader.EXPECT().
				Filter(gomock.Any(), models.VacancyFilter{ID: ptr(int64(9)), IsPublished: ptr(true)}, models.Page{Limit: 1}).
				Return(tt.rows, tt.err)

			got, err := svc.GetPublic(context.Background(), 9)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(9), got.ID)
		})
	}
}

func TestVacancyService_CreatePublic(t *testing.T) {
	t.Run("forces site source and unpublished", func(t *testing.T) {
		svc, _, writer := newVacancyService(t)
		req := models.PublicVacancyRequest{
			Name:        ptr("Courier"),
			SourceName:  ptr("hh"),
			Description: ptr("Day shifts"),
		}
		created := &models.VacancyDB{ID: 1, Name: "Courier", SourceName: selfSource}

		writer.EXPECT().Create(gomock.Any(), models.VacancyData{
			Name:        ptr("Courier"),
			SourceName:  ptr(selfSource),
			Description: ptr("Day shifts"),
			IsPublished: ptr(false),
		}).Return(created, nil)

		got, err := svc.CreatePublic(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("requires source or description", func(t *testing.T) {
		svc, _, _ := newVacancyService(t)

		_, err := svc.CreatePublic(context.Background(), models.PublicVacancyRequest{Name: ptr("X"), SourceName: ptr("Y")})

		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{services.RootField: "Vacancy must have source or description."}, verr.Fields)
	})

	t.Run("invalid url", func(t *testing.T) {
		svc, _, _ := newVacancyService(t)

		_, err := svc.CreatePublic(context.Background(), models.PublicVacancyRequest{Name: ptr("X"), Source: ptr("not a url")})

		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "source")
	})

	t.Run("duplicate source", func(t *testing.T) {
		svc, _, writer := newVacancyService(t)

		writer.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &repositories.UniqueViolationError{Fields: map[string]string{"source": "http://a.co/1"}})

		_, err := svc.CreatePublic(context.Background(), models.PublicVacancyRequest{Name: ptr("X"), Source: ptr("http://a.co/1")})

		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{"source": "Vacancy with value http://a.co/1 already exists."}, verr.Fields)
	})
}

func TestVacancyService_ListPrivate_IgnoresID(t *testing.T) {
	svc, reader, _ := newVacancyService(t)
	filter := models.VacancyFilter{SourceName: ptr("hh"), IsPublished: ptr(false)}

	reader.EXPECT().Filter(gomock.Any(), filter, models.Page{Limit: 20}).Return(rows(2, 1, 2), nil)

	got, err := svc.ListPrivate(context.Background(),
		models.VacancyFilter{ID: ptr(int64(1)), SourceName: ptr("hh"), IsPublished: ptr(false)},
		models.Page{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Count)
}

func TestVacancyService_GetPrivate(t *testing.T) {
	svc, reader, _ := newVacancyService(t)

	reader.EXPECT().
		Filter(gomock.Any(), models.VacancyFilter{ID: ptr(int64(3))}, models.Page{Limit: 1}).
		Return(rows(1, 3), nil)

	got, err := svc.GetPrivate(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestVacancyService_CreatePrivate(t *testing.T) {
	t.Run("defaults source name", func(t *testing.T) {
		svc, _, writer := newVacancyService(t)

		writer.EXPECT().Create(gomock.Any(), models.VacancyData{
			Name:        ptr("Driver"),
			SourceName:  ptr(selfSource),
			IsPublished: ptr(true),
		}).Return(&models.VacancyDB{ID: 2}, nil)

		got, err := svc.CreatePrivate(context.Background(), models.PrivateVacancyRequest{Name: ptr("Driver"), IsPublished: ptr(true)})
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("requires is_published", func(t *testing.T) {
		svc, _, _ := newVacancyService(t)

		_, err := svc.CreatePrivate(context.Background(), models.PrivateVacancyRequest{Name: ptr("Driver")})

		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{"is_published": "field required"}, verr.Fields)
	})
}

func TestVacancyService_Replace(t *testing.T) {
	full := models.PutVacancyRequest{
		Name:        ptr("Driver"),
		Source:      ptr("https://hh.ru/vacancy/1"),
		SourceName:  ptr("hh"),
		Description: ptr("Category B"),
		IsPublished: ptr(true),
	}

	t.Run("success", func(t *testing.T) {
		svc, _, writer := newVacancyService(t)

		writer.EXPECT().Update(gomock.Any(), int64(4), models.VacancyData{
			Name:        full.Name,
			Source:      full.Source,
			SourceName:  full.SourceName,
			Description: full.Description,
			IsPublished: full.IsPublished,
		}).Return(&models.VacancyDB{ID: 4}, nil)

		got, err := svc.Replace(context.Background(), 4, full)
		require.NoError(t, err)
		assert.Equal(t, int64(4), got.ID)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _, _ := newVacancyService(t)

		_, err := svc.Replace(context.Background(), 4, models.PutVacancyRequest{Name: ptr("Driver")})

		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 4)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, writer := newVacancyService(t)

		writer.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).Return(nil, repositories.ErrNotFound)

		_, err := svc.Replace(context.Background(), 4, full)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestVacancyService_Patch(t *testing.T) {
	t.Run("subset", func(t *testing.T) {
		svc, _, writer := newVacancyService(t)

		writer.EXPECT().Update(gomock.Any(), int64(6), models.VacancyData{IsPublished: ptr(true)}).
			Return(&models.VacancyDB{ID: 6, IsPublished: true}, nil)

		got, err := svc.Patch(context.Background(), 6, models.PatchVacancyRequest{IsPublished: ptr(true)})
		require.NoError(t, err)
		assert.True(t, got.IsPublished)
	})

	t.Run("empty body returns stored vacancy", func(t *testing.T) {
		svc, reader, _ := newVacancyService(t)

		reader.EXPECT().
			Filter(gomock.Any(), models.VacancyFilter{ID: ptr(int64(6))}, models.Page{Limit: 1}).
			Return(rows(1, 6), nil)

		got, err := svc.Patch(context.Background(), 6, models.PatchVacancyRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(6), got.ID)
	})
}

func TestVacancyService_Delete(t *testing.T) {
	svc, _, writer := newVacancyService(t)

	writer.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	writer.EXPECT().Delete(gomock.Any(), int64(2)).Return(repositories.ErrNotFound)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), services.ErrNotFound)
}

func TestVacancyService_Search(t *testing.T) {
	search := models.VacancySearch{Query: ptr("водитель"), PublishedOnly: false}

	t.Run("anonymous sees published only", func(t *testing.T) {
		svc, reader, _ := newVacancyService(t)

		forced := search
		forced.PublishedOnly = true
		reader.EXPECT().Search(gomock.Any(), forced, models.Page{Limit: 20}).Return(rows(1, 1), nil)

		got, err := svc.Search(context.Background(), search, models.Page{Limit: 20}, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Count)
	})

	t.Run("authenticated may include unpublished", func(t *testing.T) {
		svc, reader, _ := newVacancyService(t)

		reader.EXPECT().Search(gomock.Any(), search, models.Page{Limit: 20}).Return(rows(2, 1, 2), nil)

		got, err := svc.Search(context.Background(), search, models.Page{Limit: 20}, true)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Count)
	})
}

func TestVacancyService_DropExpired(t *testing.T) {
	svc, _, writer := newVacancyService(t)

	writer.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, before time.Time) (int64, error) {
			want := time.Now().UTC().Add(-56 * 24 * time.Hour)
			assert.WithinDuration(t, want, before, 24*time.Hour)
			assert.Equal(t, before, before.Truncate(24*time.Hour))
			return 7, nil
		})

	deleted, err := svc.DropExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}
