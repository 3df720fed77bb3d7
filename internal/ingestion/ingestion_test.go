package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
	"github.com/sbilibin2017/gw-vacancies/internal/parsers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	name      string
	vacancies []models.ParsedVacancy
	err       error
	wait      <-chan struct{}
	panicMsg  string
}

func (p *stubParser) Name() string { return p.name }

func (p *stubParser) FetchVacancies(ctx context.Context) ([]models.ParsedVacancy, error) {
	if p.wait != nil {
		<-p.wait
	}
	if p.panicMsg != "" {
		panic(p.panicMsg)
	}
	return p.vacancies, p.err
}

func vacancy(source, url string) models.ParsedVacancy {
	return models.ParsedVacancy{Name: "Vacancy", Source: url, SourceName: source}
}

func TestOrchestrator_Run_FailureIsIsolated(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selector := NewMockParserSelector(ctrl)
	upserter := NewMockVacancyUpserter(ctrl)
	publisher := NewMockOutcomePublisher(ctrl)

	broken := &stubParser{name: "superjob", err: errors.New("superjob: unexpected status 500")}
	healthy := &stubParser{name: "hh", vacancies: []models.ParsedVacancy{
		vacancy("hh", "https://hh.ru/vacancy/1"),
		vacancy("hh", "https://hh.ru/vacancy/2"),
		vacancy("hh", "https://hh.ru/vacancy/3"),
	}}

	selector.EXPECT().Select([]string{"hh", "superjob"}).Return([]parsers.Parser{healthy, broken}, nil)
	upserter.EXPECT().Upsert(ctx, vacancy("hh", "https://hh.ru/vacancy/1").Data()).Return(true, &models.VacancyDB{}, nil)
	upserter.EXPECT().Upsert(ctx, vacancy("hh", "https://hh.ru/vacancy/2").Data()).Return(false, &models.VacancyDB{}, nil)
	upserter.EXPECT().Upsert(ctx, vacancy("hh", "https://hh.ru/vacancy/3").Data()).Return(false, nil, errors.New("db down"))
	publisher.EXPECT().Publish(ctx, gomock.Any()).Times(2)

	o := NewOrchestrator(selector, upserter, publisher, 0)
	outcomes, err := o.Run(ctx, []string{"hh", "superjob"})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	bySource := map[string]Outcome{}
	for _, oc := range outcomes {
		bySource[oc.Source] = oc
	}

	assert.Equal(t, 3, bySource["hh"].Fetched)
	assert.Equal(t, 1, bySource["hh"].Created)
	assert.Equal(t, 1, bySource["hh"].Updated)
	assert.Equal(t, 1, bySource["hh"].Failed)
	assert.NoError(t, bySource["hh"].Err)

	assert.Error(t, bySource["superjob"].Err)
	assert.Equal(t, "superjob: unexpected status 500", bySource["superjob"].Error)
	assert.Zero(t, bySource["superjob"].Fetched)
}

func TestOrchestrator_Run_CompletionOrder(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selector := NewMockParserSelector(ctrl)
	upserter := NewMockVacancyUpserter(ctrl)

	release := make(chan struct{})
	slow := &stubParser{name: "farpost", wait: release, vacancies: []models.ParsedVacancy{vacancy("farpost", "https://www.farpost.ru/1")}}
	fast := &stubParser{name: "vk", vacancies: []models.ParsedVacancy{vacancy("vk", "https://vk.com/wall1_1")}}

	selector.EXPECT().Select(nil).Return([]parsers.Parser{slow, fast}, nil)
	upserter.EXPECT().Upsert(ctx, vacancy("vk", "https://vk.com/wall1_1").Data()).
		DoAndReturn(func(ctx context.Context, d models.VacancyData) (bool, *models.VacancyDB, error) {
			close(release)
			return true, &models.VacancyDB{}, nil
		})
	upserter.EXPECT().Upsert(ctx, vacancy("farpost", "https://www.farpost.ru/1").Data()).Return(true, &models.VacancyDB{}, nil)

	o := NewOrchestrator(selector, upserter, nil, 0)
	outcomes, err := o.Run(ctx, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "vk", outcomes[0].Source)
	assert.Equal(t, "farpost", outcomes[1].Source)
}

func TestOrchestrator_Run_SelectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selector := NewMockParserSelector(ctrl)
	selector.EXPECT().Select([]string{"linkedin"}).Return(nil, parsers.ErrUnknownSource)

	o := NewOrchestrator(selector, nil, nil, 0)
	outcomes, err := o.Run(context.Background(), []string{"linkedin"})
	assert.ErrorIs(t, err, parsers.ErrUnknownSource)
	assert.Nil(t, outcomes)
}

func TestOrchestrator_Fetch_RecoversPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selector := NewMockParserSelector(ctrl)
	selector.EXPECT().Select(nil).Return([]parsers.Parser{
		&stubParser{name: "hh", panicMsg: "index out of range"},
		&stubParser{name: "vk", vacancies: []models.ParsedVacancy{vacancy("vk", "u")}},
	}, nil)

	o := NewOrchestrator(selector, nil, nil, 1)
	results, err := o.Fetch(context.Background(), nil)
	require.NoError(t, err)

	got := map[string]FetchResult{}
	for res := range results {
		got[res.Source] = res
	}

	require.Len(t, got, 2)
	assert.ErrorContains(t, got["hh"].Err, "parser panic: index out of range")
	assert.Nil(t, got["hh"].Vacancies)
	assert.NoError(t, got["vk"].Err)
	assert.Len(t, got["vk"].Vacancies, 1)
}

func TestOrchestrator_Run_NoActiveParsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selector := NewMockParserSelector(ctrl)
	selector.EXPECT().Select(nil).Return([]parsers.Parser{}, nil)

	o := NewOrchestrator(selector, nil, nil, 0)
	outcomes, err := o.Run(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, outcomes)
}
