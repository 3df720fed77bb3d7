package ingestion

//go:generate mockgen -source=ingestion.go -destination=mock_ingestion.go -package=ingestion

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
	"github.com/sbilibin2017/gw-vacancies/internal/parsers"
	"golang.org/x/sync/errgroup"
)

// ParserSelector resolves source names to active parsers
type ParserSelector interface {
	Select(names []string) ([]parsers.Parser, error)
}

// VacancyUpserter stores a vacancy keyed by its source URL
type VacancyUpserter interface {
	Upsert(ctx context.Context, d models.VacancyData) (bool, *models.VacancyDB, error)
}

// OutcomePublisher announces finished source runs
type OutcomePublisher interface {
	Publish(ctx context.Context, outcome Outcome)
}

// FetchResult is the output of a single parser run
type FetchResult struct {
	Source    string
	Vacancies []models.ParsedVacancy
	Err       error
}

// Outcome summarises the ingestion of one source
type Outcome struct {
	Source     string    `json:"source"`
	Fetched    int       `json:"fetched"`
	Created    int       `json:"created"`
	Updated    int       `json:"updated"`
	Failed     int       `json:"failed"`
	Error      string    `json:"error,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
	Err        error     `json:"-"`
}

// Orchestrator runs parsers concurrently and reconciles their results with
// storage one source at a time, in completion order
type Orchestrator struct {
	selector    ParserSelector
	upserter    VacancyUpserter
	publisher   OutcomePublisher
	concurrency int
}

// NewOrchestrator creates an Orchestrator. A nil publisher disables events,
// a non-positive concurrency runs every parser at once.
func NewOrchestrator(selector ParserSelector, upserter VacancyUpserter, publisher OutcomePublisher, concurrency int) *Orchestrator {
	return &Orchestrator{
		selector:    selector,
		upserter:    upserter,
		publisher:   publisher,
		concurrency: concurrency,
	}
}

// Fetch starts the selected parsers and streams their results as they finish.
// The channel is closed once every parser has returned. A failing parser
// never cancels its siblings.
func (o *Orchestrator) Fetch(ctx context.Context, names []string) (<-chan FetchResult, error) {
	selected, err := o.selector.Select(names)
	if err != nil {
		return nil, err
	}

	results := make(chan FetchResult, len(selected))

	var g errgroup.Group
	if o.concurrency > 0 {
		g.SetLimit(o.concurrency)
	}

	go func() {
		for _, p := range selected {
			p := p
			g.Go(func() error {
				results <- runParser(ctx, p)
				return nil
			})
		}
		_ = g.Wait()
		close(results)
	}()

	return results, nil
}

// Run fetches the selected sources and upserts every record.
// Outcomes are returned in completion order.
func (o *Orchestrator) Run(ctx context.Context, names []string) ([]Outcome, error) {
	results, err := o.Fetch(ctx, names)
	if err != nil {
		return nil, err
	}

	var outcomes []Outcome
	for res := range results {
		outcome := o.reconcile(ctx, res)
		outcomes = append(outcomes, outcome)

		if o.publisher != nil {
			o.publisher.Publish(ctx, outcome)
		}
	}

	return outcomes, nil
}

func (o *Orchestrator) reconcile(ctx context.Context, res FetchResult) Outcome {
	outcome := Outcome{Source: res.Source, Fetched: len(res.Vacancies), Err: res.Err}

	if res.Err != nil {
		logger.Log.Errorw("parser failed", "source", res.Source, "error", res.Err)
		outcome.Error = res.Err.Error()
		outcome.FinishedAt = time.Now().UTC()
		return outcome
	}

	for _, v := range res.Vacancies {
		created, _, err := o.upserter.Upsert(ctx, v.Data())
		switch {
		case err != nil:
			logger.Log.Errorw("failed to store vacancy", "source", res.Source, "url", v.Source, "error", err)
			outcome.Failed++
		case created:
			outcome.Created++
		default:
			outcome.Updated++
		}
	}

	outcome.FinishedAt = time.Now().UTC()
	logger.Log.Infow("source ingested",
		"source", outcome.Source,
		"fetched", outcome.Fetched,
		"created", outcome.Created,
		"updated", outcome.Updated,
		"failed", outcome.Failed,
	)
	return outcome
}

func runParser(ctx context.Context, p parsers.Parser) (res FetchResult) {
	res.Source = p.Name()
	defer func() {
		if rec := recover(); rec != nil {
			res.Vacancies = nil
			res.Err = fmt.Errorf("%s: parser panic: %v", res.Source, rec)
		}
	}()

	start := time.Now()
	res.Vacancies, res.Err = p.FetchVacancies(ctx)
	logger.Log.Infow("parser finished", "source", res.Source, "items", len(res.Vacancies), "duration", time.Since(start), "error", res.Err)
	return res
}
