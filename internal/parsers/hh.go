package parsers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

const (
	defaultPageSize = 100
	defaultMaxItems = 200

	hhDefaultArea  = "102"
	hhDefaultQuery = "Хабаровск"
)

type hhResponse struct {
	Found int `json:"found"`
	Items []struct {
		Name         string `json:"name"`
		AlternateURL string `json:"alternate_url"`
	} `json:"items"`
}

// HHParser pages through the hh.ru vacancies API for the last day
type HHParser struct {
	fetcher  *fetcher
	url      string
	area     string
	query    string
	pageSize int
	maxItems int
}

func NewHHParser(client *http.Client, cfg SourceConfig) (Parser, error) {
	return &HHParser{
		fetcher:  newFetcher(string(SourceHH), client, cfg),
		url:      cfg.ParseURL,
		area:     orDefault(cfg.Area, hhDefaultArea),
		query:    orDefault(cfg.Query, hhDefaultQuery),
		pageSize: positiveOr(cfg.PageSize, defaultPageSize),
		maxItems: positiveOr(cfg.MaxItems, defaultMaxItems),
	}, nil
}

func (p *HHParser) Name() string {
	return string(SourceHH)
}

func (p *HHParser) FetchVacancies(ctx context.Context) ([]models.ParsedVacancy, error) {
	var vacancies []models.ParsedVacancy

	for page := 0; ; page++ {
		params := url.Values{}
		params.Set("area", p.area)
		params.Set("period", "1")
		params.Set("text", p.query)
		params.Set("per_page", strconv.Itoa(p.pageSize))
		params.Set("page", strconv.Itoa(page))

		var resp hhResponse
		if err := p.fetcher.getJSON(ctx, p.url, params, nil, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			vacancies = append(vacancies, models.ParsedVacancy{
				Name:       item.Name,
				Source:     item.AlternateURL,
				SourceName: p.Name(),
			})
		}

		logger.Log.Debugw("page fetched", "source", p.Name(), "page", page, "items", len(resp.Items), "found", resp.Found)

		if len(resp.Items) == 0 || (page+1)*p.pageSize >= resp.Found || len(vacancies) >= p.maxItems {
			break
		}
	}

	return capItems(vacancies, p.maxItems), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func positiveOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func capItems(items []models.ParsedVacancy, max int) []models.ParsedVacancy {
	if len(items) > max {
		return items[:max]
	}
	return items
}
