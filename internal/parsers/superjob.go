package parsers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

const (
	superjobDefaultVersion = "2.33"
	superjobDefaultTown    = "56"
)

type superjobResponse struct {
	More    bool `json:"more"`
	Objects []struct {
		Profession string `json:"profession"`
		Link       string `json:"link"`
	} `json:"objects"`
}

// SuperjobParser pages through the superjob.ru vacancies API for the last day
type SuperjobParser struct {
	fetcher   *fetcher
	url       string
	secretKey string
	town      string
	pageSize  int
	maxItems  int
}

func NewSuperjobParser(client *http.Client, cfg SourceConfig) (Parser, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: %s.secret_key", ErrMissingOption, SourceSuperjob)
	}

	version := orDefault(cfg.Version, superjobDefaultVersion)

	return &SuperjobParser{
		fetcher:   newFetcher(string(SourceSuperjob), client, cfg),
		url:       strings.TrimSuffix(cfg.ParseURL, "/") + "/" + version + "/vacancies/",
		secretKey: cfg.SecretKey,
		town:      orDefault(cfg.Town, superjobDefaultTown),
		pageSize:  positiveOr(cfg.PageSize, defaultPageSize),
		maxItems:  positiveOr(cfg.MaxItems, defaultMaxItems),
	}, nil
}

func (p *SuperjobParser) Name() string {
	return string(SourceSuperjob)
}

func (p *SuperjobParser) FetchVacancies(ctx context.Context) ([]models.ParsedVacancy, error) {
	header := http.Header{}
	header.Set("X-Api-App-Id", p.secretKey)

	var vacancies []models.ParsedVacancy

	for page := 0; ; page++ {
		params := url.Values{}
		params.Set("period", "1")
		params.Set("town", p.town)
		params.Set("count", strconv.Itoa(p.pageSize))
		params.Set("page", strconv.Itoa(page))

		var resp superjobResponse
		if err := p.fetcher.getJSON(ctx, p.url, params, header, &resp); err != nil {
			return nil, err
		}

		for _, obj := range resp.Objects {
			vacancies = append(vacancies, models.ParsedVacancy{
				Name:       obj.Profession,
				Source:     obj.Link,
				SourceName: p.Name(),
			})
		}

		logger.Log.Debugw("page fetched", "source", p.Name(), "page", page, "items", len(resp.Objects), "more", resp.More)

		if !resp.More || len(resp.Objects) == 0 || len(vacancies) >= p.maxItems {
			break
		}
	}

	return capItems(vacancies, p.maxItems), nil
}
