package parsers

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

const (
	farpostTodayMarker = "сегодня"
	farpostMinDelay    = 2 * time.Second
	farpostMaxDelay    = 3 * time.Second
	farpostMaxItems    = 1000
)

// FarpostParser scrapes the farpost.ru job board until it reaches an entry
// that was not posted today
type FarpostParser struct {
	fetcher     *fetcher
	url         string
	base        *url.URL
	cookiesFile string
	maxItems    int
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewFarpostParser(client *http.Client, cfg SourceConfig) (Parser, error) {
	u, err := url.Parse(cfg.ParseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: parse url: %w", SourceFarpost, err)
	}

	return &FarpostParser{
		fetcher:     newFetcher(string(SourceFarpost), client, cfg),
		url:         strings.TrimSuffix(cfg.ParseURL, "/"),
		base:        &url.URL{Scheme: u.Scheme, Host: u.Host},
		cookiesFile: cfg.CookiesFile,
		maxItems:    positiveOr(cfg.MaxItems, farpostMaxItems),
		sleep:       sleepContext,
	}, nil
}

func (p *FarpostParser) Name() string {
	return string(SourceFarpost)
}

func (p *FarpostParser) FetchVacancies(ctx context.Context) ([]models.ParsedVacancy, error) {
	cookies, err := loadCookies(p.cookiesFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}

	var vacancies []models.ParsedVacancy

	for page := 1; ; page++ {
		doc, err := p.fetcher.getHTML(ctx, fmt.Sprintf("%s/?page=%d", p.url, page), cookies)
		if err != nil {
			return nil, err
		}

		items := doc.Find("tr.bull-item")
		items.Each(func(_ int, item *goquery.Selection) {
			if !isToday(item) {
				return
			}
			link := item.Find("a.bulletinLink").First()
			href, ok := link.Attr("href")
			if !ok {
				return
			}
			source, err := p.base.Parse(href)
			if err != nil {
				return
			}
			vacancies = append(vacancies, models.ParsedVacancy{
				Name:       strings.TrimSpace(link.Text()),
				Source:     source.String(),
				SourceName: p.Name(),
			})
		})

		logger.Log.Debugw("page fetched", "source", p.Name(), "page", page, "items", items.Length())

		if items.Length() == 0 || !isToday(items.Last()) || len(vacancies) >= p.maxItems {
			break
		}

		delay := farpostMinDelay + time.Duration(rand.Int63n(int64(farpostMaxDelay-farpostMinDelay)))
		if err := p.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	return capItems(vacancies, p.maxItems), nil
}

// isToday reports whether an entry has no date or a date mentioning today
func isToday(item *goquery.Selection) bool {
	date := item.Find("div.date")
	return date.Length() == 0 || strings.Contains(date.Text(), farpostTodayMarker)
}

// loadCookies reads a JSON object of cookie names to values
func loadCookies(path string) ([]*http.Cookie, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cookies: %w", err)
	}

	var values map[string]string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("decode cookies: %w", err)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	cookies := make([]*http.Cookie, 0, len(names))
	for _, name := range names {
		cookies = append(cookies, &http.Cookie{Name: name, Value: values[name]})
	}
	return cookies, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
