package parsers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-vacancies/internal/models"
)

const (
	vkWallBase       = "https://vk.com"
	vkDefaultQuery   = "#РаботаХабаровск"
	vkDefaultVersion = "5.95"
	vkDefaultRate    = 3
	vkLookback       = 24 * time.Hour
	maxNameLength    = 264
)

type vkResponse struct {
	Response struct {
		Items []struct {
			ID      int64  `json:"id"`
			OwnerID int64  `json:"owner_id"`
			Text    string `json:"text"`
		} `json:"items"`
	} `json:"response"`
	Error *struct {
		Code    int    `json:"error_code"`
		Message string `json:"error_msg"`
	} `json:"error"`
}

// VKParser searches the VK news feed for tagged vacancy posts of the last day
type VKParser struct {
	fetcher     *fetcher
	url         string
	accessToken string
	version     string
	query       string
	now         func() time.Time
}

func NewVKParser(client *http.Client, cfg SourceConfig) (Parser, error) {
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("%w: %s.access_token", ErrMissingOption, SourceVK)
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = vkDefaultRate
	}

	return &VKParser{
		fetcher:     newFetcher(string(SourceVK), client, cfg),
		url:         cfg.ParseURL,
		accessToken: cfg.AccessToken,
		version:     orDefault(cfg.Version, vkDefaultVersion),
		query:       orDefault(cfg.Query, vkDefaultQuery),
		now:         time.Now,
	}, nil
}

func (p *VKParser) Name() string {
	return string(SourceVK)
}

func (p *VKParser) FetchVacancies(ctx context.Context) ([]models.ParsedVacancy, error) {
	params := url.Values{}
	params.Set("q", p.query)
	params.Set("access_token", p.accessToken)
	params.Set("v", p.version)
	params.Set("start_time", strconv.FormatInt(p.now().Add(-vkLookback).Unix(), 10))

	var resp vkResponse
	if err := p.fetcher.getJSON(ctx, p.url, params, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("%s: api error %d: %s", p.Name(), resp.Error.Code, resp.Error.Message)
	}

	vacancies := make([]models.ParsedVacancy, 0, len(resp.Response.Items))
	for _, post := range resp.Response.Items {
		name := postTitle(post.Text)
		if name == "" {
			continue
		}
		vacancies = append(vacancies, models.ParsedVacancy{
			Name:       name,
			Source:     fmt.Sprintf("%s/wall%d_%d", vkWallBase, post.OwnerID, post.ID),
			SourceName: p.Name(),
		})
	}

	return vacancies, nil
}

// postTitle returns the first line of text, cut to the column width
func postTitle(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > maxNameLength {
		return string(runes[:maxNameLength])
	}
	return text
}
