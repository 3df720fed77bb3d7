package parsers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const errorBodyLimit = 4096

// fetcher issues rate limited GET requests with a fixed User-Agent
type fetcher struct {
	name      string
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

func newFetcher(name string, client *http.Client, cfg SourceConfig) *fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &fetcher{
		name:      name,
		client:    client,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

func (f *fetcher) get(ctx context.Context, rawURL string, params url.Values, header http.Header, cookies []*http.Cookie) (*http.Response, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%s: parse url: %w", f.name, err)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", f.name, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", f.userAgent)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", f.name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s: unexpected status %d: %s", f.name, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return resp, nil
}

// getJSON decodes a 2xx JSON response into out
func (f *fetcher) getJSON(ctx context.Context, rawURL string, params url.Values, header http.Header, out any) error {
	resp, err := f.get(ctx, rawURL, params, header, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", f.name, err)
	}
	return nil
}

// getHTML parses a 2xx HTML response
func (f *fetcher) getHTML(ctx context.Context, rawURL string, cookies []*http.Cookie) (*goquery.Document, error) {
	resp, err := f.get(ctx, rawURL, nil, nil, cookies)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: parse html: %w", f.name, err)
	}
	return doc, nil
}
