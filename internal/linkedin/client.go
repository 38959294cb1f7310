package linkedin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadscout/internal/domain"

	"github.com/rs/zerolog"
)

// Options carries everything the client needs up front; there is no
// package-level state. Attempts is the retry budget on top of the
// first request, so a request may be sent Attempts+1 times.
type Options struct {
	BaseURL       string
	APIKey        string
	PageSize      int
	MaxPages      int
	Attempts      int
	BaseDelay     time.Duration
	RateLimitWait time.Duration
	Timeout       time.Duration
	Pacer         *Pacer
	Logger        zerolog.Logger
}

type Client struct {
	opts Options
	hc   *http.Client
}

func New(opts Options) *Client {
	if opts.PageSize <= 0 {
		opts.PageSize = 100
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 50
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 2 * time.Second
	}
	if opts.RateLimitWait <= 0 {
		opts.RateLimitWait = 5 * time.Second
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Client{
		opts: opts,
		hc:   &http.Client{Timeout: opts.Timeout},
	}
}

// LookupCompany resolves a company page URL into the directory's
// company record via GET /company?link=<url>.
func (c *Client) LookupCompany(ctx context.Context, companyURL string) (domain.Company, error) {
	q := url.Values{}
	q.Set("link", companyURL)

	var body struct {
		ID   flexID `json:"id"`
		Name string `json:"name"`
	}
	if err := c.getJSON(ctx, "company", q, &body); err != nil {
		return domain.Company{}, fmt.Errorf("company lookup: %w", err)
	}
	if body.ID == "" {
		return domain.Company{}, fmt.Errorf("company lookup: response for %q carries no id", companyURL)
	}
	return domain.Company{ID: string(body.ID), Name: body.Name, URL: companyURL}, nil
}

// AllEmployees pages through GET /company_employee until the API
// returns a short or empty page, or the max-pages guard trips.
// Records keep API order.
func (c *Client) AllEmployees(ctx context.Context, companyID string) ([]domain.Employee, error) {
	var out []domain.Employee

	for page := 1; ; page++ {
		if page > c.opts.MaxPages {
			c.opts.Logger.Warn().
				Int("max_pages", c.opts.MaxPages).
				Int("fetched", len(out)).
				Msg("page guard reached, stopping pagination")
			break
		}

		batch, err := c.employeePage(ctx, companyID, page)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		out = append(out, batch...)
		c.opts.Logger.Debug().
			Int("page", page).
			Int("batch", len(batch)).
			Int("total", len(out)).
			Msg("fetched employee page")

		if len(batch) < c.opts.PageSize {
			break
		}
	}

	return out, nil
}

func (c *Client) employeePage(ctx context.Context, companyID string, page int) ([]domain.Employee, error) {
	q := url.Values{}
	q.Set("companyId", companyID)
	q.Set("page", fmt.Sprint(page))
	q.Set("pageSize", fmt.Sprint(c.opts.PageSize))

	var body struct {
		Results []domain.Employee `json:"results"`
	}
	if err := c.getJSON(ctx, "company_employee", q, &body); err != nil {
		return nil, fmt.Errorf("employees page %d: %w", page, err)
	}
	return body.Results, nil
}

// getJSON runs one logical request: fetch, classify, back off, retry.
// Attempt count and delay live here as locals, never on the client.
func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := strings.TrimRight(c.opts.BaseURL, "/") + "/" + endpoint + "?" + query.Encode()
	delay := c.opts.BaseDelay
	var lastErr error

	for attempt := 0; ; attempt++ {
		if c.opts.Pacer != nil {
			if err := c.opts.Pacer.Wait(ctx); err != nil {
				return err
			}
		}

		data, err := c.fetch(ctx, u)
		if err == nil {
			if uerr := json.Unmarshal(data, out); uerr != nil {
				// Malformed body is not retryable.
				return fmt.Errorf("%s: decode: %w", endpoint, uerr)
			}
			return nil
		}

		wait := delay
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if !apiErr.Transient() {
				return fmt.Errorf("%s: %w", endpoint, err)
			}
			if apiErr.Status == http.StatusTooManyRequests {
				wait = c.opts.RateLimitWait
				if apiErr.RetryAfter > 0 {
					wait = apiErr.RetryAfter
				}
			}
		}

		lastErr = err
		if attempt >= c.opts.Attempts {
			return fmt.Errorf("%s: giving up after %d attempts: %w", endpoint, attempt+1, lastErr)
		}

		c.opts.Logger.Warn().
			Err(err).
			Str("endpoint", endpoint).
			Int("attempt", attempt+1).
			Dur("wait", wait).
			Msg("transient failure, retrying")

		if serr := sleepCtx(ctx, wait); serr != nil {
			return serr
		}
		delay *= 2
	}
}

func (c *Client) fetch(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "leadscout/1.0")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if res.StatusCode >= 400 {
		return nil, &APIError{
			Status:     res.StatusCode,
			Body:       truncate(string(data), 240),
			RetryAfter: parseRetryAfter(res.Header),
		}
	}
	return data, nil
}

func parseRetryAfter(h http.Header) time.Duration {
	raw := strings.TrimSpace(h.Get("Retry-After"))
	if raw == "" {
		return 0
	}
	secs, err := time.ParseDuration(raw + "s")
	if err != nil || secs < 0 {
		return 0
	}
	return secs
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
