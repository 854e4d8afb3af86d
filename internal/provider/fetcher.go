package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	defaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,application/json;q=0.8,*/*;q=0.7"
	defaultAcceptLanguage = "en-US,en;q=0.9,zh-CN;q=0.8,zh;q=0.7"
)

// Fetcher downloads product pages with browser-like headers. Requests are
// bounded by a per-request deadline and throttled per host.
type Fetcher struct {
	client    *resty.Client
	timeout   time.Duration
	userAgent string

	perSecond rate.Limit
	burst     int
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
}

// FetcherOption configures the Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout overrides the default 10s per-request deadline.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithUserAgent overrides the default browser User-Agent.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithHostRateLimit limits requests to each host to perSecond with the
// given burst. A non-positive rate disables throttling.
func WithHostRateLimit(perSecond float64, burst int) FetcherOption {
	return func(f *Fetcher) {
		if perSecond <= 0 {
			f.perSecond = rate.Inf
			return
		}
		f.perSecond = rate.Limit(perSecond)
		f.burst = max(burst, 1)
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.client = resty.NewWithClient(hc)
	}
}

// NewFetcher creates a Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:    resty.New(),
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
		perSecond: rate.Inf,
		burst:     1,
		limiters:  make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Timeout returns the per-request deadline.
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// Fetch GETs rawURL and returns the unmodified body of a 2xx response. Non-2xx
// responses yield an *HTTPError, an expired deadline yields ErrTimeout.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("invalid url %q", rawURL)
	}

	if err := f.limiter(u.Host).Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resp, err := f.client.R().
		SetContext(reqCtx).
		SetHeaders(map[string]string{
			"User-Agent":      f.userAgent,
			"Accept":          defaultAccept,
			"Accept-Language": defaultAcceptLanguage,
			"Referer":         u.Scheme + "://" + u.Host + "/",
			"Cache-Control":   "no-cache",
		}).
		Get(rawURL)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w after %s: %s", ErrTimeout, f.timeout, rawURL)
		}
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", newHTTPError(resp.StatusCode(), resp.Status(), resp.Header())
	}

	return string(resp.Body()), nil
}

func (f *Fetcher) limiter(host string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.limiters[host]
	if !ok {
		l = rate.NewLimiter(f.perSecond, f.burst)
		f.limiters[host] = l
	}
	return l
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
