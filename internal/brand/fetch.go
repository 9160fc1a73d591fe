package brand

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pagespec_server/internal/logger"
	"pagespec_server/internal/types"
)

const (
	// DefaultTimeout bounds a single brand fetch.
	DefaultTimeout = 8 * time.Second
	userAgent      = "Prompt-to-UI BrandBot/1.0"
	maxBodyBytes   = 2 << 20
)

// Fetcher downloads a page and scans it for brand tokens.
type Fetcher struct {
	httpClient *http.Client
	log        *logger.Logger
}

// NewFetcher creates a Fetcher. A non-positive timeout uses DefaultTimeout.
func NewFetcher(timeout time.Duration, log *logger.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Tokens fetches rawURL once and returns whatever tokens it can find. Bad
// URLs, timeouts and non-2xx responses yield empty Tokens and are logged.
func (f *Fetcher) Tokens(ctx context.Context, rawURL string) Tokens {
	target := SanitizeURL(rawURL)
	if target == "" {
		f.log.Warn(types.NewMalformedInputError("url", rawURL, "unsupported url").Error())
		return Tokens{}
	}

	doc, err := f.fetch(ctx, target)
	if err != nil {
		f.log.WithFields(map[string]any{"url": target}).Error(err, "brand fetch failed")
		return Tokens{}
	}
	return ParseHTML(doc)
}

func (f *Fetcher) fetch(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", types.NewNetworkFailure(target, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", types.NewNetworkFailure(target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", types.NewNetworkFailure(target, fmt.Errorf("unexpected status: %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", types.NewNetworkFailure(target, fmt.Errorf("read body: %w", err))
	}
	return string(body), nil
}

// SanitizeURL accepts http and https URLs. A value without a scheme is
// retried as https. Anything else yields "".
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}
