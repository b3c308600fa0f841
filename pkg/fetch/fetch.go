// Package fetch downloads remote images for presentation assets, with
// rate limit aware retries, a content type sanity check, and optional
// downscaling before the bytes hit disk.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	"github.com/charmbracelet/log"
)

// DefaultUserAgent identifies the client; some hosts reject requests
// without a browser-like agent.
const DefaultUserAgent = "Mozilla/5.0 (compatible; slidekit/1.0)"

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	retryInterval     = 2 * time.Second
)

// imageContentTypes are the content types accepted without a warning.
var imageContentTypes = []string{
	"image/png", "image/jpeg", "image/jpg", "image/gif", "image/webp", "image/svg+xml",
}

// HTTPError is a non-retryable HTTP failure.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d when fetching %s", e.StatusCode, e.URL)
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	MaxRetries int
	Logger     *log.Logger
}

// Client downloads images over HTTP.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxRetries int
	logger     *log.Logger
}

// New returns a Client with the given options.
func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		userAgent:  opts.UserAgent,
		maxRetries: opts.MaxRetries,
		logger:     opts.Logger,
	}
}

// Download fetches the image at url. Rate limiting (429) and timeouts
// are retried with a backoff; other HTTP failures stop immediately.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	operation := func() ([]byte, error) {
		data, err := c.fetchOnce(ctx, url)
		if err == nil {
			return data, nil
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusTooManyRequests {
				c.logger.Warn("Rate limited, will retry", "url", url)
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		if isTimeout(err) {
			c.logger.Warn("Request timed out, will retry", "url", url)
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), uint64(c.maxRetries)),
		ctx,
	)
	return backoff.RetryWithData(operation, policy)
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !isImageContentType(contentType) {
		c.logger.Warn("Content type may not be an image", "content_type", contentType, "url", url)
	}

	return io.ReadAll(resp.Body)
}

// DownloadFile fetches url and writes it to outputPath, creating the
// parent directory. When maxSize is positive, raster images larger
// than maxSize in either dimension are scaled down first.
func (c *Client) DownloadFile(ctx context.Context, url, outputPath string, maxSize int) error {
	data, err := c.Download(ctx, url)
	if err != nil {
		return err
	}

	if maxSize > 0 {
		data = c.resizeIfNeeded(data, maxSize, outputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return os.WriteFile(outputPath, data, 0644)
}

func isImageContentType(contentType string) bool {
	for _, t := range imageContentTypes {
		if strings.Contains(contentType, t) {
			return true
		}
	}
	return false
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// SuggestAltText derives alt text from the image URL's file name.
func SuggestAltText(url string) string {
	p := url
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)

	words := strings.Fields(stem)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	if len(words) == 0 {
		return "Downloaded image"
	}
	return "Image: " + strings.Join(words, " ")
}
