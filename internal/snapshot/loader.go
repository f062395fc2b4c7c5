// Package snapshot fetches the external facility snapshot.
//
// Loading fails soft: any network, HTTP, or parse problem is logged
// and yields an empty record set, so downstream rendering degrades to
// an empty leaderboard instead of crashing. No retries are attempted.
package snapshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smallick/ltach-tools/internal/facility"
)

// MaxBodySize bounds the snapshot payload; facility snapshots are a
// few hundred kilobytes at most.
const MaxBodySize = 10 * 1024 * 1024

// Loader fetches and decodes the facility snapshot.
type Loader struct {
	client    *http.Client
	url       string
	userAgent string
	log       zerolog.Logger
}

// New creates a Loader for the snapshot at rawURL.
func New(rawURL, userAgent string, timeout time.Duration, log zerolog.Logger) *Loader {
	return &Loader{
		client: &http.Client{
			Timeout: timeout,
		},
		url:       rawURL,
		userAgent: userAgent,
		log:       log,
	}
}

// URL returns the configured snapshot URL.
func (l *Loader) URL() string { return l.url }

// Load fetches the snapshot with a cache-busting query parameter and
// decodes it. On any failure it logs the error and returns an empty
// (non-nil) record slice together with the error so callers can
// surface a summary message; callers must not treat the error as
// fatal.
func (l *Loader) Load(ctx context.Context) ([]facility.Record, error) {
	bustURL, err := withCacheBuster(l.url)
	if err != nil {
		return l.fail("invalid snapshot url", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, bustURL, nil)
	if err != nil {
		return l.fail("creating snapshot request", err)
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		return l.fail("fetching snapshot", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return l.fail("fetching snapshot", fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return l.fail("reading snapshot body", err)
	}

	records, err := facility.Decode(data)
	if err != nil {
		return l.fail("decoding snapshot", err)
	}

	l.log.Debug().Int("records", len(records)).Str("url", l.url).Msg("snapshot loaded")
	return records, nil
}

// fail logs the error and returns the empty-collection degradation.
func (l *Loader) fail(msg string, err error) ([]facility.Record, error) {
	l.log.Error().Err(err).Str("url", l.url).Msg(msg)
	return []facility.Record{}, fmt.Errorf("%s: %w", msg, err)
}

// withCacheBuster appends a unique query parameter so intermediary
// caches never serve a stale snapshot.
func withCacheBuster(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("cb", uuid.NewString())
	u.RawQuery = q.Encode()
	return u.String(), nil
}
