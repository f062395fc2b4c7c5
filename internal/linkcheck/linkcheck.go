// Package linkcheck probes discovered internal links for reachability.
//
// Probes are lightweight HEAD requests with a GET fallback when the
// server rejects HEAD. Every outcome is recorded as data; a failing
// link never aborts the audit run. Probes run strictly one at a time.
package linkcheck

import (
	"fmt"
	"net/http"
	"time"
)

// Status classifies a link probe outcome.
type Status int

const (
	// StatusOK covers 2xx and 3xx responses.
	StatusOK Status = iota

	// StatusBroken covers 4xx and 5xx responses.
	StatusBroken

	// StatusConnectionError covers transport failures: the server
	// never produced a status code.
	StatusConnectionError
)

// String returns a human-readable status label.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBroken:
		return "broken"
	case StatusConnectionError:
		return "connection error"
	default:
		return "unknown"
	}
}

// Result records the probe outcome for one link.
type Result struct {
	URL    string `json:"url"`
	Status Status `json:"status"`
	Code   int    `json:"code,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Annotated returns the URL annotated with its failure mode, used in
// the broken-links report column.
func (r Result) Annotated() string {
	switch r.Status {
	case StatusBroken:
		return fmt.Sprintf("%s (%d)", r.URL, r.Code)
	case StatusConnectionError:
		return fmt.Sprintf("%s (connection error)", r.URL)
	default:
		return r.URL
	}
}

// Checker probes link reachability.
type Checker struct {
	client    *http.Client
	userAgent string
}

// New creates a Checker with the given per-probe timeout and user agent.
func New(timeout time.Duration, userAgent string) *Checker {
	return &Checker{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Check probes one URL. HEAD is tried first; if the server does not
// support it (405 or 501) the probe falls back to a full GET.
func (c *Checker) Check(rawURL string) Result {
	code, err := c.probe(http.MethodHead, rawURL)
	if err != nil {
		return Result{URL: rawURL, Status: StatusConnectionError, Detail: err.Error()}
	}

	if code == http.StatusMethodNotAllowed || code == http.StatusNotImplemented {
		code, err = c.probe(http.MethodGet, rawURL)
		if err != nil {
			return Result{URL: rawURL, Status: StatusConnectionError, Detail: err.Error()}
		}
	}

	if code >= 400 {
		return Result{URL: rawURL, Status: StatusBroken, Code: code}
	}
	return Result{URL: rawURL, Status: StatusOK, Code: code}
}

// CheckAll probes each URL in order. onProgress, if non-nil, is called
// with each URL before its probe.
func (c *Checker) CheckAll(urls []string, onProgress func(url string)) []Result {
	results := make([]Result, 0, len(urls))
	for _, u := range urls {
		if onProgress != nil {
			onProgress(u)
		}
		results = append(results, c.Check(u))
	}
	return results
}

// probe issues a single request and returns the response status code.
// Redirects are followed, so 3xx codes only surface on redirect loops.
func (c *Checker) probe(method, rawURL string) (int, error) {
	req, err := http.NewRequest(method, rawURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// Broken filters results down to the ones that did not come back OK.
func Broken(results []Result) []Result {
	var broken []Result
	for _, r := range results {
		if r.Status != StatusOK {
			broken = append(broken, r)
		}
	}
	return broken
}
