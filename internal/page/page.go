package page

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// MaxBodySize limits how much of a response body is parsed. 5MB is
// ample for HTML pages and bounds memory on misbehaving servers.
const MaxBodySize = 5 * 1024 * 1024

// Result holds the on-page SEO metrics for one audited URL.
// It is computed once per run and not mutated afterwards.
type Result struct {
	URL             string   `json:"url"`
	Title           string   `json:"title"`
	MetaDescription string   `json:"meta_description"`
	H1s             []string `json:"h1_list"`
	ImageCount      int      `json:"image_count"`
	MissingAlt      int      `json:"images_missing_alt"`
	WordCount       int      `json:"word_count"`
	InternalLinks   []string `json:"internal_links"`
	ExternalLinks   []string `json:"external_links"`
}

// Auditor fetches and parses one HTML document.
type Auditor struct {
	client    *http.Client
	userAgent string
}

// New creates an Auditor with the given request timeout and user agent.
func New(timeout time.Duration, userAgent string) *Auditor {
	return &Auditor{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Audit retrieves rawURL and extracts its SEO metrics.
//
// Fetch failures are classified: ErrTimeout on deadline, ErrNetwork on
// transport failure, and *StatusError on a non-2xx response.
func (a *Auditor) Audit(rawURL string) (*Result, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	return parse(io.LimitReader(resp.Body, MaxBodySize), rawURL)
}

// parse extracts metrics from an HTML document. baseURL anchors
// relative hrefs and decides the internal/external link split.
func parse(r io.Reader, baseURL string) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	result := &Result{URL: baseURL}

	result.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		result.MetaDescription = strings.TrimSpace(desc)
	}

	doc.Find("h1").Each(func(i int, sel *goquery.Selection) {
		result.H1s = append(result.H1s, strings.TrimSpace(sel.Text()))
	})

	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		result.ImageCount++
		if strings.TrimSpace(sel.AttrOr("alt", "")) == "" {
			result.MissingAlt++
		}
	})

	result.InternalLinks, result.ExternalLinks = collectLinks(doc, base)

	// Word count covers visible text only: strip non-rendered elements
	// before tokenizing. Done last because Remove mutates the document.
	doc.Find("script, style, noscript").Remove()
	result.WordCount = len(strings.Fields(doc.Text()))

	return result, nil
}

// collectLinks resolves every anchor href against base and partitions
// the result into same-origin (internal) and other (external) URLs.
// Fragments are stripped and duplicates collapsed; the returned slices
// are sorted for stable output.
func collectLinks(doc *goquery.Document, base *url.URL) (internal, external []string) {
	internalSet := make(map[string]struct{})
	externalSet := make(map[string]struct{})

	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		lower := strings.ToLower(href)
		if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "tel:") {
			return
		}

		abs, err := base.Parse(href)
		if err != nil {
			return
		}
		if abs.Scheme != "http" && abs.Scheme != "https" {
			return
		}
		abs.Fragment = ""

		if abs.Host == base.Host {
			internalSet[abs.String()] = struct{}{}
		} else {
			externalSet[abs.String()] = struct{}{}
		}
	})

	internal = sortedKeys(internalSet)
	external = sortedKeys(externalSet)
	return internal, external
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
