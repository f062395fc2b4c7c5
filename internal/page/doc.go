// Package page fetches a single HTML document and extracts its on-page
// SEO metrics: title, meta description, H1 headings, image alt-text
// coverage, word count, and same-origin link partitioning.
//
// Fetching the start page is the only fatal operation in an audit run;
// parsing degrades to empty values when elements are missing.
package page
