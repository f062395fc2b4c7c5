// Package main provides the seoaudit CLI.
//
// seoaudit fetches a single URL, extracts on-page SEO metrics, probes
// every discovered internal link, and writes a flat report file.
//
// Usage:
//
//	seoaudit https://example.com
package main

// main is the entry point for seoaudit.
func main() {
	Execute()
}
