// Package main provides the facilityboard CLI.
//
// facilityboard loads a JSON snapshot of facility records and renders
// a leaderboard grouped by US state, either once to stdout or as a
// small web UI.
//
// Usage:
//
//	facilityboard render --snapshot-url https://example.com/data/facilities.json
//	facilityboard serve --config ltach-tools.yaml
package main

// main is the entry point for facilityboard.
func main() {
	Execute()
}
