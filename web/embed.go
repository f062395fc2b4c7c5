// Package web provides the embedded leaderboard UI assets.
//
// The single HTML page is compiled into the binary so facilityboard
// serve deploys as one file with no external assets.
package web

import "embed"

// Assets holds the leaderboard page under assets/.
//
//go:embed assets/*
var Assets embed.FS
