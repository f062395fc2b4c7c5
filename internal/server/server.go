// Package server exposes the facility leaderboard over HTTP: an
// embedded single-page UI at the root and a JSON aggregation API.
//
// Every API request performs its own snapshot load and aggregation
// pass, so requests never share mutable aggregation state. Snapshot
// load failures degrade to an empty leaderboard with the failure in
// the summary text.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/smallick/ltach-tools/internal/board"
	"github.com/smallick/ltach-tools/internal/facility"
	"github.com/smallick/ltach-tools/internal/snapshot"
)

// shutdownTimeout bounds graceful shutdown after context cancellation.
const shutdownTimeout = 5 * time.Second

// Settings are the reloadable parts of the server configuration.
type Settings struct {
	SnapshotURL string
	UserAgent   string
	Timeout     time.Duration
	Top         int
}

// Server serves the leaderboard UI and API.
type Server struct {
	listen string
	assets fs.FS
	log    zerolog.Logger

	mu       sync.RWMutex
	loader   *snapshot.Loader
	top      int
	settings Settings
}

// New creates a Server. assets must contain assets/index.html.
func New(listen string, settings Settings, assets fs.FS, log zerolog.Logger) *Server {
	s := &Server{
		listen: listen,
		assets: assets,
		log:    log,
	}
	s.apply(settings)
	return s
}

// apply swaps in new settings and rebuilds the loader.
func (s *Server) apply(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.loader = snapshot.New(settings.SnapshotURL, settings.UserAgent, settings.Timeout, s.log)
	s.top = settings.Top
}

// UpdateSettings applies new settings at runtime. Used by the config
// watcher in serve mode; in-flight requests finish with the loader
// they already hold.
func (s *Server) UpdateSettings(settings Settings) {
	s.apply(settings)
	s.log.Info().
		Str("snapshot_url", settings.SnapshotURL).
		Int("top", settings.Top).
		Msg("settings reloaded")
}

// Handler returns the HTTP handler serving the UI and API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

// Run binds the listen address and serves until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.listen)
	if err != nil {
		return fmt.Errorf("binding %s: %w", s.listen, err)
	}

	httpServer := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Error().Err(err).Msg("http server shutdown")
		}
	}()

	s.log.Info().Str("listen", s.listen).Msg("serving leaderboard")
	if err := httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// leaderboardResponse is the API payload consumed by the page script.
type leaderboardResponse struct {
	Summary string      `json:"summary"`
	Metric  string      `json:"metric"`
	Rows    []board.Row `json:"rows"`
}

// handleLeaderboard loads the snapshot, aggregates with the filters
// from the query string, and returns the ranked rows. Always 200 for
// recognized parameters: load failures surface in the summary.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	metric, err := facility.ParseMetric(query.Get("metric"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := facility.Options{
		RequireLTACH: isSet(query.Get("ltach")),
		RequireTBI:   isSet(query.Get("tbi")),
	}

	s.mu.RLock()
	loader := s.loader
	top := s.top
	s.mu.RUnlock()

	records, loadErr := loader.Load(r.Context())
	groups := facility.Aggregate(records, opts)
	ranked := facility.Rank(groups, metric, top)

	resp := leaderboardResponse{
		Summary: board.Summary(groups, loadErr),
		Metric:  string(metric),
		Rows:    board.Rows(ranked),
	}
	if resp.Rows == nil {
		resp.Rows = []board.Row{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error().Err(err).Msg("encoding leaderboard response")
	}
}

// handleIndex serves the embedded UI page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data, err := fs.ReadFile(s.assets, "assets/index.html")
	if err != nil {
		s.log.Error().Err(err).Msg("reading embedded index")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// isSet interprets checkbox-style query values.
func isSet(v string) bool {
	switch v {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}
