package server

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/smallick/ltach-tools/internal/config"
)

// debounceDelay coalesces the burst of fsnotify events most editors
// emit for a single save.
const debounceDelay = 500 * time.Millisecond

// ConfigWatcher reloads server settings when the config file changes.
type ConfigWatcher struct {
	path     string
	onChange func(*config.Config)
	log      zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewConfigWatcher creates a watcher for the config file at path.
// onChange receives each successfully reloaded config.
func NewConfigWatcher(path string, onChange func(*config.Config), log zerolog.Logger) *ConfigWatcher {
	return &ConfigWatcher{
		path:     path,
		onChange: onChange,
		log:      log,
	}
}

// Run watches until ctx is cancelled. Watch setup failures are logged,
// not fatal: the server keeps running with its current settings.
func (w *ConfigWatcher) Run(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.log.Error().Err(err).Msg("config watcher: create failed")
		return
	}
	defer watcher.Close()

	// Watch the directory: editors that replace the file on save would
	// otherwise drop the watch on the old inode.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		w.log.Error().Err(err).Str("path", w.path).Msg("config watcher: watch failed")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("config watcher: event error")
		}
	}
}

// scheduleReload debounces reloads.
func (w *ConfigWatcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.reload)
}

func (w *ConfigWatcher) reload() {
	cfg, err := config.Load(w.path)
	if err != nil {
		w.log.Error().Err(err).Str("path", w.path).Msg("config reload failed, keeping current settings")
		return
	}
	w.log.Debug().Str("path", w.path).Msg("config file changed")
	w.onChange(cfg)
}
