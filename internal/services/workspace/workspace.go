// Package workspace assembles what a command needs to work with presets:
// the effective configuration, a logger, the configured preset store and
// the activity history.
package workspace

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/fluxoryn/vibe-fuse/internal/config"
	"github.com/fluxoryn/vibe-fuse/internal/history"
	"github.com/fluxoryn/vibe-fuse/internal/kvstore"
	"github.com/fluxoryn/vibe-fuse/internal/logging"
	"github.com/fluxoryn/vibe-fuse/internal/preset"
	"github.com/fluxoryn/vibe-fuse/internal/session"
)

// Workspace owns the opened stores. Close it when the command finishes.
type Workspace struct {
	Config *config.Config
	Logger *slog.Logger

	kv      kvstore.Store
	presets *preset.Store
	history history.Repository
}

// Open loads the configuration with environment overrides applied, builds a
// logger writing to logOut, and opens the configured preset backend. The
// history is optional: if it cannot be opened a warning is logged and
// actions go unrecorded.
func Open(logOut io.Writer) (*Workspace, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg = cfg.WithEnv(os.LookupEnv)

	logger, lerr := logging.New(logOut, cfg.Level())
	if lerr != nil {
		logger.Warn("invalid log level, using default", "level", cfg.Level(), "error", lerr)
	}

	kv, err := kvstore.Open(cfg.StorageBackend())
	if err != nil {
		return nil, err
	}
	logger.Debug("opened preset storage", "backend", cfg.StorageBackend())

	ws := &Workspace{
		Config:  cfg,
		Logger:  logger,
		kv:      kv,
		presets: preset.NewStore(kv, preset.WithLogger(logger)),
	}

	repo, herr := history.Open()
	if herr != nil {
		logger.Warn("history unavailable", "error", herr)
	} else {
		ws.history = repo
	}

	return ws, nil
}

// Backend returns the name of the preset backend in use.
func (w *Workspace) Backend() string {
	return w.Config.StorageBackend()
}

// Presets returns the preset store.
func (w *Workspace) Presets() *preset.Store {
	return w.presets
}

// History returns the history repository, or nil when it is unavailable.
func (w *Workspace) History() history.Repository {
	return w.history
}

// Recorder returns the history as a session recorder, or nil.
func (w *Workspace) Recorder() session.Recorder {
	if w.history == nil {
		return nil
	}
	return w.history
}

// NewSession returns a session over the preset store, recording into the
// history and starting with the configured animation flag. opts are
// applied last.
func (w *Workspace) NewSession(opts ...session.Option) *session.Session {
	base := []session.Option{
		session.WithLogger(w.Logger),
		session.WithAnimated(w.Config.AnimateByDefault()),
	}
	if rec := w.Recorder(); rec != nil {
		base = append(base, session.WithRecorder(rec))
	}
	return session.New(w.presets, append(base, opts...)...)
}

// Close releases the preset store and the history.
func (w *Workspace) Close() error {
	var errs []error
	if w.kv != nil {
		errs = append(errs, w.kv.Close())
	}
	if w.history != nil {
		errs = append(errs, w.history.Close())
	}
	return errors.Join(errs...)
}
