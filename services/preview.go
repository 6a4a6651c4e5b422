package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// rebuildDebounce coalesces bursts of filesystem events (editor save, git
// checkout) into a single rebuild
const rebuildDebounce = 300 * time.Millisecond

// PreviewService serves the generated site locally and optionally rebuilds it
// when the source tree changes
type PreviewService struct {
	builder *BuildService
	config  *Config
}

func NewPreviewService(builder *BuildService, config *Config) *PreviewService {
	return &PreviewService{
		builder: builder,
		config:  config,
	}
}

// Start builds the site, then serves it until ctx is cancelled. With watch
// enabled the source tree is monitored and the site rebuilt on change.
func (s *PreviewService) Start(ctx context.Context, watch bool) error {
	result, err := s.builder.Build()
	if err != nil {
		return err
	}

	if watch {
		go s.watch(ctx)
	}

	address := fmt.Sprintf("%s:%d", s.config.HTTPHost, s.config.HTTPPort)
	server := &http.Server{
		Addr:    address,
		Handler: s.routes(result.OutputDir),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Preview server shutdown failed", "error", err)
		}
	}()

	slog.Info("Preview server starting", "address", fmt.Sprintf("http://%s", address))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("preview server failed: %w", err)
	}
	return nil
}

func (s *PreviewService) routes(outputDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/*", http.FileServer(http.Dir(outputDir)))
	return r
}

// watch monitors the source tree and rebuilds the site on change, debounced
func (s *PreviewService) watch(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("Failed to create filesystem watcher", "error", err)
		return
	}
	defer watcher.Close()

	site, err := LoadSiteConfig(s.config.SiteDir)
	if err != nil {
		slog.Error("Failed to load site config for watching", "error", err)
		return
	}

	outputDir := filepath.Join(s.config.SiteDir, site.OutputDir)
	watched := []string{
		s.config.SiteDir,
		filepath.Join(s.config.SiteDir, site.PostsDir),
		filepath.Join(s.config.SiteDir, site.StaticDir),
		filepath.Join(s.config.SiteDir, "templates"),
	}
	for _, dir := range watched {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			slog.Warn("Failed to watch directory", "dir", dir, "error", err)
		}
	}

	var debounce *time.Timer
	rebuild := func() {
		if _, err := s.builder.Build(); err != nil {
			slog.Error("Rebuild failed", "error", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			// The build rewrites the output directory; ignore it to avoid
			// rebuild loops
			if pathWithin(outputDir, event.Name) {
				continue
			}
			slog.Debug("Source change detected", "path", event.Name, "op", event.Op.String())
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(rebuildDebounce, rebuild)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Filesystem watcher error", "error", err)
		}
	}
}

func pathWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
