package allocconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Drift describes an on-disk configuration that no longer matches the running one.
type Drift struct {
	Path          string
	RunningDigest string
	FileDigest    string
	Err           error
}

// Watch reports changes to the configuration file at path until ctx is done.
// The running configuration is never replaced; a changed file only takes
// effect after a restart, so every difference is reported as drift.
func Watch(ctx context.Context, path string, running *Config, logger *zap.Logger, onDrift func(Drift)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors usually replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Allocation config watcher error", zap.Error(err))
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}

			drift, changed := compareFile(abs, running)
			if !changed {
				continue
			}
			logger.Error("Allocation config drift detected; running config unchanged until restart",
				zap.String("path", drift.Path),
				zap.String("running_digest", drift.RunningDigest),
				zap.String("file_digest", drift.FileDigest),
				zap.Error(drift.Err))
			if onDrift != nil {
				onDrift(drift)
			}
		}
	}
}

func compareFile(path string, running *Config) (Drift, bool) {
	drift := Drift{Path: path, RunningDigest: running.Digest()}

	data, err := os.ReadFile(path)
	if err != nil {
		drift.Err = err
		return drift, true
	}
	cfg, err := Parse(data)
	if err != nil {
		drift.Err = err
		return drift, true
	}
	drift.FileDigest = cfg.Digest()
	return drift, drift.FileDigest != drift.RunningDigest
}
