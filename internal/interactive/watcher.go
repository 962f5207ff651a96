package interactive

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single worksheet file and fires onChange after
// writes, debounced so rapid editor saves collapse into one evaluation.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onChange func()
	logger   *slog.Logger
}

func NewFileWatcher(filePath string, onChange func(), logger *slog.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the specific file
	err = watcher.Add(filePath)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	// Also watch the directory for file recreation events
	dir := filepath.Dir(filePath)
	err = watcher.Add(dir)
	if err != nil {
		// Non-fatal: some editors recreate files
		logger.Warn("couldn't watch directory", slog.String("dir", dir), slog.String("error", err.Error()))
	}

	return &FileWatcher{
		watcher:  watcher,
		filePath: filePath,
		onChange: onChange,
		logger:   logger,
	}, nil
}

func (fw *FileWatcher) Start(ctx context.Context) {
	var debounceTimer *time.Timer
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) == filepath.Clean(fw.filePath) {
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					if debounceTimer != nil {
						debounceTimer.Stop()
					}

					debounceTimer = time.AfterFunc(debounceDelay, fw.onChange)
				}
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error("watcher error", slog.String("error", err.Error()))
		}
	}
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
