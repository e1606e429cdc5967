package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"go.uber.org/zap"
)

// Watch reloads the bracket table at path whenever it is saved and passes
// the new table to onChange. It blocks until ctx is cancelled.
//
// The containing directory is watched rather than the file, so saves that
// write a temporary file and rename it over path are seen too. A reload that
// fails to parse or validate is logged and skipped; the caller keeps whatever
// table it had.
func Watch(ctx context.Context, path string, logger *zap.Logger, onChange func(*domain.TaxConfig)) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	logger.Info("watching bracket table", zap.String("path", path))
	parser := NewInputParser()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			// a rename onto path arrives as Create
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := parser.LoadFromFile(path)
			if err != nil {
				logger.Error("bracket table reload failed, keeping previous table",
					zap.String("path", path),
					zap.Error(err),
				)
				continue
			}

			logger.Info("bracket table reloaded",
				zap.String("path", path),
				zap.String("fiscal_year", cfg.FiscalYear),
			)
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("bracket table watcher error", zap.Error(err))
		}
	}
}
