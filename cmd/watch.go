package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/glyphlab/text2png"
	"github.com/k1LoW/errors"
)

const debounceInterval = 500 * time.Millisecond

// watchAndRun re-runs the generator whenever the text file changes. Each
// run is an independent batch; a failed batch is logged and the watch
// continues so the next save can retry.
func watchAndRun(ctx context.Context, g *text2png.Generator, file string, logger *slog.Logger) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	// Watch the parent directory. Editors often replace the file on save,
	// which would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	logger.Info("watching for changes", slog.String("file", abs))

	debounce := time.NewTimer(debounceInterval)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			debounce.Reset(debounceInterval)
			pending = true
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return werr
		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			if _, err := g.Run(ctx, file); err != nil {
				logger.Error("failed to generate images", slog.String("error", err.Error()))
			}
		}
	}
}
