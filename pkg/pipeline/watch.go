package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/slidedeck/pkg/errors"
)

// DefaultDebounce is how long a deck file must be quiet before a rebuild.
const DefaultDebounce = 300 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration
	// OnBuild is called after every rebuild, on the Watch goroutine.
	OnBuild func(*Result, error)
}

// Watch rebuilds whenever opts.DeckPath changes, until ctx is done. It does
// not build up front. The parent directory is watched rather than the file
// so editors that save by rename keep triggering rebuilds.
func (r *Runner) Watch(ctx context.Context, opts Options, wopts WatchOptions) error {
	if opts.DeckPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "watch needs a deck file")
	}
	target, err := filepath.Abs(opts.DeckPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", opts.DeckPath)
	}
	debounce := wopts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create watcher")
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "watch %s", filepath.Dir(target))
	}

	tick := time.NewTicker(debounce / 3)
	defer tick.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			r.Logger.Debug("deck changed", "path", opts.DeckPath, "op", ev.Op.String())
			pending = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Logger.Warn("watch error", "err", err)

		case <-tick.C:
			if pending.IsZero() || time.Since(pending) < debounce {
				continue
			}
			pending = time.Time{}
			res, err := r.Execute(ctx, opts)
			if err != nil {
				r.Logger.Error("rebuild failed", "err", err)
			}
			if wopts.OnBuild != nil {
				wopts.OnBuild(res, err)
			}
		}
	}
}
