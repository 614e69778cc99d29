package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/JPEWdev/yeps/internal/errors"
	"github.com/JPEWdev/yeps/internal/logfields"
)

// debounceWindow coalesces bursts of file events into one rebuild.
const debounceWindow = 500 * time.Millisecond

// Watch rebuilds the indices whenever a proposal source changes, until the
// context is canceled. Synthesized documents (YEP 0, the numerical index,
// topic pages) are written back into the source directory and must not
// retrigger a build.
func (p *Pipeline) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, errors.SeverityFatal, "create watcher")
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(p.cfg.Source.Directory); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "watch "+p.cfg.Source.Directory)
	}

	// Initial build; in watch mode a failure is reported, not fatal.
	if err := p.Run(); err != nil {
		slog.Error("Build failed", logfields.Error(err))
	}

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSourceEvent(event) {
				continue
			}
			slog.Debug("Source changed", logfields.File(filepath.Base(event.Name)))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case <-rebuild:
			if err := p.Run(); err != nil {
				slog.Error("Build failed", logfields.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// isSourceEvent filters out events for documents the pipeline itself emits.
func isSourceEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, "yep-0000") || name == "numerical.rst" {
		return false
	}
	if ok, _ := filepath.Match("yep-????.rst", name); !ok {
		return false
	}
	return true
}
