package speedtrack

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
	cblog "github.com/msto63/chbrowse/foundation/core/log"
)

// DefaultDebounce coalesces the burst of events editors emit on save
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions configures Watch
type WatchOptions struct {
	Input    string
	Output   string
	Limit    float64
	Debounce time.Duration
	Logger   *cblog.Logger
}

// Watch regenerates the offenders file whenever the input file is written or
// recreated. onResult receives the outcome of every regeneration. Watch
// blocks until ctx is done and returns nil in that case.
func Watch(ctx context.Context, opts WatchOptions, onResult func(*Report, error)) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = cblog.GetDefault()
	}
	logger := opts.Logger.WithField("component", "speedtrack-watch")

	input, err := filepath.Abs(opts.Input)
	if err != nil {
		return cberror.Wrap(err, "resolving input path").
			WithCode(cberror.CodeInvalidArgument).
			WithOperation("speedtrack.Watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return cberror.Wrap(err, "creating file watcher").
			WithCode(cberror.CodeInternal).
			WithOperation("speedtrack.Watch")
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place, which drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return cberror.Wrap(err, "watching input directory").
			WithCode(cberror.CodeInternal).
			WithOperation("speedtrack.Watch").
			WithDetail("path", filepath.Dir(input))
	}

	logger.Info("watching records file", cblog.Fields{"input": input, "output": opts.Output})

	timer := time.NewTimer(opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevant(event, input) {
				continue
			}
			logger.Debug("records file changed", cblog.Fields{"op": event.Op.String()})
			timer.Reset(opts.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WarnWithErr("file watcher error", err)

		case <-timer.C:
			report, err := CreateOffendersFile(ctx, opts.Input, opts.Output, opts.Limit)
			if err != nil {
				logger.LogError(err)
			}
			if onResult != nil {
				onResult(report, err)
			}
		}
	}
}

func isRelevant(event fsnotify.Event, input string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != input {
		return false
	}
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
