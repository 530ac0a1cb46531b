package ai

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the table at path whenever the file is written or replaced
// and hands each freshly built Registry to onChange. Registries already in
// use are never modified. Reload failures go to onError (which may be nil)
// and the previous table stays in effect. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(*Registry), onError func(error)) error {
	if onError == nil {
		onError = func(error) {}
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("ai: watch %s: %w", path, err)
	}
	defer w.Close()

	// Watch the directory: editors and config management tools usually
	// replace the file rather than write it in place.
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("ai: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("ai: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			r, err := LoadFile(abs)
			if err != nil {
				onError(err)
				continue
			}
			onChange(r)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}
