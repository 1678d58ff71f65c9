// file: internal/i18n/watch.go
// version: 1.0.0
// guid: 3e4f5a6b-7c8d-9e0f-1a2b-3c4d5e6f7a8b

package i18n

import (
	"context"
	"log"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the active catalog whenever its override file changes.
// It blocks until ctx is done and is a no-op when no override directory
// is configured.
func (t *Translator) Watch(ctx context.Context) error {
	if t.overrideDir == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(t.overrideDir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(event.Name)
			if !strings.EqualFold(name, t.Language()+".json") {
				continue
			}
			if err := t.Reload(); err != nil {
				log.Printf("[DEBUG] i18n: reload after %s failed: %v", name, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[DEBUG] i18n: watcher error: %v", err)
		}
	}
}
