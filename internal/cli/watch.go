package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor save bursts into one regeneration.
const debounceDelay = 250 * time.Millisecond

// watch regenerates accessor files whenever a watched package's Go
// sources change. It blocks until the context is canceled.
func (r *runner) watch(ctx context.Context, patterns []string) error {
	results, err := r.scan(patterns)
	if err != nil {
		return err
	}

	if err := r.generate(results); err != nil {
		log.Printf("generate: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// fsnotify watches directories, not patterns.
	for _, pr := range results {
		if pr.Pkg.Dir == "" {
			continue
		}

		if err := watcher.Add(pr.Pkg.Dir); err != nil {
			return fmt.Errorf("watch %s: %w", pr.Pkg.Dir, err)
		}

		log.Printf("watching %s", pr.Pkg.Dir)
	}

	var timer *time.Timer

	regen := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Printf("watch error: %v", err)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !r.triggers(event) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}

			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case regen <- struct{}{}:
				default:
				}
			})

		case <-regen:
			results, err := r.scan(patterns)
			if err != nil {
				log.Printf("scan: %v", err)
				continue
			}

			if err := r.generate(results); err != nil {
				log.Printf("generate: %v", err)
				continue
			}

			log.Printf("regenerated")
		}
	}
}

// triggers reports whether a filesystem event should cause
// regeneration. Writes to our own generated files are ignored to avoid
// a regeneration loop.
func (r *runner) triggers(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
		return false
	}

	name := event.Name
	if !strings.HasSuffix(name, ".go") {
		return false
	}

	return !strings.HasSuffix(name, r.cfg.Suffix+".go")
}
