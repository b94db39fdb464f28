// Package server runs a local preview: it serves the generated site and
// rebuilds it whenever a content file changes.
package server

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/breadmotion/pankun/builder/config"
	"github.com/breadmotion/pankun/builder/run"
)

// Run starts the preview server and blocks until the process is killed.
func Run(args []string) error {
	// Parse serve flags from args; builder flags pass through untouched.
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	host := fs.String("host", "localhost", "The host/IP to bind to")
	port := fs.String("port", "8631", "The port to listen on")

	// Flags consumed by the builder, declared so they don't error here
	_ = fs.String("baseurl", "", "Base URL (handled by builder)")
	_ = fs.String("content", "", "Content directory (handled by builder)")
	_ = fs.String("out", "", "Output directory (handled by builder)")
	_ = fs.Bool("compress", false, "Enable compression (handled by builder)")
	_ = fs.Parse(args)

	cfg := config.Load(args)

	if err := run.Run(args); err != nil {
		return fmt.Errorf("initial build: %w", err)
	}

	if err := watchAndRebuild(cfg, args); err != nil {
		// Degraded preview without auto-rebuild is still useful
		log.Printf("File watching disabled: %v", err)
	}

	addr := fmt.Sprintf("%s:%s", *host, *port)
	fmt.Printf("🚀 Serving %s at http://%s\n", cfg.OutputDir, addr)
	return http.ListenAndServe(addr, http.FileServer(http.Dir(cfg.OutputDir)))
}

// watchAndRebuild triggers a full rebuild when any content file changes.
// Events are debounced so editor save bursts cause one rebuild, not many.
func watchAndRebuild(cfg *config.Config, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dirs := []string{
		cfg.ContentDir,
		cfg.BlogContentDir,
		cfg.PortfolioContentDir,
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			log.Printf("Failed to watch %s: %v", dir, err)
		}
	}

	go func() {
		var debounceTimer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Chmod != 0 {
					continue
				}
				if debounceTimer != nil {
					debounceTimer.Reset(300 * time.Millisecond)
				} else {
					debounceTimer = time.AfterFunc(300*time.Millisecond, func() {
						fmt.Println("🔄 Content changed, rebuilding...")
						if err := run.Run(args); err != nil {
							log.Printf("Rebuild failed: %v", err)
						}
					})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Watcher error: %v", err)
			}
		}
	}()
	return nil
}
