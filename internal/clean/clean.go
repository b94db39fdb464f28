// Package clean removes everything the build pipeline generates, leaving
// content sources and hand-written site files untouched.
package clean

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/breadmotion/pankun/builder/config"
)

// Run deletes generated pages, index JSON files, the thumbnail store, and
// the shipped browser scripts.
func Run(args []string) {
	start := time.Now()
	cfg := config.Load(args)

	targets := []string{
		cfg.BlogOutputDir,
		cfg.PortfolioOutputDir,
		cfg.ThumbDir,
		filepath.Join(cfg.DataDir, "blogList.json"),
		filepath.Join(cfg.DataDir, "blogList_en.json"),
		filepath.Join(cfg.DataDir, "portfolioList.json"),
		filepath.Join(cfg.AssetsJSDir, "toc.js"),
		filepath.Join(cfg.AssetsJSDir, "transition.js"),
	}

	for _, target := range targets {
		if _, err := os.Stat(target); os.IsNotExist(err) {
			continue
		}
		fmt.Printf("🧹 Removing %s\n", target)
		if err := os.RemoveAll(target); err != nil {
			fmt.Printf("❌ Failed to remove '%s': %v\n", target, err)
		}
	}

	fmt.Printf("🧹 Clean finished in %v\n", time.Since(start).Round(time.Millisecond))
}
