// Package run drives a full site build: enumerate content, render every
// item, write pages, publish the index JSON files, and clean the thumbnail
// store.
package run

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"

	"github.com/breadmotion/pankun/builder/assets"
	"github.com/breadmotion/pankun/builder/config"
	mdparser "github.com/breadmotion/pankun/builder/parser"
	"github.com/breadmotion/pankun/builder/thumbs"
	"github.com/breadmotion/pankun/builder/utils"
)

// Builder maintains the state for one build run. Content items are processed
// strictly sequentially; the only state crossing item boundaries is the
// thumbnail tracker and the index record accumulators.
type Builder struct {
	cfg    *config.Config
	md     goldmark.Markdown
	fs     afero.Fs
	logger *slog.Logger
	thumbs *thumbs.Tracker
}

// NewBuilder initializes a builder over fs. Commands use an OS filesystem,
// tests a memory one.
func NewBuilder(cfg *config.Config, fs afero.Fs, logger *slog.Logger) *Builder {
	utils.InitMinifier()
	return &Builder{
		cfg:    cfg,
		md:     mdparser.New(),
		fs:     fs,
		logger: logger,
		thumbs: thumbs.NewTracker(fs, cfg.ThumbDir, cfg.ThumbWebBase, logger, cfg.Compress),
	}
}

// Build executes a single full build pass. Any returned error means the run
// must abort with a non-zero exit; recoverable conditions (missing base
// locale, failed thumbnail fetch) are logged inside and never surface here.
func (b *Builder) Build() error {
	start := time.Now()
	fmt.Printf("🔨 Building site from %s\n", b.cfg.ContentDir)

	dirs := []string{
		b.cfg.BlogOutputDir,
		filepath.Join(b.cfg.BlogOutputDir, "en"),
		b.cfg.PortfolioOutputDir,
		b.cfg.DataDir,
		b.cfg.ThumbDir,
		b.cfg.AssetsJSDir,
	}
	for _, dir := range dirs {
		if err := b.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	if err := assets.Write(b.fs, b.cfg.AssetsJSDir, b.cfg.Compress); err != nil {
		return fmt.Errorf("write browser scripts: %w", err)
	}

	blogJA, blogEN, err := b.buildBlog()
	if err != nil {
		return err
	}
	works, err := b.buildPortfolio()
	if err != nil {
		return err
	}

	sortBlogRecords(blogJA)
	sortBlogRecords(blogEN)
	sortPortfolioRecords(works)

	if err := b.writeJSON(filepath.Join(b.cfg.DataDir, "blogList.json"), blogJA); err != nil {
		return err
	}
	if err := b.writeJSON(filepath.Join(b.cfg.DataDir, "blogList_en.json"), blogEN); err != nil {
		return err
	}
	if err := b.writeJSON(filepath.Join(b.cfg.DataDir, "portfolioList.json"), works); err != nil {
		return err
	}

	if err := b.thumbs.Cleanup(); err != nil {
		return err
	}

	fmt.Printf("✅ Build complete in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// writePage stores one rendered HTML document, minified when -compress is on.
func (b *Builder) writePage(path, html string) error {
	data := []byte(html)
	if b.cfg.Compress {
		data = utils.MinifyHTML(data)
	}
	if err := afero.WriteFile(b.fs, path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// adScript loads the optional ad partial inlined into blog heads. A missing
// partial is the normal case, not an error.
func (b *Builder) adScript() string {
	data, err := afero.ReadFile(b.fs, b.cfg.AdScriptPath)
	if err != nil {
		if !os.IsNotExist(err) {
			b.logger.Warn("failed to read ad partial", "path", b.cfg.AdScriptPath, "error", err)
		}
		return ""
	}
	return string(data)
}

// Run is the build entrypoint used by the CLI.
func Run(args []string) error {
	cfg := config.Load(args)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewBuilder(cfg, afero.NewOsFs(), logger).Build()
}
