// Package config resolves build settings from defaults, the optional
// pankun.yaml file, and command-line flags, in that order of precedence.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the build pipeline needs to know about the site
// and the local directory layout.
type Config struct {
	BaseURL        string `yaml:"baseURL"`
	SiteName       string `yaml:"siteName"`
	Author         string `yaml:"author"`
	ContentDir     string `yaml:"contentDir"`
	OutputDir      string `yaml:"outputDir"`
	Compress       bool   `yaml:"compress"`

	// Derived from ContentDir / OutputDir, never read from YAML.
	BlogContentDir      string `yaml:"-"`
	PortfolioContentDir string `yaml:"-"`
	BlogOutputDir       string `yaml:"-"`
	PortfolioOutputDir  string `yaml:"-"`
	DataDir             string `yaml:"-"`
	ThumbDir            string `yaml:"-"`
	ThumbWebBase        string `yaml:"-"`
	AssetsJSDir         string `yaml:"-"`
	AdScriptPath        string `yaml:"-"`
}

func defaults() *Config {
	return &Config{
		BaseURL:    "https://breadmotion.github.io/WebSite",
		SiteName:   "breadmotion",
		Author:     "breadmotion",
		ContentDir: "content",
		OutputDir:  ".",
	}
}

// Load builds the configuration. Missing or unparsable pankun.yaml falls
// back to defaults; flags in args win over both.
func Load(args []string) *Config {
	cfg := defaults()

	if data, err := os.ReadFile("pankun.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			// Parse error, keep defaults
			cfg = defaults()
		}
	}

	fs := flag.NewFlagSet("pankun", flag.ExitOnError)
	baseURL := fs.String("baseurl", cfg.BaseURL, "Base URL of the published site")
	content := fs.String("content", cfg.ContentDir, "Directory holding markdown sources")
	out := fs.String("out", cfg.OutputDir, "Directory the site is written into")
	compress := fs.Bool("compress", cfg.Compress, "Minify generated output and re-encode fetched thumbnails as webp")

	// Flags owned by the serve command, declared so shared args parse cleanly
	_ = fs.String("host", "", "Host (handled by serve)")
	_ = fs.String("port", "", "Port (handled by serve)")
	_ = fs.Parse(args)

	cfg.BaseURL = strings.TrimSuffix(*baseURL, "/")
	cfg.ContentDir = *content
	cfg.OutputDir = *out
	cfg.Compress = *compress

	cfg.derive()
	return cfg
}

func (c *Config) derive() {
	c.BlogContentDir = filepath.Join(c.ContentDir, "blog")
	c.PortfolioContentDir = filepath.Join(c.ContentDir, "portfolio")
	c.BlogOutputDir = filepath.Join(c.OutputDir, "blog")
	c.PortfolioOutputDir = filepath.Join(c.OutputDir, "portfolio")
	c.DataDir = filepath.Join(c.OutputDir, "assets", "data")
	c.ThumbDir = filepath.Join(c.OutputDir, "assets", "img", "thumbnails")
	c.ThumbWebBase = "assets/img/thumbnails"
	c.AssetsJSDir = filepath.Join(c.OutputDir, "assets", "js")
	c.AdScriptPath = filepath.Join(c.ContentDir, "partials", "ad-script.html")
}
