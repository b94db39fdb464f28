package config

import (
	"os"
	"path/filepath"
	"testing"
)

// changeToTempDir changes to a temp directory and returns a cleanup function
func changeToTempDir(t *testing.T) func() {
	t.Helper()
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	return func() {
		if err := os.Chdir(originalDir); err != nil {
			t.Errorf("Failed to restore original directory: %v", err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cleanup := changeToTempDir(t)
	defer cleanup()

	cfg := Load([]string{})

	if cfg.BaseURL != "https://breadmotion.github.io/WebSite" {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.ContentDir != "content" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "content")
	}
	if cfg.Compress {
		t.Error("Compress should default to false")
	}
	if cfg.BlogContentDir != filepath.Join("content", "blog") {
		t.Errorf("BlogContentDir = %q", cfg.BlogContentDir)
	}
	if cfg.ThumbDir != filepath.Join("assets", "img", "thumbnails") {
		t.Errorf("ThumbDir = %q", cfg.ThumbDir)
	}
	if cfg.ThumbWebBase != "assets/img/thumbnails" {
		t.Errorf("ThumbWebBase = %q", cfg.ThumbWebBase)
	}
}

func TestLoad_FromYAML(t *testing.T) {
	cleanup := changeToTempDir(t)
	defer cleanup()

	yamlContent := `
baseURL: "https://test.example.com/"
siteName: "Test Site"
author: "Tester"
contentDir: "src"
compress: true
`
	if err := os.WriteFile("pankun.yaml", []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to create test pankun.yaml: %v", err)
	}

	cfg := Load([]string{})

	if cfg.BaseURL != "https://test.example.com" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.BaseURL)
	}
	if cfg.SiteName != "Test Site" {
		t.Errorf("SiteName = %q, want %q", cfg.SiteName, "Test Site")
	}
	if cfg.Author != "Tester" {
		t.Errorf("Author = %q, want %q", cfg.Author, "Tester")
	}
	if !cfg.Compress {
		t.Error("Compress should be true")
	}
	if cfg.BlogContentDir != filepath.Join("src", "blog") {
		t.Errorf("BlogContentDir = %q, want derived from contentDir", cfg.BlogContentDir)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	cleanup := changeToTempDir(t)
	defer cleanup()

	if err := os.WriteFile("pankun.yaml", []byte("baseURL: [broken"), 0644); err != nil {
		t.Fatalf("Failed to create test pankun.yaml: %v", err)
	}

	cfg := Load([]string{})

	if cfg.BaseURL != "https://breadmotion.github.io/WebSite" {
		t.Errorf("BaseURL = %q, want default on parse error", cfg.BaseURL)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	cleanup := changeToTempDir(t)
	defer cleanup()

	yamlContent := `baseURL: "https://yaml.example.com"`
	if err := os.WriteFile("pankun.yaml", []byte(yamlContent), 0644); err != nil {
		t.Fatalf("Failed to create test pankun.yaml: %v", err)
	}

	args := []string{"-baseurl", "https://override.example.com/", "-compress", "-out", "public"}
	cfg := Load(args)

	if cfg.BaseURL != "https://override.example.com" {
		t.Errorf("BaseURL = %q, want CLI override", cfg.BaseURL)
	}
	if !cfg.Compress {
		t.Error("Compress should be true")
	}
	if cfg.BlogOutputDir != filepath.Join("public", "blog") {
		t.Errorf("BlogOutputDir = %q, want derived from -out", cfg.BlogOutputDir)
	}
	if cfg.DataDir != filepath.Join("public", "assets", "data") {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
}
