// Package new scaffolds content files with front matter prefilled.
package new

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// slugRegex matches characters that are unsafe for filenames/URLs
var slugRegex = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// sanitizeSlug converts a title to a safe filename slug
func sanitizeSlug(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugRegex.ReplaceAllString(slug, "")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")
	if len(slug) > 100 {
		slug = slug[:100]
	}
	return slug
}

func blogTemplate(title string) string {
	return fmt.Sprintf(`---
title: "%s"
date: "%s"
category: ""
description: ""
tags: []
recommended: false
---

## はじめに

Start writing here...
`, title, time.Now().Format("2006-01-02"))
}

func portfolioTemplate(title string) string {
	return fmt.Sprintf(`---
title: "%s"
date: "%s"
category: ""
description: ""
role: ""
tech: ""
tags: []
links: []
---

## 概要

Describe the work here...
`, title, time.Now().Format("2006-01-02"))
}

// Run creates a new content file under content/blog or content/portfolio.
func Run(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	portfolio := fs.Bool("portfolio", false, "Create a portfolio item instead of a blog post")
	english := fs.Bool("en", false, "Create the English variant of a blog post")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Println("Usage: pankun new [-portfolio] [-en] \"My New Post Title\"")
		return
	}

	title := fs.Arg(0)
	slug := sanitizeSlug(title)
	if slug == "" {
		fmt.Println("❌ Error: Title produces empty slug after sanitization")
		return
	}

	var filename, content string
	switch {
	case *portfolio:
		filename = filepath.Join("content", "portfolio", slug+".md")
		content = portfolioTemplate(title)
	case *english:
		filename = filepath.Join("content", "blog", slug+".en.md")
		content = blogTemplate(title)
	default:
		filename = filepath.Join("content", "blog", slug+".md")
		content = blogTemplate(title)
	}

	if _, err := os.Stat(filename); err == nil {
		fmt.Println("❌ Error: File already exists:", filename)
		return
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Println("Error creating content directory:", err)
		return
	}
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		fmt.Println("Error creating file:", err)
		return
	}

	fmt.Printf("✅ Created: %s\n", filename)
}
