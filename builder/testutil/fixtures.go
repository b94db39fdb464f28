// Package testutil provides testing utilities and fixtures
package testutil

import (
	"strings"
	"time"
)

// BlogMarkdown builds a blog content file with front matter and a body
// carrying level 1-3 headings.
func BlogMarkdown(title string, date time.Time, tags []string) string {
	return `---
title: "` + title + `"
date: ` + date.Format("2006-01-02") + `
category: tech
description: "About ` + title + `"
tags: [` + quoteJoin(tags) + `]
---

# ` + title + `

Intro paragraph for ` + title + `.

## Background

Some context.

### Details

A finer point.

## Conclusion

Wrapping up.
`
}

// BlogMarkdownWithThumbnail is BlogMarkdown plus a thumbnail reference.
func BlogMarkdownWithThumbnail(title string, date time.Time, thumbnail string) string {
	return `---
title: "` + title + `"
date: ` + date.Format("2006-01-02") + `
thumbnail: "` + thumbnail + `"
---

# ` + title + `

## Only Section

Body text.
`
}

// PortfolioMarkdown builds a portfolio content file with the work-specific
// fields.
func PortfolioMarkdown(title string, date time.Time) string {
	return `---
title: "` + title + `"
date: ` + date.Format("2006-01-02") + `
category: web
role: "Design / Development"
tech: "Go, JavaScript"
tags: [web]
links:
  - label: "Site"
    url: "https://example.com/work"
---

# ` + title + `

What this work is about.
`
}

func quoteJoin(items []string) string {
	if len(items) == 0 {
		return ""
	}
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = `"` + it + `"`
	}
	return strings.Join(quoted, ", ")
}
