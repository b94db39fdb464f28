package run

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/language"

	"github.com/breadmotion/pankun/builder/models"
	mdparser "github.com/breadmotion/pankun/builder/parser"
	"github.com/breadmotion/pankun/builder/page"
	"github.com/breadmotion/pankun/builder/utils"
	"github.com/spf13/afero"
)

// buildBlog renders every blog post in both locales and returns one index
// record slice per locale. Posts share an id between their base file
// (<id>.md, Japanese) and optional alternate file (<id>.en.md); an id without
// a base file is skipped with a warning. When the alternate file is absent
// the base body is rendered again with English UI strings.
func (b *Builder) buildBlog() (blogJA, blogEN []models.BlogRecord, err error) {
	ids, err := b.collectBlogIDs()
	if err != nil {
		return nil, nil, err
	}
	adScript := b.adScript()

	for _, id := range ids {
		jaPath := filepath.Join(b.cfg.BlogContentDir, id+".md")
		enPath := filepath.Join(b.cfg.BlogContentDir, id+".en.md")

		if ok, _ := afero.Exists(b.fs, jaPath); !ok {
			b.logger.Warn("base locale content not found, skipping", "id", id)
			continue
		}
		hasEN, _ := afero.Exists(b.fs, enPath)

		for _, tag := range []language.Tag{language.Japanese, language.English} {
			loc := page.For(tag)
			sourcePath := jaPath
			alternate := loc.Tag != language.Japanese
			if alternate && hasEN {
				sourcePath = enPath
			}

			raw, err := afero.ReadFile(b.fs, sourcePath)
			if err != nil {
				return nil, nil, fmt.Errorf("read %s: %w", sourcePath, err)
			}

			ctx := parser.NewContext()
			if alternate {
				mdparser.SetAssetPrefix(ctx, "../..")
			}
			var body bytes.Buffer
			if err := b.md.Convert(raw, &body, parser.WithContext(ctx)); err != nil {
				return nil, nil, fmt.Errorf("render blog %s (%s): %w", id, loc.Lang, err)
			}
			fm := meta.Get(ctx)

			title := utils.GetString(fm, "title")
			if title == "" {
				title = id
			}
			tags := utils.GetTags(fm, "tags")
			thumbnail := b.thumbs.Resolve(utils.GetString(fm, "thumbnail"), id)

			d := page.BlogData{
				ID:          id,
				Title:       title,
				Description: utils.GetString(fm, "description"),
				Date:        utils.GetString(fm, "date"),
				Category:    utils.GetString(fm, "category"),
				Tags:        tags,
				BodyHTML:    body.String(),
				TOCHTML:     page.TOCHTML(mdparser.GetTOC(ctx)),
				Thumbnail:   thumbnail,
				AdScript:    adScript,
				Locale:      loc,
				Alternate:   alternate,
				BaseURL:     b.cfg.BaseURL,
				Author:      b.cfg.Author,
			}

			outPath := filepath.Join(b.cfg.BlogOutputDir, id+".html")
			contentPath := "blog/" + id + ".html"
			if alternate {
				outPath = filepath.Join(b.cfg.BlogOutputDir, "en", id+".html")
				contentPath = "blog/en/" + id + ".html"
			}
			if err := b.writePage(outPath, page.BlogHTML(d)); err != nil {
				return nil, nil, err
			}
			fmt.Printf("   generated (%s): %s\n", loc.Lang, outPath)

			record := models.BlogRecord{
				ID:          id,
				Title:       title,
				Date:        d.Date,
				Category:    d.Category,
				Description: d.Description,
				Tags:        tags,
				Thumbnail:   thumbnail,
				ContentPath: contentPath,
				Recommended: utils.GetBool(fm, "recommended"),
			}
			if alternate {
				blogEN = append(blogEN, record)
			} else {
				blogJA = append(blogJA, record)
			}
		}
	}
	return blogJA, blogEN, nil
}

// collectBlogIDs lists distinct post ids in a stable order. Sorted iteration
// keeps the run deterministic; the published order is decided later by date.
func (b *Builder) collectBlogIDs() ([]string, error) {
	infos, err := afero.ReadDir(b.fs, b.cfg.BlogContentDir)
	if err != nil {
		return nil, fmt.Errorf("read blog content dir: %w", err)
	}
	seen := make(map[string]struct{})
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		if strings.HasSuffix(name, ".en.md") {
			seen[strings.TrimSuffix(name, ".en.md")] = struct{}{}
		} else {
			seen[strings.TrimSuffix(name, ".md")] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
