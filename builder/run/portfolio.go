package run

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/breadmotion/pankun/builder/models"
	"github.com/breadmotion/pankun/builder/page"
	"github.com/breadmotion/pankun/builder/utils"
	"github.com/spf13/afero"
)

// buildPortfolio renders every portfolio item and returns the index records.
// Portfolio content is single-locale and carries role/tech/links fields the
// blog does not.
func (b *Builder) buildPortfolio() ([]models.PortfolioRecord, error) {
	infos, err := afero.ReadDir(b.fs, b.cfg.PortfolioContentDir)
	if err != nil {
		return nil, fmt.Errorf("read portfolio content dir: %w", err)
	}

	var ids []string
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".md") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(info.Name(), ".md"))
	}
	sort.Strings(ids)

	var works []models.PortfolioRecord
	for _, id := range ids {
		sourcePath := filepath.Join(b.cfg.PortfolioContentDir, id+".md")
		raw, err := afero.ReadFile(b.fs, sourcePath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", sourcePath, err)
		}

		ctx := parser.NewContext()
		var body bytes.Buffer
		if err := b.md.Convert(raw, &body, parser.WithContext(ctx)); err != nil {
			return nil, fmt.Errorf("render portfolio %s: %w", id, err)
		}
		fm := meta.Get(ctx)

		title := utils.GetString(fm, "title")
		if title == "" {
			title = id
		}
		tags := utils.GetTags(fm, "tags")
		thumbnail := b.thumbs.Resolve(utils.GetString(fm, "thumbnail"), id)

		d := page.PortfolioData{
			ID:          id,
			Title:       title,
			Description: utils.GetString(fm, "description"),
			Date:        utils.GetString(fm, "date"),
			Category:    utils.GetString(fm, "category"),
			Role:        utils.GetString(fm, "role"),
			Tech:        utils.GetString(fm, "tech"),
			Tags:        tags,
			BodyHTML:    body.String(),
			BaseURL:     b.cfg.BaseURL,
			Author:      b.cfg.Author,
		}

		outPath := filepath.Join(b.cfg.PortfolioOutputDir, id+".html")
		if err := b.writePage(outPath, page.PortfolioHTML(d)); err != nil {
			return nil, err
		}
		fmt.Printf("   generated: %s\n", outPath)

		works = append(works, models.PortfolioRecord{
			ID:          id,
			Title:       title,
			Date:        d.Date,
			Category:    d.Category,
			Role:        d.Role,
			Description: d.Description,
			Tech:        d.Tech,
			Tags:        tags,
			Thumbnail:   thumbnail,
			Links:       utils.GetLinks(fm, "links"),
			ContentPath: "portfolio/" + id + ".html",
		})
	}
	return works, nil
}
