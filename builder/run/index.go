package run

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/afero"

	"github.com/breadmotion/pankun/builder/models"
	"github.com/breadmotion/pankun/builder/utils"
)

// laterDate reports whether a should come before b in a date-descending
// index. Items with unparsable dates sort after every parsable one and keep
// their insertion order among themselves.
func laterDate(a, b string) bool {
	ta, aok := utils.ParseDate(a)
	tb, bok := utils.ParseDate(b)
	switch {
	case aok && bok:
		return ta.After(tb)
	case aok:
		return true
	default:
		return false
	}
}

func sortBlogRecords(records []models.BlogRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return laterDate(records[i].Date, records[j].Date)
	})
}

func sortPortfolioRecords(records []models.PortfolioRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return laterDate(records[i].Date, records[j].Date)
	})
}

// writeJSON replaces the index file at path with the pretty-printed records.
// A nil slice still publishes an empty array, never null.
func (b *Builder) writeJSON(path string, records interface{}) error {
	switch v := records.(type) {
	case []models.BlogRecord:
		if v == nil {
			records = []models.BlogRecord{}
		}
	case []models.PortfolioRecord:
		if v == nil {
			records = []models.PortfolioRecord{}
		}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := afero.WriteFile(b.fs, path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("   updated: %s\n", path)
	return nil
}
