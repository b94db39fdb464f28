package page

import (
	"strings"
	"testing"

	"github.com/breadmotion/pankun/builder/models"
)

func TestTOCHTML(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.TOCEntry
		items   int
	}{
		{
			name: "filters to levels 2 and 3",
			entries: []models.TOCEntry{
				{ID: "a", Text: "A", Level: 2},
				{ID: "b", Text: "B", Level: 3},
				{ID: "c", Text: "C", Level: 4},
				{ID: "d", Text: "D", Level: 5},
			},
			items: 2,
		},
		{
			name:    "empty string for no entries",
			entries: nil,
			items:   0,
		},
		{
			name: "empty string when nothing qualifies",
			entries: []models.TOCEntry{
				{ID: "deep", Text: "Deep", Level: 4},
			},
			items: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TOCHTML(tt.entries)
			if tt.items == 0 {
				if got != "" {
					t.Fatalf("expected empty string, got %q", got)
				}
				return
			}
			if count := strings.Count(got, "<li"); count != tt.items {
				t.Errorf("expected %d list items, got %d in %q", tt.items, count, got)
			}
			if !strings.HasPrefix(got, `<ul class="toc-list">`) || !strings.HasSuffix(got, "</ul>") {
				t.Errorf("missing list wrapper: %q", got)
			}
		})
	}
}

func TestTOCHTMLOrderAndAnchors(t *testing.T) {
	entries := []models.TOCEntry{
		{ID: "first", Text: "First", Level: 2},
		{ID: "second", Text: "Second", Level: 3},
	}
	got := TOCHTML(entries)

	if strings.Index(got, "#first") > strings.Index(got, "#second") {
		t.Error("entries out of document order")
	}
	if !strings.Contains(got, `class="toc-item toc-item--level-2"`) {
		t.Error("level 2 class missing")
	}
	if !strings.Contains(got, `class="toc-item toc-item--level-3"`) {
		t.Error("level 3 class missing")
	}
	if !strings.Contains(got, `href="#first"`) {
		t.Error("anchor missing")
	}
}

func TestTOCHTMLEscapesText(t *testing.T) {
	got := TOCHTML([]models.TOCEntry{{ID: "x", Text: `Tips & "Tricks" <fast>`, Level: 2}})
	if !strings.Contains(got, "Tips &amp; &quot;Tricks&quot; &lt;fast&gt;") {
		t.Errorf("heading text not escaped: %q", got)
	}
}
