package page

import (
	"fmt"
	"strings"

	"github.com/breadmotion/pankun/builder/models"
	"github.com/breadmotion/pankun/builder/utils"
)

// TOCHTML renders the sidebar table of contents. Only level 2 and 3 headings
// are listed; deeper ones render in the body but would clutter the
// navigation. Returns "" when no heading qualifies, and callers emit no list
// at all in that case.
func TOCHTML(entries []models.TOCEntry) string {
	var b strings.Builder
	count := 0
	for _, h := range entries {
		if h.Level != 2 && h.Level != 3 {
			continue
		}
		if count == 0 {
			b.WriteString(`<ul class="toc-list">`)
		}
		fmt.Fprintf(&b, `<li class="toc-item toc-item--level-%d"><a href="#%s">%s</a></li>`,
			h.Level, h.ID, utils.EscapeHTML(h.Text))
		count++
	}
	if count == 0 {
		return ""
	}
	b.WriteString("</ul>")
	return b.String()
}
