// Helper functions for front-matter access, escaping, and date handling
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/breadmotion/pankun/builder/models"
)

func GetString(m map[string]interface{}, k string) string {
	if v, ok := m[k]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func GetBool(m map[string]interface{}, k string) bool {
	if v, ok := m[k]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// GetTags normalizes the tags field: a YAML list is used as-is, a plain
// string is split on commas. Entries are trimmed and empties dropped.
// The result is never nil so the index JSON always carries an array.
func GetTags(m map[string]interface{}, k string) []string {
	res := []string{}
	v, ok := m[k]
	if !ok || v == nil {
		return res
	}
	switch t := v.(type) {
	case []interface{}:
		for _, e := range t {
			if s := strings.TrimSpace(fmt.Sprintf("%v", e)); s != "" {
				res = append(res, s)
			}
		}
	default:
		for _, s := range strings.Split(fmt.Sprintf("%v", t), ",") {
			if s = strings.TrimSpace(s); s != "" {
				res = append(res, s)
			}
		}
	}
	return res
}

// GetLinks reads a list of {label, url} mappings from front matter.
// goldmark-meta decodes YAML maps with interface{} keys, so both map shapes
// are handled. Malformed entries are skipped.
func GetLinks(m map[string]interface{}, k string) []models.Link {
	res := []models.Link{}
	v, ok := m[k]
	if !ok {
		return res
	}
	list, ok := v.([]interface{})
	if !ok {
		return res
	}
	for _, e := range list {
		var label, url string
		switch entry := e.(type) {
		case map[string]interface{}:
			label = GetString(entry, "label")
			url = GetString(entry, "url")
		case map[interface{}]interface{}:
			for key, val := range entry {
				switch fmt.Sprintf("%v", key) {
				case "label":
					label = fmt.Sprintf("%v", val)
				case "url":
					url = fmt.Sprintf("%v", val)
				}
			}
		}
		if url != "" {
			res = append(res, models.Link{Label: label, URL: url})
		}
	}
	return res
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML escapes the four characters that matter in the text and
// attribute contexts the page assemblers emit. Single quotes stay literal;
// generated attributes are always double-quoted.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// dateFormats lists the accepted front-matter date layouts, tried in order.
var dateFormats = []string{"2006-01-02", time.RFC3339, "2006/01/02"}

// ParseDate parses a front-matter date string. The second return reports
// whether the string was a recognizable date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a date as YYYY/MM/DD for display. Unparsable values
// come back verbatim so odd front matter still shows something.
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("2006/01/02")
}
