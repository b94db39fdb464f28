package utils

import (
	"reflect"
	"testing"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "hello", "hello"},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"quote", `say "hi"`, "say &quot;hi&quot;"},
		{"mixed", `<a href="x">&`, "&lt;a href=&quot;x&quot;&gt;&amp;"},
		{"single quote untouched", "it's", "it's"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeHTML(tt.in); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetTags(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]interface{}
		want []string
	}{
		{
			name: "yaml list",
			meta: map[string]interface{}{"tags": []interface{}{"go", "web"}},
			want: []string{"go", "web"},
		},
		{
			name: "comma string",
			meta: map[string]interface{}{"tags": "go, web , "},
			want: []string{"go", "web"},
		},
		{
			name: "missing",
			meta: map[string]interface{}{},
			want: []string{},
		},
		{
			name: "empty entries dropped",
			meta: map[string]interface{}{"tags": []interface{}{"go", "  "}},
			want: []string{"go"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetTags(tt.meta, "tags")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetTags = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetLinks(t *testing.T) {
	meta := map[string]interface{}{
		"links": []interface{}{
			map[interface{}]interface{}{"label": "GitHub", "url": "https://github.com/x"},
			map[string]interface{}{"label": "Demo", "url": "https://example.com"},
			map[interface{}]interface{}{"label": "no url"},
		},
	}
	links := GetLinks(meta, "links")
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Label != "GitHub" || links[0].URL != "https://github.com/x" {
		t.Errorf("unexpected first link: %+v", links[0])
	}
	if links[1].Label != "Demo" {
		t.Errorf("unexpected second link: %+v", links[1])
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := ParseDate("2024-06-01"); !ok {
		t.Error("ISO date should parse")
	}
	if _, ok := ParseDate("2024/06/01"); !ok {
		t.Error("slash date should parse")
	}
	if _, ok := ParseDate("not a date"); ok {
		t.Error("garbage should not parse")
	}
	if _, ok := ParseDate(""); ok {
		t.Error("empty string should not parse")
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-06-01", "2024/06/01"},
		{"", ""},
		{"soon", "soon"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetString(t *testing.T) {
	meta := map[string]interface{}{"title": "Hello", "count": 3, "nil": nil}
	if got := GetString(meta, "title"); got != "Hello" {
		t.Errorf("GetString(title) = %q", got)
	}
	if got := GetString(meta, "count"); got != "3" {
		t.Errorf("GetString(count) = %q", got)
	}
	if got := GetString(meta, "missing"); got != "" {
		t.Errorf("GetString(missing) = %q", got)
	}
	if got := GetString(meta, "nil"); got != "" {
		t.Errorf("GetString(nil) = %q", got)
	}
}
