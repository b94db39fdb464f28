package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark/parser"
)

func TestImageDepthTransformer(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		input  string
		want   string
	}{
		{
			name:   "base locale keeps single level",
			prefix: "..",
			input:  "![shot](../assets/img/shot.png)",
			want:   `src="../assets/img/shot.png"`,
		},
		{
			name:   "alternate locale goes one deeper",
			prefix: "../..",
			input:  "![shot](../assets/img/shot.png)",
			want:   `src="../../assets/img/shot.png"`,
		},
		{
			name:   "remote reference untouched",
			prefix: "../..",
			input:  "![ext](https://example.com/a.png)",
			want:   `src="https://example.com/a.png"`,
		},
		{
			name:   "same-directory reference untouched",
			prefix: "../..",
			input:  "![loc](img/a.png)",
			want:   `src="img/a.png"`,
		},
	}

	md := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			context := parser.NewContext()
			SetAssetPrefix(context, tt.prefix)
			var buf bytes.Buffer
			if err := md.Convert([]byte(tt.input), &buf, parser.WithContext(context)); err != nil {
				t.Fatalf("convert: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestImagesRenderSelfClosed(t *testing.T) {
	md := New()
	context := parser.NewContext()
	var buf bytes.Buffer
	if err := md.Convert([]byte(`![a "quoted" alt](../a.png)`), &buf, parser.WithContext(context)); err != nil {
		t.Fatalf("convert: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "/>") {
		t.Errorf("image should be self-closed: %q", out)
	}
	if !strings.Contains(out, "&quot;quoted&quot;") {
		t.Errorf("alt text should be escaped: %q", out)
	}
}
