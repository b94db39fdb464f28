// Configures the markdown parser with the hooks the site build relies on:
// heading collection for the table of contents and image path rewriting for
// output-directory depth.
package parser

import (
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// New creates the goldmark instance shared by the blog and portfolio builds.
// Per-document state (heading accumulator, asset prefix) lives in the
// parser.Context supplied to each Convert call, so one instance is safe to
// reuse across documents.
func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
			highlighting.NewHighlighting(
				highlighting.WithStyle("nord"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(&imageDepthTransformer{}, 100),
				util.Prioritized(&headingTransformer{}, 200),
			),
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(html.WithUnsafe(), html.WithXHTML()),
	)
}
