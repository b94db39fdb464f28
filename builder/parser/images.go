package parser

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var prefixKey = parser.NewContextKey()

// DefaultAssetPrefix reaches the site root from a page one directory below
// it, which is where base-locale pages are published. Alternate-locale pages
// live one level deeper and set "../..".
const DefaultAssetPrefix = ".."

// SetAssetPrefix records the relative path from the page being rendered back
// to the site root. It must be set on the per-document context before
// Convert.
func SetAssetPrefix(pc parser.Context, prefix string) {
	pc.Set(prefixKey, prefix)
}

func assetPrefix(pc parser.Context) string {
	if v := pc.Get(prefixKey); v != nil {
		return v.(string)
	}
	return DefaultAssetPrefix
}

// imageDepthTransformer rewrites relative image references for output depth.
// Content files sit next to the assets tree, but published pages are one or
// two directories deeper, so a leading "../" becomes the page's asset
// prefix. Absolute and remote references pass through untouched.
type imageDepthTransformer struct{}

func (t *imageDepthTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	prefix := assetPrefix(pc)

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if img, ok := n.(*ast.Image); ok {
			dest := string(img.Destination)
			if strings.HasPrefix(dest, "../") {
				img.Destination = []byte(prefix + "/" + dest[len("../"):])
			}
		}
		return ast.WalkContinue, nil
	})
}
