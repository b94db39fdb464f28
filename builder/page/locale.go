package page

import "golang.org/x/text/language"

// Locale carries the fixed UI strings baked into a generated page. The body
// content comes from the markdown source; these only cover chrome like
// breadcrumbs, the table-of-contents drawer, and share labels.
type Locale struct {
	Tag              language.Tag
	Lang             string
	SiteTitleSuffix  string
	BreadcrumbHome   string
	BreadcrumbBlog   string
	BackToBlog       string
	TOCTitle         string
	TOCButtonLabel   string
	TOCButtonText    string
	RelatedTitle     string
	RecommendedTitle string
	ShareTitle       string
	ShareLabelSuffix string
}

// Japanese is the base locale; every blog item must have a Japanese source
// file.
var Japanese = Locale{
	Tag:              language.Japanese,
	Lang:             "ja",
	SiteTitleSuffix:  " | PanKUN",
	BreadcrumbHome:   "ホーム",
	BreadcrumbBlog:   "ブログ",
	BackToBlog:       "ブログ一覧へ戻る",
	TOCTitle:         "目次",
	TOCButtonLabel:   "目次を開く",
	TOCButtonText:    "目次",
	RelatedTitle:     "関連記事",
	RecommendedTitle: "おすすめ記事",
	ShareTitle:       "この記事をシェア",
	ShareLabelSuffix: "でシェア",
}

// English is the alternate locale. Items without an English source reuse the
// Japanese body under these UI strings.
var English = Locale{
	Tag:              language.English,
	Lang:             "en",
	SiteTitleSuffix:  " | PanKUN",
	BreadcrumbHome:   "Home",
	BreadcrumbBlog:   "Blog",
	BackToBlog:       "Back to blog",
	TOCTitle:         "Table of Contents",
	TOCButtonLabel:   "Open table of contents",
	TOCButtonText:    "Contents",
	RelatedTitle:     "Related Posts",
	RecommendedTitle: "Recommended Posts",
	ShareTitle:       "Share this post",
	ShareLabelSuffix: " share",
}

var matcher = language.NewMatcher([]language.Tag{language.Japanese, language.English})

// For maps an arbitrary language tag onto one of the two supported locales.
// Anything that isn't recognizably English falls back to Japanese.
func For(tag language.Tag) Locale {
	_, index, _ := matcher.Match(tag)
	if index == 1 {
		return English
	}
	return Japanese
}
