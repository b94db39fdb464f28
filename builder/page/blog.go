package page

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/breadmotion/pankun/builder/utils"
)

// BlogData is everything the blog assembler needs for one locale variant of
// one post. It is assembled by the orchestrator and consumed exactly once.
type BlogData struct {
	ID          string
	Title       string
	Description string
	Date        string
	Category    string
	Tags        []string
	BodyHTML    string
	TOCHTML     string
	Thumbnail   string
	AdScript    string
	Locale      Locale
	Alternate   bool // alternate-locale output, published one directory deeper
	BaseURL     string
	Author      string
}

// assetPrefix is the relative path from the published page to the site root.
func (d BlogData) assetPrefix() string {
	if d.Alternate {
		return "../.."
	}
	return ".."
}

// canonicalURL returns the absolute URL of this variant's published page.
func (d BlogData) canonicalURL() string {
	if d.Alternate {
		return fmt.Sprintf("%s/blog/en/%s.html", d.BaseURL, d.ID)
	}
	return fmt.Sprintf("%s/blog/%s.html", d.BaseURL, d.ID)
}

// ogImageURL resolves the social preview image: a site-relative thumbnail is
// made absolute, a remote one passes through, and no thumbnail falls back to
// the site-wide default.
func ogImageURL(thumbnail, baseURL string) string {
	if thumbnail == "" {
		return baseURL + "/assets/img/ogp.png"
	}
	if strings.HasPrefix(thumbnail, "http") {
		return thumbnail
	}
	clean := strings.TrimLeft(strings.TrimPrefix(thumbnail, "../"), "./")
	for strings.HasPrefix(clean, "../") {
		clean = clean[len("../"):]
	}
	return baseURL + "/" + strings.TrimPrefix(clean, "/")
}

// tagsHTML links each tag to the tag-filtered listing page. Returns "" when
// there are no tags so the paragraph is omitted entirely.
func tagsHTML(tags []string, listHref, class string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, fmt.Sprintf(`<a class="tag" href="%s?tag=%s">%s</a>`,
			listHref, url.QueryEscape(t), utils.EscapeHTML(t)))
	}
	return fmt.Sprintf(`<p class="%s">%s</p>`, class, strings.Join(parts, " "))
}

// BlogHTML assembles the complete HTML document for one blog post variant.
// All metadata text is escaped here; the rendered body is trusted markup and
// inserted verbatim into the designated content region.
func BlogHTML(d BlogData) string {
	prefix := d.assetPrefix()
	safeTitle := utils.EscapeHTML(d.Title)
	safeDesc := utils.EscapeHTML(d.Description)
	safeDate := utils.EscapeHTML(utils.FormatDate(d.Date))
	safeCategory := utils.EscapeHTML(d.Category)

	canonical := d.canonicalURL()
	jaURL := fmt.Sprintf("%s/blog/%s.html", d.BaseURL, d.ID)
	enURL := fmt.Sprintf("%s/blog/en/%s.html", d.BaseURL, d.ID)
	imageURL := ogImageURL(d.Thumbnail, d.BaseURL)
	share := ShareButtonsHTML(d.Title, canonical, d.Locale)
	jsonLD := blogJSONLD(d.Title, d.Description, d.Date, canonical, imageURL, d.Author, d.BaseURL)

	meta := safeDate
	if safeCategory != "" {
		meta += " / " + safeCategory
	}

	descHTML := ""
	if safeDesc != "" {
		descHTML = fmt.Sprintf(`<p class="post-detail__description">%s</p>`, safeDesc)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<!doctype html>
<html lang="%s">
  <head>
    <meta charset="UTF-8" />
    <title>%s%s</title>
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <meta name="description" content="%s" />
    <meta name="view-transition" content="same">

    <link rel="canonical" href="%s" />
    <link rel="alternate" hreflang="ja" href="%s" />
    <link rel="alternate" hreflang="en" href="%s" />
    <link rel="alternate" hreflang="x-default" href="%s" />
    %s
    <script type="application/ld+json">%s</script>
    <meta property="og:title" content="%s%s" />
    <meta property="og:description" content="%s" />
    <meta property="og:type" content="article" />
    <meta property="og:url" content="%s" />
    <meta property="og:image" content="%s" />
    <meta property="og:site_name" content="%s" />
`,
		d.Locale.Lang,
		safeTitle, d.Locale.SiteTitleSuffix,
		safeDesc,
		canonical,
		jaURL, enURL, enURL,
		d.AdScript,
		jsonLD,
		safeTitle, d.Locale.SiteTitleSuffix,
		safeDesc,
		canonical,
		imageURL,
		d.Author,
	)
	fmt.Fprintf(&b, `    <link rel="shortcut icon" href="%s/../favicon.ico">
    <link rel="icon" type="image/png" href="%s/assets/img/favicon-32.png" sizes="32x32">
    <link rel="icon" type="image/png" href="%s/assets/img/favicon-192.png" sizes="192x192">
    <link rel="apple-touch-icon" href="%s/assets/img/favicon-192.png">
    <link rel="stylesheet" href="%s/assets/css/base.css" />
    <link rel="stylesheet" href="%s/assets/css/layout.css" />
    <link rel="stylesheet" href="%s/assets/css/blog.css" />
    <link rel="stylesheet" href="%s/assets/css/transition.css" />
  </head>
`, prefix, prefix, prefix, prefix, prefix, prefix, prefix, prefix)

	fmt.Fprintf(&b, `  <body data-page="blog" view-transition-name="page">
    <div class="page-shell">
      <main class="main-container">
        <div class="post-layout">
          <div class="post-content">
            <article class="post-detail">
              <nav aria-label="breadcrumb" class="breadcrumb">
                <ol class="breadcrumb__list">
                  <li class="breadcrumb__item"><a href="%s/index.html">%s</a></li>
                  <li class="breadcrumb__item"><a href="%s/blog.html">%s</a></li>
                  <li class="breadcrumb__item" aria-current="page">%s</li>
                </ol>
              </nav>
              <header class="post-detail__header">
                <p class="post-detail__meta">%s</p>
                <h1 class="post-detail__title">%s</h1>
                %s
                %s
                %s
              </header>
              <section class="post-detail__body markdown-body">%s</section>
              %s
              <div class="post-detail__nav post-detail__nav--bottom">
                <a href="%s/blog.html" class="btn btn--back">%s</a>
              </div>
            </article>
          </div>
          <aside class="post-sidebar">
            <div class="toc-sticky-container">
              <nav class="toc">
                <h2 class="toc__title">%s</h2>
                %s
              </nav>
            </div>
          </aside>
        </div>
        <section class="section section--related">
          <h2 class="section__title">%s</h2>
          <div id="relatedList" class="recommend-grid"></div>
        </section>
        <section class="section section--recommend">
          <h2 class="section__title">%s</h2>
          <div id="recommendList" class="recommend-grid"></div>
        </section>
      </main>
      <div class="toc-overlay"></div>
      <button type="button" class="toc-toggle" aria-label="%s">
        <svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="currentColor" width="20" height="20" aria-hidden="true"><path d="M4 6h16v2H4zm0 5h16v2H4zm0 5h16v2H4z"></path></svg>
        <span>%s</span>
      </button>
    </div>
    <script src="%s/assets/js/layout.js" defer></script>
    <script src="%s/assets/js/ui.js"></script>
    <canvas id="menuAnimationCanvas"></canvas>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/p5.js/1.4.0/p5.min.js"></script>
    <script src="%s/assets/js/particles.js"></script>
    <script src="%s/assets/js/toc.js" defer></script>
    <script src="%s/assets/js/recommend.js" defer></script>
    <script src="%s/assets/js/transition.js"></script>
  </body>
</html>`,
		prefix, d.Locale.BreadcrumbHome,
		prefix, d.Locale.BreadcrumbBlog,
		safeTitle,
		meta,
		safeTitle,
		descHTML,
		tagsHTML(d.Tags, prefix+"/blog.html", "post-detail__tags"),
		share,
		d.BodyHTML,
		share,
		prefix, d.Locale.BackToBlog,
		d.Locale.TOCTitle,
		d.TOCHTML,
		d.Locale.RelatedTitle,
		d.Locale.RecommendedTitle,
		d.Locale.TOCButtonLabel,
		d.Locale.TOCButtonText,
		prefix, prefix, prefix, prefix, prefix, prefix,
	)

	return b.String()
}
