package page

import (
	"fmt"
	"strings"

	"github.com/breadmotion/pankun/builder/utils"
)

// PortfolioData carries one work item through the portfolio assembler.
// Portfolio pages are single-locale and always publish one directory below
// the site root.
type PortfolioData struct {
	ID          string
	Title       string
	Description string
	Date        string
	Category    string
	Role        string
	Tech        string
	Tags        []string
	BodyHTML    string
	BaseURL     string
	Author      string
}

// PortfolioHTML assembles the complete HTML document for one work item.
func PortfolioHTML(d PortfolioData) string {
	safeTitle := utils.EscapeHTML(d.Title)
	safeDesc := utils.EscapeHTML(d.Description)
	// Work pages show the front-matter date verbatim; only blog posts get
	// the YYYY/MM/DD display form.
	safeDate := utils.EscapeHTML(d.Date)
	safeCategory := utils.EscapeHTML(d.Category)
	safeRole := utils.EscapeHTML(d.Role)
	safeTech := utils.EscapeHTML(d.Tech)

	var metaParts []string
	if safeDate != "" {
		metaParts = append(metaParts, safeDate)
	}
	if safeCategory != "" {
		metaParts = append(metaParts, safeCategory)
	}
	if safeRole != "" {
		metaParts = append(metaParts, "Role: "+safeRole)
	}
	metaText := strings.Join(metaParts, " / ")

	descHTML := ""
	if safeDesc != "" {
		descHTML = fmt.Sprintf(`<p class="work-detail__description">%s</p>`, safeDesc)
	}
	techHTML := ""
	if safeTech != "" {
		techHTML = fmt.Sprintf(`<p class="work-detail__meta">Tech: %s</p>`, safeTech)
	}

	ogImage := d.BaseURL + "/assets/img/ogp.png"

	var b strings.Builder
	fmt.Fprintf(&b, `<!doctype html>
<html lang="ja">
  <head prefix="og: https://ogp.me/ns#">
    <meta charset="UTF-8" />
    <title>%s | %s Portfolio</title>
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <meta name="description" content="%s" />
    <meta name="view-transition" content="same">

    <meta property="og:title" content="%s | %s Portfolio" />
    <meta property="og:description" content="%s" />
    <meta property="og:type" content="article" />
    <meta property="og:image" content="%s" />
    <meta property="og:site_name" content="%s" />

    <meta name="twitter:card" content="summary_large_image" />
    <meta name="twitter:title" content="%s" />
    <meta name="twitter:description" content="%s" />
    <meta name="twitter:image" content="%s" />

    <link rel="shortcut icon" href="../favicon.ico">
    <link rel="icon" type="image/png" href="../assets/img/favicon-32.png" sizes="32x32">
    <link rel="icon" type="image/png" href="../assets/img/favicon-192.png" sizes="192x192">
    <link rel="apple-touch-icon" href="../assets/img/favicon-192.png">

    <link rel="stylesheet" href="../assets/css/base.css" />
    <link rel="stylesheet" href="../assets/css/layout.css" />
    <link rel="stylesheet" href="../assets/css/portfolio.css" />
    <link rel="stylesheet" href="../assets/css/transition.css" />
  </head>
`,
		safeTitle, d.Author,
		safeDesc,
		safeTitle, d.Author,
		safeDesc,
		ogImage,
		d.Author,
		safeTitle,
		safeDesc,
		ogImage,
	)

	fmt.Fprintf(&b, `  <body data-page="portfolio">
    <div class="page-shell">
      <main class="main-container">
        <article class="work-detail reveal-on-scroll">
          <header class="work-detail__header">
            <p class="work-detail__meta">%s</p>
            <h1 class="work-detail__title">%s</h1>
            %s
            %s
            %s
          </header>

          <section class="work-detail__body markdown-body">
%s
          </section>
        </article>
      </main>
    </div>

    <script src="../assets/js/layout.js" defer></script>
    <script src="../assets/js/ui.js"></script>

    <canvas id="menuAnimationCanvas"></canvas>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/p5.js/1.4.0/p5.min.js"></script>
    <script src="../assets/js/particles.js"></script>
    <script src="../assets/js/transition.js"></script>
  </body>
</html>`,
		metaText,
		safeTitle,
		descHTML,
		techHTML,
		tagsHTML(d.Tags, "../portfolio.html", "work-detail__tags"),
		d.BodyHTML,
	)

	return b.String()
}
