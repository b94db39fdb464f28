package page

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	twitterIcon  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="currentColor" width="20" height="20"><path d="M18.244 2.25h3.308l-7.227 8.26 8.502 11.24H16.17l-5.214-6.817L4.99 21.75H1.68l7.73-8.835L1.254 2.25H8.08l4.713 6.231zm-1.161 17.52h1.833L7.084 4.126H5.117z"></path></svg>`
	facebookIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="currentColor" width="20" height="20"><path d="M14 13.5h2.5l1-4H14v-2c0-1.03 0-2 2-2h1.5V2.14c-.326-.043-1.557-.14-2.857-.14C11.928 2 10 3.657 10 6.7v2.8H7v4h3V22h4z"></path></svg>`
	lineIcon     = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="currentColor" width="20" height="20"><path d="M12 2C6.48 2 2 5.82 2 10.5c0 4.18 3.53 7.68 8.3 8.38.32.07.77.22.88.5.1.26.07.66.03.92l-.14.86c-.04.26-.2 1.01.88.55 1.09-.46 5.87-3.46 8.01-5.92C21.5 14.13 22 12.39 22 10.5 22 5.82 17.52 2 12 2zM8.39 13.12H6.16a.53.53 0 0 1-.53-.53V8.46a.53.53 0 0 1 1.06 0v3.6h1.7a.53.53 0 0 1 0 1.06zm1.84-.53a.53.53 0 0 1-1.06 0V8.46a.53.53 0 0 1 1.06 0zm5.07 0a.53.53 0 0 1-.36.5.54.54 0 0 1-.17.03.53.53 0 0 1-.43-.21l-2.12-2.89v2.57a.53.53 0 0 1-1.06 0V8.46a.53.53 0 0 1 .36-.5.54.54 0 0 1 .17-.03c.17 0 .32.08.43.21l2.12 2.89V8.46a.53.53 0 0 1 1.06 0zm3.41-2.6a.53.53 0 0 1 0 1.06h-1.7v1.01h1.7a.53.53 0 0 1 0 1.06h-2.23a.53.53 0 0 1-.53-.53V8.46c0-.29.24-.53.53-.53h2.23a.53.53 0 0 1 0 1.06h-1.7v1z"></path></svg>`
)

type shareService struct {
	name      string
	url       string
	icon      string
	className string
}

// ShareButtonsHTML builds the share block linking the page to the social
// services the site supports. Title and page URL are query-encoded into each
// service's intent URL.
func ShareButtonsHTML(title, pageURL string, loc Locale) string {
	encodedTitle := url.QueryEscape(title)
	encodedURL := url.QueryEscape(pageURL)

	services := []shareService{
		{
			name:      "Twitter",
			url:       fmt.Sprintf("https://twitter.com/intent/tweet?url=%s&text=%s", encodedURL, encodedTitle),
			icon:      twitterIcon,
			className: "twitter",
		},
		{
			name:      "Facebook",
			url:       fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s", encodedURL),
			icon:      facebookIcon,
			className: "facebook",
		},
		{
			name:      "LINE",
			url:       fmt.Sprintf("https://social-plugins.line.me/lineit/share?url=%s", encodedURL),
			icon:      lineIcon,
			className: "line",
		},
	}

	var b strings.Builder
	b.WriteString(`<div class="share-buttons">`)
	fmt.Fprintf(&b, `<p class="share-buttons__title">%s</p>`, loc.ShareTitle)
	b.WriteString(`<ul class="share-buttons__list">`)
	for _, s := range services {
		fmt.Fprintf(&b,
			`<li class="share-buttons__item"><a href="%s" class="share-buttons__link share-buttons__link--%s" target="_blank" rel="noopener noreferrer" aria-label="%s%s">%s</a></li>`,
			s.url, s.className, s.name, loc.ShareLabelSuffix, s.icon)
	}
	b.WriteString(`</ul></div>`)
	return b.String()
}
