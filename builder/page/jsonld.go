package page

import "encoding/json"

// Structured data embedded as application/ld+json. These are serialized with
// encoding/json, so string escaping is JSON's concern rather than the HTML
// escaper's.

type ldWebPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type ldPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ldImage struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

type ldOrganization struct {
	Type string  `json:"@type"`
	Name string  `json:"name"`
	Logo ldImage `json:"logo"`
}

type blogPostingLD struct {
	Context          string         `json:"@context"`
	Type             string         `json:"@type"`
	MainEntityOfPage ldWebPage      `json:"mainEntityOfPage"`
	Headline         string         `json:"headline"`
	Description      string         `json:"description"`
	Image            []string       `json:"image"`
	DatePublished    string         `json:"datePublished"`
	DateModified     string         `json:"dateModified"`
	Author           ldPerson       `json:"author"`
	Publisher        ldOrganization `json:"publisher"`
}

// blogJSONLD serializes the article description for search engines.
func blogJSONLD(title, description, date, canonicalURL, imageURL, author, baseURL string) string {
	ld := blogPostingLD{
		Context:          "https://schema.org",
		Type:             "BlogPosting",
		MainEntityOfPage: ldWebPage{Type: "WebPage", ID: canonicalURL},
		Headline:         title,
		Description:      description,
		Image:            []string{imageURL},
		DatePublished:    date,
		DateModified:     date,
		Author:           ldPerson{Type: "Person", Name: author, URL: baseURL},
		Publisher: ldOrganization{
			Type: "Organization",
			Name: author,
			Logo: ldImage{Type: "ImageObject", URL: baseURL + "/assets/img/favicon-192.png"},
		},
	}
	data, err := json.MarshalIndent(ld, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
