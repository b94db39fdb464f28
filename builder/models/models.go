// defines the data structures shared by the build pipeline and generators
package models

// TOCEntry is one heading recorded while rendering a document. The slice of
// entries collected for a document feeds the table-of-contents assembler and
// is discarded once the page is written.
type TOCEntry struct {
	ID    string
	Text  string
	Level int
}

// BlogRecord is one element of blogList.json / blogList_en.json, consumed by
// the client-side listing pages.
type BlogRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	ContentPath string   `json:"contentPath"`
	Recommended bool     `json:"recommended"`
}

// PortfolioRecord is one element of portfolioList.json.
type PortfolioRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Role        string   `json:"role"`
	Description string   `json:"description"`
	Tech        string   `json:"tech"`
	Tags        []string `json:"tags"`
	Thumbnail   string   `json:"thumbnail"`
	Links       []Link   `json:"links"`
	ContentPath string   `json:"contentPath"`
}

// Link is an external reference attached to a portfolio item.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}
