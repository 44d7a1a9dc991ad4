package rendering

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// LoadErrorMessage is the text of the notice shown when no data could be loaded.
const LoadErrorMessage = "Could not load portfolio data. Ensure data.json exists or inline #portfolio-data is set."

// loadErrorClass marks the notice so it can be found and replaced.
const loadErrorClass = "load-error"

// ParsePage parses an HTML page.
func ParsePage(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &PageError{Message: "failed to parse HTML", Cause: err}
	}
	return doc, nil
}

// ParsePageString parses an HTML page held in a string.
func ParsePageString(s string) (*goquery.Document, error) {
	return ParsePage(strings.NewReader(s))
}

// SerializePage renders the full document, doctype included.
func SerializePage(doc *goquery.Document) (string, error) {
	var sb strings.Builder
	for _, n := range doc.Nodes {
		if err := html.Render(&sb, n); err != nil {
			return "", &PageError{Message: "failed to render HTML", Cause: err}
		}
	}
	return sb.String(), nil
}

// ShowLoadError places a single notice at the top of the main region,
// replacing any earlier one. Pages without <main> get it in <body>.
func ShowLoadError(doc *goquery.Document) {
	ClearLoadError(doc)

	host := doc.Find("main").First()
	if host.Length() == 0 {
		host = doc.Find("body").First()
	}
	host.PrependNodes(textElement("div", LoadErrorMessage, class("card "+loadErrorClass)))
}

// ClearLoadError removes a previously shown notice.
func ClearLoadError(doc *goquery.Document) {
	doc.Find("." + loadErrorClass).Remove()
}
