package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jonathan/portfolio-hydrator/internal/types"
)

// embeddedID is the id of the inline payload element.
const embeddedID = "portfolio-data"

// Embed writes data into the page's inline payload element, creating it at
// the end of body when absent. data must be a valid profile document; it is
// stored compacted with <, > and & as \u escapes so no markup in it can end
// or re-open the script element.
func Embed(page *goquery.Document, data []byte) error {
	if _, err := types.ParseProfile(data); err != nil {
		return fmt.Errorf("invalid profile JSON: %w", err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return fmt.Errorf("invalid profile JSON: %w", err)
	}
	var payload bytes.Buffer
	json.HTMLEscape(&payload, compact.Bytes())

	script := page.Find(EmbeddedSelector).First()
	if script.Length() == 0 {
		body := page.Find("body").First()
		if body.Length() == 0 {
			return fmt.Errorf("page has no body element")
		}
		body.AppendNodes(&html.Node{
			Type:     html.ElementNode,
			Data:     "script",
			DataAtom: atom.Script,
			Attr: []html.Attribute{
				{Key: "type", Val: "application/json"},
				{Key: "id", Val: embeddedID},
			},
		})
		script = page.Find(EmbeddedSelector).First()
	}

	// Script content is raw text; SetText would entity-escape the payload.
	script.Empty()
	script.AppendNodes(&html.Node{Type: html.TextNode, Data: payload.String()})
	return nil
}
