package rendering

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/portfolio-hydrator/internal/types"
)

// RenderContact writes one list item per contact link.
func RenderContact(doc *goquery.Document, p *types.Profile) {
	list := region(doc, IDContact)
	if list.Length() == 0 {
		return
	}
	list.Empty()
	for _, c := range p.Contact {
		list.AppendNodes(appendChildren(element("li"), anchor(c)))
	}
}
