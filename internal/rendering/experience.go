package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jonathan/portfolio-hydrator/internal/types"
)

// RenderExperience writes one timeline entry per experience item.
func RenderExperience(doc *goquery.Document, p *types.Profile) {
	timeline := region(doc, IDExperience)
	if timeline.Length() == 0 {
		return
	}
	timeline.Empty()
	for _, e := range p.Experience {
		timeline.AppendNodes(experienceItem(e))
	}
}

func experienceItem(e types.Experience) *html.Node {
	return appendChildren(element("li"),
		textElement("strong", strings.TrimSpace(e.Role+" · "+e.Company)),
		textElement("div", strings.TrimSpace(e.Start+" — "+e.End), class("where")),
		textElement("p", e.Summary),
	)
}
