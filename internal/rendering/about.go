package rendering

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/portfolio-hydrator/internal/types"
)

// RenderAbout writes one paragraph per non-empty about entry.
func RenderAbout(doc *goquery.Document, p *types.Profile) {
	container := region(doc, IDAboutText)
	if container.Length() == 0 {
		return
	}
	container.Empty()
	for _, para := range p.About.Paragraphs() {
		container.AppendNodes(textElement("p", para))
	}
}
