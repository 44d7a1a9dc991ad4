package rendering

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/portfolio-hydrator/internal/types"
)

// RenderHeader fills the name, tagline, footer name, year, avatar and header links.
func (r *Renderer) RenderHeader(doc *goquery.Document, p *types.Profile) {
	region(doc, IDName).SetText(p.Name)
	region(doc, IDNameFooter).SetText(p.Name)
	region(doc, IDTagline).SetText(p.Tagline)
	region(doc, IDYear).SetText(strconv.Itoa(r.now().Year()))

	avatar := region(doc, IDAvatar)
	if p.Avatar != "" {
		avatar.SetAttr("src", p.Avatar)
		avatar.RemoveAttr("hidden")
	} else {
		avatar.SetAttr("hidden", "")
	}

	links := region(doc, IDLinks)
	if links.Length() == 0 {
		return
	}
	links.Empty()
	for _, l := range p.Links {
		links.AppendNodes(anchor(l))
	}
}
