package rendering

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jonathan/portfolio-hydrator/internal/types"
)

// RenderSkills renders flat skills into the existing list, or swaps the list
// for a grouped container under the same id.
func RenderSkills(doc *goquery.Document, p *types.Profile) {
	current := region(doc, IDSkillsList)
	if current.Length() == 0 {
		return
	}

	if !p.Skills.IsGrouped() {
		current.Empty()
		for _, s := range p.Skills.Flat() {
			current.AppendNodes(textElement("li", s))
		}
		return
	}

	wrapper := element("div", attr("id", IDSkillsList), class("skills-groups"))
	for _, g := range p.Skills.Groups() {
		wrapper.AppendChild(skillGroup(g))
	}
	current.ReplaceWithNodes(wrapper)
}

func skillGroup(g types.SkillGroup) *html.Node {
	list := element("ul", class("chips"))
	for _, s := range g.Items {
		list.AppendChild(textElement("li", s))
	}
	return appendChildren(element("section", class("skills-group")),
		textElement("h3", g.Title, class("skills-title")),
		list,
	)
}
