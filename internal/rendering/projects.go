package rendering

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jonathan/portfolio-hydrator/internal/types"
)

// untitledProject is shown for projects without a name.
const untitledProject = "Untitled Project"

// RenderProjects writes one card per project.
func RenderProjects(doc *goquery.Document, p *types.Profile) {
	grid := region(doc, IDProjects)
	if grid.Length() == 0 {
		return
	}
	grid.Empty()
	for _, project := range p.Projects {
		grid.AppendNodes(projectCard(project))
	}
}

func projectCard(project types.Project) *html.Node {
	name := project.Name
	if name == "" {
		name = untitledProject
	}

	tags := element("div", class("tags"))
	for _, t := range project.Tags {
		tags.AppendChild(textElement("span", t))
	}

	links := element("div", class("links"))
	for _, l := range project.Links {
		links.AppendChild(anchor(l))
	}

	return appendChildren(element("div", class("project-card")),
		textElement("h3", name),
		textElement("p", project.Description),
		tags,
		links,
	)
}
