package rendering

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jonathan/portfolio-hydrator/internal/types"
)

// Region ids the renderers bind to.
const (
	IDName       = "name"
	IDNameFooter = "name-footer"
	IDTagline    = "tagline"
	IDYear       = "year"
	IDAvatar     = "avatar"
	IDLinks      = "links"
	IDAboutText  = "about-text"
	IDSkillsList = "skills-list"
	IDProjects   = "projects-grid"
	IDExperience = "experience-timeline"
	IDContact    = "contact-list"
)

// region returns the element with the given id, or an empty selection.
func region(doc *goquery.Document, id string) *goquery.Selection {
	return doc.Find("#" + id).First()
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func class(name string) html.Attribute {
	return attr("class", name)
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// textElement builds an element holding a single text child.
func textElement(tag, text string, attrs ...html.Attribute) *html.Node {
	n := element(tag, attrs...)
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}

// anchor opens in a new browsing context with no opener and no referrer.
func anchor(link types.Link) *html.Node {
	return textElement("a", link.Label,
		attr("href", link.Href),
		attr("target", "_blank"),
		attr("rel", "noopener noreferrer"),
	)
}

func appendChildren(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		parent.AppendChild(c)
	}
	return parent
}
