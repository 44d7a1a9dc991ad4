package rendering

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/portfolio-hydrator/internal/types"
)

// Renderer binds a profile to the regions of a page.
type Renderer struct {
	// Now supplies the footer year. Defaults to time.Now.
	Now func() time.Time
}

// NewRenderer creates a renderer using the wall clock.
func NewRenderer() *Renderer {
	return &Renderer{Now: time.Now}
}

func (r *Renderer) now() time.Time {
	if r == nil || r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// RenderAll runs every section renderer once: header, about, skills,
// projects, experience, contact. Regions are disjoint so each one is
// cleared and rebuilt independently.
func (r *Renderer) RenderAll(doc *goquery.Document, p *types.Profile) {
	if p == nil {
		p = &types.Profile{}
	}
	r.RenderHeader(doc, p)
	RenderAbout(doc, p)
	RenderSkills(doc, p)
	RenderProjects(doc, p)
	RenderExperience(doc, p)
	RenderContact(doc, p)
}
