package rendering

import (
	"context"
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/portfolio-hydrator/internal/loader"
)

// Hydrator loads profile data for a page and renders it. The page itself
// provides the inline fallback.
type Hydrator struct {
	Primary  loader.Source
	Renderer *Renderer
	Logger   *slog.Logger
}

// NewHydrator creates a hydrator reading from primary first.
func NewHydrator(primary loader.Source, logger *slog.Logger) *Hydrator {
	return &Hydrator{Primary: primary, Renderer: NewRenderer(), Logger: logger}
}

func (h *Hydrator) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

// Hydrate loads the profile and renders every section into doc. If loading
// fails nothing is rendered; doc gets one error notice and the returned
// error is a *LoadError.
func (h *Hydrator) Hydrate(ctx context.Context, doc *goquery.Document) (*loader.Result, error) {
	l := loader.New(h.Primary, &loader.EmbeddedSource{Page: doc}, h.logger())

	result, err := l.Load(ctx)
	if err != nil {
		h.logger().Error("could not load portfolio data", "error", err)
		ShowLoadError(doc)
		return nil, &LoadError{Cause: err}
	}

	ClearLoadError(doc)
	h.Renderer.RenderAll(doc, result.Profile)

	h.logger().Debug("hydrated portfolio page",
		"source", result.Source,
		"fell_back", result.FellBack,
		"projects", len(result.Profile.Projects),
		"experience", len(result.Profile.Experience))
	return result, nil
}

// HydrateHTML parses a page, hydrates it and returns the serialized HTML.
// On a load failure the HTML carrying the notice is returned with the error.
func (h *Hydrator) HydrateHTML(ctx context.Context, page io.Reader) (string, *loader.Result, error) {
	doc, err := ParsePage(page)
	if err != nil {
		return "", nil, err
	}

	result, hydrateErr := h.Hydrate(ctx, doc)

	out, err := SerializePage(doc)
	if err != nil {
		return "", nil, err
	}
	return out, result, hydrateErr
}
