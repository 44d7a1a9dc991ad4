package rendering

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-hydrator/internal/loader"
)

const inlinePayload = `<script type="application/json" id="portfolio-data">
{"name": "Inline Ada", "projects": [{"name": "One"}, {"name": "Two"}], "skills": {"Core": ["Go"], "Other": ["SQL"]}}
</script>`

func pageWithInline() string {
	return strings.Replace(testPage, "</body>", inlinePayload+"</body>", 1)
}

func testHydrator(primary loader.Source) *Hydrator {
	return &Hydrator{
		Primary:  primary,
		Renderer: fixedRenderer(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

type offlineSource struct{}

func (offlineSource) Read(context.Context) ([]byte, error) {
	return nil, errors.New("network unreachable")
}
func (offlineSource) String() string { return "offline" }

func TestHydrate_FromPrimary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name": "Remote Ada", "projects": [{"name": "A"}, {"name": "B"}, {"name": "C"}]}`))
	}))
	defer server.Close()

	primary, err := loader.NewPrimarySource(server.URL, nil, nil)
	require.NoError(t, err)

	doc, err := ParsePageString(pageWithInline())
	require.NoError(t, err)

	result, err := testHydrator(primary).Hydrate(context.Background(), doc)
	require.NoError(t, err)
	assert.False(t, result.FellBack)
	assert.Equal(t, "Remote Ada", doc.Find("#name").Text())
	assert.Equal(t, 3, doc.Find(".project-card").Length())
}

func TestHydrate_FallsBackToInlineWithoutNotice(t *testing.T) {
	doc, err := ParsePageString(pageWithInline())
	require.NoError(t, err)

	result, err := testHydrator(offlineSource{}).Hydrate(context.Background(), doc)
	require.NoError(t, err)

	assert.True(t, result.FellBack)
	assert.Equal(t, "Inline Ada", doc.Find("#name").Text())
	assert.Equal(t, 2, doc.Find(".project-card").Length())
	assert.Equal(t, 2, doc.Find("#skills-list section.skills-group").Length())
	assert.Equal(t, 0, doc.Find(".load-error").Length())
}

func TestHydrate_BothSourcesAbsent(t *testing.T) {
	primary, err := loader.NewPrimarySource("nowhere", afero.NewMemMapFs(), nil)
	require.NoError(t, err)

	doc, err := ParsePageString(testPage)
	require.NoError(t, err)

	var logs bytes.Buffer
	h := testHydrator(primary)
	h.Logger = slog.New(slog.NewTextHandler(&logs, nil))

	_, err = h.Hydrate(context.Background(), doc)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, loader.ErrNoDataSource)
	assert.Contains(t, logs.String(), "could not load portfolio data")

	notice := doc.Find("main > .load-error")
	require.Equal(t, 1, notice.Length())
	assert.Equal(t, LoadErrorMessage, notice.Text())
	assert.True(t, notice.Is("main > :first-child"))

	// Regions keep their original content.
	assert.Equal(t, "Placeholder", doc.Find("#name").Text())
	assert.Equal(t, "placeholder", doc.Find("#skills-list li").Text())
	assert.Equal(t, 0, doc.Find(".project-card").Length())
	assert.Empty(t, doc.Find("#year").Text())
}

func TestHydrate_RepeatedFailureShowsOneNotice(t *testing.T) {
	doc, err := ParsePageString(testPage)
	require.NoError(t, err)

	h := testHydrator(offlineSource{})
	_, err = h.Hydrate(context.Background(), doc)
	require.Error(t, err)
	_, err = h.Hydrate(context.Background(), doc)
	require.Error(t, err)

	assert.Equal(t, 1, doc.Find(".load-error").Length())
}

func TestHydrate_NoticeWithoutMain(t *testing.T) {
	doc, err := ParsePageString(`<html><body><p>content</p></body></html>`)
	require.NoError(t, err)

	_, err = testHydrator(nil).Hydrate(context.Background(), doc)
	require.Error(t, err)
	assert.Equal(t, 1, doc.Find("body > .load-error").Length())
}

func TestHydrate_Idempotent(t *testing.T) {
	h := testHydrator(offlineSource{})

	first, _, err := h.HydrateHTML(context.Background(), strings.NewReader(pageWithInline()))
	require.NoError(t, err)

	second, _, err := h.HydrateHTML(context.Background(), strings.NewReader(first))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	doc, err := ParsePageString(second)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find(".project-card").Length())
	assert.Equal(t, 1, doc.Find("#skills-list").Length())
}

func TestHydrate_SuccessClearsEarlierNotice(t *testing.T) {
	doc, err := ParsePageString(pageWithInline())
	require.NoError(t, err)
	ShowLoadError(doc)
	require.Equal(t, 1, doc.Find(".load-error").Length())

	_, err = testHydrator(offlineSource{}).Hydrate(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find(".load-error").Length())
}

func TestHydrateHTML_ReturnsPageOnLoadFailure(t *testing.T) {
	out, result, err := testHydrator(offlineSource{}).HydrateHTML(context.Background(), strings.NewReader(testPage))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, out, LoadErrorMessage)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
}
