package loader

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestEmbed_CreatesScript(t *testing.T) {
	page := parsePage(t, pageWithoutInline)

	require.NoError(t, Embed(page, []byte("{\n  \"name\": \"Ada\"\n}")))

	script := page.Find(EmbeddedSelector)
	require.Equal(t, 1, script.Length())
	assert.Equal(t, "application/json", script.AttrOr("type", ""))
	assert.Equal(t, `{"name":"Ada"}`, script.Text())
	assert.True(t, script.Parent().Is("body"))
}

func TestEmbed_ReplacesExistingPayload(t *testing.T) {
	page := parsePage(t, pageWithInline)

	require.NoError(t, Embed(page, []byte(`{"name": "Replaced"}`)))

	assert.Equal(t, 1, page.Find(EmbeddedSelector).Length())
	data, err := (&EmbeddedSource{Page: page}).Read(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Replaced"}`, string(data))
}

func TestEmbed_EscapesClosingTags(t *testing.T) {
	page := parsePage(t, pageWithoutInline)
	require.NoError(t, Embed(page, []byte(`{"tagline": "</script><b>x</b>"}`)))

	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, page.Nodes[0]))

	reparsed := parsePage(t, buf.String())
	l := New(&EmbeddedSource{Page: reparsed}, nil, discardLogger())
	result, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "</script><b>x</b>", result.Profile.Tagline)
	assert.Equal(t, 0, reparsed.Find("b").Length())
}

func TestEmbed_SurvivesScriptMarkupInText(t *testing.T) {
	tests := []struct {
		name    string
		tagline string
	}{
		{"comment opener before script", "<!--<script>"},
		{"comment and close", "<!--<script></script>-->"},
		{"ampersand and angle brackets", "R&D <b>lead</b> > 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`{"tagline": "` + tt.tagline + `"}`)

			page := parsePage(t, pageWithoutInline)
			require.NoError(t, Embed(page, data))

			var buf bytes.Buffer
			require.NoError(t, html.Render(&buf, page.Nodes[0]))
			assert.NotContains(t, buf.String(), tt.tagline)

			reparsed := parsePage(t, buf.String())
			result, err := New(&EmbeddedSource{Page: reparsed}, nil, discardLogger()).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.tagline, result.Profile.Tagline)
			assert.Equal(t, 1, reparsed.Find("body > script").Length())
		})
	}
}

func TestEmbed_RejectsNullDocument(t *testing.T) {
	page := parsePage(t, pageWithoutInline)

	err := Embed(page, []byte(`null`))
	require.Error(t, err)
	assert.Equal(t, 0, page.Find(EmbeddedSelector).Length())
}

func TestEmbed_RejectsInvalidDocument(t *testing.T) {
	page := parsePage(t, pageWithoutInline)

	err := Embed(page, []byte(`{"skills": 42}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile JSON")
	assert.Equal(t, 0, page.Find(EmbeddedSelector).Length())
}
