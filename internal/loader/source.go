package loader

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/afero"

	"github.com/jonathan/portfolio-hydrator/internal/fetch"
)

// DataFileName is the fixed relative path of the primary profile document.
const DataFileName = "data.json"

// EmbeddedSelector locates the inline fallback payload in a page.
const EmbeddedSelector = "script#portfolio-data"

// Source yields the raw bytes of a profile document.
type Source interface {
	Read(ctx context.Context) ([]byte, error)
	String() string
}

// HTTPSource reads the profile document over HTTP with caching disabled.
type HTTPSource struct {
	URL     string
	Options *fetch.Options
}

func (s *HTTPSource) Read(ctx context.Context) ([]byte, error) {
	opts := fetch.DefaultOptions()
	if s.Options != nil {
		copied := *s.Options
		opts = &copied
	}
	opts.NoCache = true

	result, err := fetch.URL(ctx, s.URL, opts)
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}

func (s *HTTPSource) String() string {
	return s.URL
}

// FileSource reads the profile document from a filesystem.
type FileSource struct {
	Fs   afero.Fs
	Path string
}

func (s *FileSource) Read(_ context.Context) ([]byte, error) {
	fs := s.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	data, err := afero.ReadFile(fs, s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return data, nil
}

func (s *FileSource) String() string {
	return "file://" + filepath.ToSlash(s.Path)
}

// EmbeddedSource reads the inline payload from a parsed page.
type EmbeddedSource struct {
	Page     *goquery.Document
	Selector string
}

func (s *EmbeddedSource) Read(_ context.Context) ([]byte, error) {
	if s.Page == nil {
		return nil, ErrNoDataSource
	}
	selector := s.Selector
	if selector == "" {
		selector = EmbeddedSelector
	}

	sel := s.Page.Find(selector).First()
	if sel.Length() == 0 {
		return nil, ErrNoDataSource
	}
	return []byte(sel.Text()), nil
}

func (s *EmbeddedSource) String() string {
	if s.Selector == "" {
		return "inline " + EmbeddedSelector
	}
	return "inline " + s.Selector
}

// NewPrimarySource resolves the data file against base. An http(s) base
// yields an HTTPSource; anything else is treated as a directory on fs.
func NewPrimarySource(base string, fs afero.Fs, opts *fetch.Options) (Source, error) {
	if IsRemote(base) {
		u, err := fetch.ResolveReference(directoryURL(base), DataFileName)
		if err != nil {
			return nil, err
		}
		return &HTTPSource{URL: u, Options: opts}, nil
	}

	if base == "" {
		base = "."
	}
	return &FileSource{Fs: fs, Path: filepath.Join(base, DataFileName)}, nil
}

// directoryURL treats an extensionless last segment as a directory so that
// "https://host/site" resolves data.json inside site.
func directoryURL(base string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if u.Path != "" && !strings.HasSuffix(u.Path, "/") && path.Ext(u.Path) == "" {
		u.Path += "/"
	}
	return u.String()
}

// IsRemote reports whether base names an http or https location.
func IsRemote(base string) bool {
	lower := strings.ToLower(base)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
