package server

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// assetExtensions are the file types served from the page's directory.
var assetExtensions = map[string]bool{
	".css": true, ".js": true, ".mjs": true, ".map": true,
	".html": true, ".htm": true, ".txt": true, ".webmanifest": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true,
	".webp": true, ".avif": true, ".ico": true,
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true,
	".pdf": true, ".mp4": true, ".webm": true,
}

// assetFS exposes only static assets: hidden path segments, directories
// and files of any other type (config, env, source) do not exist.
type assetFS struct {
	fs http.FileSystem
}

func (a assetFS) Open(name string) (http.File, error) {
	if !isAsset(name) {
		return nil, fs.ErrNotExist
	}

	f, err := a.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}

// isAsset reports whether a slash-separated request path names a servable file.
func isAsset(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return false
		}
	}
	return assetExtensions[strings.ToLower(path.Ext(name))]
}
