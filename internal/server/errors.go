package server

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/jonathan/portfolio-hydrator/internal/loader"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var sourceErr *loader.SourceError

	switch {
	case errors.Is(err, loader.ErrNoDataSource), errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.As(err, &sourceErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
