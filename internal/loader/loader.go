// Package loader produces a profile document from a primary source with an
// inline fallback.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonathan/portfolio-hydrator/internal/types"
)

// ErrNoDataSource is returned when neither the primary nor the fallback source has data.
var ErrNoDataSource = errors.New("no data source found: add data.json or inline #portfolio-data")

// SourceError reports a source that could not be read or parsed
type SourceError struct {
	Source  string
	Message string
	Cause   error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("source %s: %s", e.Source, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// Result is a loaded document and the source it came from.
type Result struct {
	Profile *types.Profile
	Source  string
	// Raw is the document exactly as read.
	Raw []byte
	// FellBack is true when the primary source failed.
	FellBack bool
}

// Loader tries Primary, then Fallback.
type Loader struct {
	Primary  Source
	Fallback Source
	Logger   *slog.Logger
}

// New creates a loader over the given sources. Either may be nil.
func New(primary, fallback Source, logger *slog.Logger) *Loader {
	return &Loader{Primary: primary, Fallback: fallback, Logger: logger}
}

// Load reads and parses the primary source. Any failure there is logged and
// the fallback is used instead. It fails with ErrNoDataSource when the
// fallback is absent too.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if l.Primary != nil {
		result, err := read(ctx, l.Primary)
		if err == nil {
			return result, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Warn("could not load primary profile source, falling back to inline data",
			"source", l.Primary.String(), "error", err)
	}

	if l.Fallback == nil {
		return nil, ErrNoDataSource
	}

	result, err := read(ctx, l.Fallback)
	if err != nil {
		return nil, err
	}
	result.FellBack = l.Primary != nil
	return result, nil
}

func read(ctx context.Context, src Source) (*Result, error) {
	data, err := src.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrNoDataSource) {
			return nil, err
		}
		return nil, &SourceError{Source: src.String(), Message: "read failed", Cause: err}
	}

	profile, err := types.ParseProfile(data)
	if err != nil {
		return nil, &SourceError{Source: src.String(), Message: "invalid profile JSON", Cause: err}
	}

	return &Result{Profile: profile, Source: src.String(), Raw: data}, nil
}
