package resolver

import (
	"context"
	"log"
	"strings"

	"ytresolve/models"
)

// Mode selects how much work the engine performs for a direct URL.
type Mode int

const (
	// ModeFull resolves the item completely, including nested playlist
	// entries and the stream-format enumeration.
	ModeFull Mode = iota

	// ModeMetadataOnly performs a lightweight probe without playlist
	// expansion; enough for the metadata projection routes.
	ModeMetadataOnly
)

// searchPrefix is the engine's search pseudo-identifier: resolve the query
// and return only the first result.
const searchPrefix = "ytsearch1:"

// Options is the engine option set recognized by every backend.
type Options struct {
	Download          bool
	PlaylistExpansion bool
	FormatSelection   string
	CookieSource      string
}

// Engine is the external media-extraction backend. Implementations run one
// synchronous, time-bounded resolution per call; the engine's own network
// timeout applies and is not reimplemented here.
type Engine interface {
	Extract(ctx context.Context, identifier string, opts Options) (*models.RawMetadata, error)
}

// Service dispatches "URL or search query" to the extraction engine and
// returns one canonical raw metadata record. It holds no state across calls
// and never retries; retry policy belongs to the caller.
type Service struct {
	engine       Engine
	cookieSource string
}

func NewService(engine Engine, cookieSource string) *Service {
	return &Service{engine: engine, cookieSource: cookieSource}
}

// Resolve obtains the canonical metadata record for exactly one of url or
// query. Both absent is a caller contract violation reported before any
// engine call. When both are present the URL wins and the query is ignored.
func (s *Service) Resolve(ctx context.Context, url, query string, mode Mode) (*models.RawMetadata, error) {
	url = strings.TrimSpace(url)
	query = strings.TrimSpace(query)

	if url == "" && query == "" {
		return nil, &Error{Kind: KindMissingIdentifier, Detail: "either url or query is required"}
	}

	opts := Options{CookieSource: s.cookieSource}
	if mode == ModeFull {
		opts.PlaylistExpansion = true
	}

	if url == "" {
		return s.resolveQuery(ctx, query, opts)
	}

	meta, err := s.engine.Extract(ctx, url, opts)
	if err != nil {
		return nil, asExtractionError(err)
	}
	return meta, nil
}

func (s *Service) resolveQuery(ctx context.Context, query string, opts Options) (*models.RawMetadata, error) {
	// Search hits come back as a collection; the engine must expand it even
	// in metadata-only mode or there is nothing to take the first hit from.
	opts.PlaylistExpansion = true
	meta, err := s.engine.Extract(ctx, searchPrefix+query, opts)
	if err != nil {
		return nil, asExtractionError(err)
	}
	if len(meta.Entries) == 0 {
		log.Printf("[resolver] no results for query %q", query)
		return nil, &Error{Kind: KindNoResults, Detail: "no results found"}
	}
	first := meta.Entries[0]
	return &first, nil
}

// asExtractionError wraps an engine-level fault, preserving the engine's
// message verbatim in Detail. Typed errors from this package pass through
// untouched.
func asExtractionError(err error) error {
	if _, ok := KindOf(err); ok {
		return err
	}
	return &Error{Kind: KindExtractionFailed, Detail: err.Error()}
}
