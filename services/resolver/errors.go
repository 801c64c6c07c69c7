package resolver

import "errors"

// Kind is the closed set of resolution failure classes. Callers branch on
// the kind, never on message text.
type Kind int

const (
	// KindMissingIdentifier means the caller supplied neither a URL nor a
	// search query. Caller contract violation, reported before any engine
	// call.
	KindMissingIdentifier Kind = iota

	// KindNoResults means a search query produced zero hits.
	KindNoResults

	// KindExtractionFailed means the engine itself faulted: unsupported
	// site, network error, restricted content, malformed input.
	KindExtractionFailed
)

func (k Kind) String() string {
	switch k {
	case KindMissingIdentifier:
		return "missing identifier"
	case KindNoResults:
		return "no results"
	case KindExtractionFailed:
		return "extraction failed"
	default:
		return "unknown"
	}
}

// Error is a typed resolution failure. Detail carries the engine's message
// verbatim for extraction faults; upstream error text is deliberately not
// masked.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// KindOf extracts the failure kind from err, reporting ok=false for errors
// that did not originate in this package.
func KindOf(err error) (Kind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}
