package adapters

import (
	"context"
	"fmt"

	"commentpulse/internal/models"
)

// Adapter turns a platform-specific source reference into raw comment
// records. Implementations only make network calls; they never persist or
// mutate shared state.
//
// Fetch returns the comments gathered so far even on error, so the caller
// can tell "no comments" from "could not fetch" and keep partial pages.
type Adapter interface {
	Platform() models.Platform
	Fetch(ctx context.Context, sourceRef string, maxResults int) ([]models.RawComment, error)
}

// FetchError is the typed boundary for any transport, auth or parse failure
// inside an adapter. Raw errors never cross into the orchestrator.
type FetchError struct {
	Platform models.Platform
	Reason   string
	Err      error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch failed for %s: %s: %v", e.Platform, e.Reason, e.Err)
	}
	return fmt.Sprintf("fetch failed for %s: %s", e.Platform, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }
