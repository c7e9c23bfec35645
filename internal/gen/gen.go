// Package gen owns every call to the generative backend: the error
// taxonomy, the single-flight rate-limited queue, and the HTTP adapter.
// The rest of the codebase treats "ask the model for X" as an opaque
// capability that can throttle, fail, or come back empty.
package gen

import (
	"context"
	"errors"
)

// The four failure classes the rest of the system distinguishes. Empty
// is a first-class outcome, not an error path gone wrong: it is what
// permanently stops a seasonal period from paginating and what turns an
// image slot into a placeholder instead of a retry loop.
var (
	ErrThrottled   = errors.New("generation throttled")
	ErrUnavailable = errors.New("generation backend unavailable")
	ErrMalformed   = errors.New("generation result malformed")
	ErrEmpty       = errors.New("generation result empty")
)

// TextGenerator produces schema-constrained JSON for a prompt and
// decodes it into out. Implementations classify failures with the
// sentinel errors above.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, out any) error
}

// ImageGenerator produces a binary image for a prompt. A source image
// may be supplied for edit-style regeneration. A nil payload with nil
// error is not allowed; implementations return ErrEmpty instead.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string, source []byte) ([]byte, error)
}
