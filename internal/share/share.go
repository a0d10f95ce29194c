// Package share hands export text to the platform clipboard. Failures
// degrade to an absence of success feedback: the caller shows no toast,
// the user is never handed an error for a share they can simply retry.
package share

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/sdiallo/woyofal/internal/logging"
)

// Payload is the content offered to the share target.
type Payload struct {
	Title string
	Text  string
}

// Sharer delivers a payload to an external destination.
type Sharer interface {
	// Share returns true when the payload was delivered and success
	// feedback should be shown. A false return with nil error means the
	// user backed out; stay silent.
	Share(ctx context.Context, p Payload) (bool, error)
}

// Clipboard is the default Sharer: it copies the payload text. On a
// terminal platform there is no native share sheet, so the clipboard is
// both the primary target and the fallback.
type Clipboard struct{}

// Share copies the payload text to the system clipboard.
func (Clipboard) Share(ctx context.Context, p Payload) (bool, error) {
	if err := clipboard.WriteAll(p.Text); err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "share").
			Str("title", p.Title).
			Err(err).
			Msg("clipboard write failed")
		return false, err
	}
	return true, nil
}

// Copy copies text to the clipboard and reports whether to surface
// success feedback. Errors are logged and swallowed here so callers
// only branch on the bool.
func Copy(ctx context.Context, sharer Sharer, p Payload) bool {
	ok, err := sharer.Share(ctx, p)
	if err != nil {
		// Already logged by the sharer; nothing to surface.
		return false
	}
	return ok
}
