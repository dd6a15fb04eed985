package delta

import (
	"github.com/google/uuid"
	"golang.org/x/text/message"
)

// Entry describes one mismatch between a product component and its type.
type Entry interface {
	// Type returns the catalog type of the mismatch.
	Type() Type
	// Location names the component or generation the mismatch was found in.
	Location() string
	// Description returns a sentence describing the mismatch. It does not
	// modify the model.
	Description(p *message.Printer) string
	// Fix changes the model so that the mismatch disappears. Fix re-checks
	// its condition and does nothing if the mismatch no longer exists.
	Fix()
}

// newID returns the id of parts created by fixes.
var newID = uuid.NewString
