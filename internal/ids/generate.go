package ids

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultLength is the standard length for generated IDs.
const DefaultLength = 8

// New returns a fresh opaque ID of DefaultLength characters.
func New() string {
	return NewWithLength(DefaultLength)
}

// NewWithLength returns a fresh opaque ID of the given length.
// IDs are lowercase hex derived from a random UUID.
func NewWithLength(length int) string {
	if length <= 0 {
		return ""
	}
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length > len(id) {
		length = len(id)
	}
	return strings.ToLower(id[:length])
}
