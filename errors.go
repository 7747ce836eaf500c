package zipkit

import (
	"errors"

	"github.com/meigma/zipkit/internal/textenc"
)

// ErrUnsupportedCharacter is returned when an entry name or content
// contains a byte sequence the text codec cannot encode.
// Re-exported from the codec so callers match it with errors.Is.
var ErrUnsupportedCharacter = textenc.ErrUnsupportedCharacter

// ErrFieldOverflow is returned when a name length, content length, entry
// count, or archive offset exceeds the capacity of its header field.
// Overflow always fails the whole build; wrapping the integer would
// produce a corrupt, non-diagnosable archive.
var ErrFieldOverflow = errors.New("header field overflow")
