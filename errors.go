package g60

import (
	"github.com/pkg/errors"
)

// Decoding failures. Decode, DecodeToString and Verify wrap these with
// positional context; match them with errors.Is.
var (
	// ErrInvalidCharacter is reported when the input contains a character
	// outside the 60-symbol alphabet.
	ErrInvalidCharacter = errors.New("g60: character outside the alphabet")

	// ErrInvalidLength is reported when the trailing symbols left after
	// splitting off full 11-symbol groups cannot form a block (1, 4 or 8
	// of them).
	ErrInvalidLength = errors.New("g60: invalid encoded length")

	// ErrValueOutOfRange is reported when a group is well-formed but its
	// value exceeds what its block's byte count can hold, so no input
	// encodes to it.
	ErrValueOutOfRange = errors.New("g60: group value out of range")

	// ErrInvalidText is reported by DecodeToString when the decoded bytes
	// are not well-formed UTF-8.
	ErrInvalidText = errors.New("g60: decoded bytes are not valid text")
)
