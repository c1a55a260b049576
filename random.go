package g60

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// RandomBytes returns the encoding of n bytes drawn from crypto/rand.
func RandomBytes(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "reading random bytes")
	}
	return Encode(buf), nil
}

// RandomString returns a random canonical G60 string of length symbols.
// When no encoding has exactly that length (remainders of 1, 4 or 8), a
// string of length-1 is returned instead.
func RandomString(length int) (string, error) {
	return RandomBytes(DecodedLen(length))
}
