// Package g60 implements the G60 binary-to-text encoding: 8 bytes become
// 11 symbols from a 60-character alphabet, a 37.5% expansion (base64 costs
// 33% more output, base32 60%).
//
// Encoding never fails. Decoding accepts exactly the strings Encode can
// produce and reports anything else with one of the Err* sentinels.
package g60

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	blockBytes   = 8
	blockSymbols = 11
)

// Encode converts src into a G60 string. An empty input yields an empty
// string.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	out := make([]byte, 0, EncodedLen(len(src)))
	for len(src) >= blockBytes {
		group := encodeBlock(src[:blockBytes])
		out = append(out, group[:]...)
		src = src[blockBytes:]
	}

	// The trailing block encodes as if zero-padded to 8 bytes, keeping
	// only as many symbols as its byte count requires.
	if len(src) > 0 {
		group := encodeBlock(src)
		out = append(out, group[:partialSymbols[len(src)]]...)
	}

	return string(out)
}

// EncodeString encodes the raw bytes of s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// Decode converts a G60 string back into the bytes it was encoded from.
// It is the exact inverse of Encode: any string Encode did not produce is
// rejected with ErrInvalidCharacter, ErrInvalidLength or
// ErrValueOutOfRange.
func Decode(s string) ([]byte, error) {
	tail := len(s) % blockSymbols
	if partialBytes[tail] < 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "%d trailing symbols do not correspond to any block", tail)
	}

	full := len(s) / blockSymbols
	out := make([]byte, full*blockBytes+partialBytes[tail])

	for g := 0; g < full; g++ {
		group := s[g*blockSymbols : (g+1)*blockSymbols]
		if err := decodeGroup(group, g*blockSymbols, out[g*blockBytes:(g+1)*blockBytes]); err != nil {
			return nil, err
		}
	}
	if tail != 0 {
		offset := full * blockSymbols
		if err := decodeGroup(s[offset:], offset, out[full*blockBytes:]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// decodeGroup decodes one symbol group into dst, whose length selects the
// block's byte count. offset is the group's position within the whole
// string, used for error reporting.
func decodeGroup(group string, offset int, dst []byte) error {
	var digits [blockSymbols]int
	for i := 0; i < len(group); i++ {
		d := symbolValues[group[i]]
		if d < 0 {
			return errors.Wrapf(ErrInvalidCharacter, "%q at index %d", group[i], offset+i)
		}
		digits[i] = int(d)
	}

	block := decodeBlock(digits)
	copy(dst, block[:len(dst)])

	// Each block has a single canonical spelling, but the symbol space is
	// slightly larger than the byte space, so some groups name no block at
	// all. Those re-encode differently and are rejected.
	reencoded := encodeBlock(dst)
	for i := 0; i < len(group); i++ {
		if reencoded[i] != group[i] {
			return errors.Wrapf(ErrValueOutOfRange, "group at index %d exceeds the range of a %d-byte block", offset, len(dst))
		}
	}

	return nil
}

// DecodeToString decodes s and additionally requires the result to be
// well-formed UTF-8, failing with ErrInvalidText otherwise.
func DecodeToString(s string) (string, error) {
	raw, err := Decode(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", errors.Wrapf(ErrInvalidText, "decoded %d bytes are not valid UTF-8", len(raw))
	}
	return string(raw), nil
}

// Verify checks that s is structurally valid: every character belongs to
// the alphabet and the length decomposes into groups. It does not decode,
// so out-of-range groups still pass; use Decode or IsCanonical to check
// those as well.
func Verify(s string) error {
	if tail := len(s) % blockSymbols; partialBytes[tail] < 0 {
		return errors.Wrapf(ErrInvalidLength, "%d trailing symbols do not correspond to any block", tail)
	}
	for i := 0; i < len(s); i++ {
		if symbolValues[s[i]] < 0 {
			return errors.Wrapf(ErrInvalidCharacter, "%q at index %d", s[i], i)
		}
	}
	return nil
}

// IsCanonical reports whether s is the encoding of some byte sequence.
func IsCanonical(s string) bool {
	_, err := Decode(s)
	return err == nil
}

// EncodedLen returns the length of the encoding of n input bytes.
func EncodedLen(n int) int {
	return n/blockBytes*blockSymbols + partialSymbols[n%blockBytes]
}

// DecodedLen returns the number of bytes encoded by n symbols, assuming n
// is a valid encoded length.
func DecodedLen(n int) int {
	return n * blockBytes / blockSymbols
}
