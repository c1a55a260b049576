package g60

// String is a G60 string that is known to decode. Obtain one through
// NewString or StringFrom; converting arbitrary text directly defeats
// the guarantee.
type String string

// NewString validates s completely, including canonicality.
func NewString(s string) (String, error) {
	if _, err := Decode(s); err != nil {
		return "", err
	}
	return String(s), nil
}

// StringFrom encodes src. The result is canonical by construction.
func StringFrom(src []byte) String {
	return String(Encode(src))
}

func (g String) String() string {
	return string(g)
}

// Bytes decodes g. It returns nil for a String that bypassed validation.
func (g String) Bytes() []byte {
	raw, _ := Decode(string(g))
	return raw
}

// Text decodes g into a UTF-8 string, failing with ErrInvalidText when
// the decoded bytes are not text.
func (g String) Text() (string, error) {
	return DecodeToString(string(g))
}
