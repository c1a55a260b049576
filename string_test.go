package g60

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewString(t *testing.T) {
	g, err := NewString("Gt4CGFiHehzRzjCF16")
	require.NoError(t, err)
	require.Equal(t, "Gt4CGFiHehzRzjCF16", g.String())
	require.Equal(t, []byte("Hello, world!"), g.Bytes())

	text, err := g.Text()
	require.NoError(t, err)
	require.Equal(t, "Hello, world!", text)
}

func Test_NewString_Invalid(t *testing.T) {
	_, err := NewString("Hello, world!")
	require.True(t, errors.Is(err, ErrInvalidCharacter), "wrong error: %v", err)

	_, err = NewString("001")
	require.True(t, errors.Is(err, ErrValueOutOfRange), "wrong error: %v", err)
}

func Test_StringFrom(t *testing.T) {
	g := StringFrom([]byte{0xde, 0xad, 0xbe, 0xef})
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, g.Bytes())
	require.True(t, IsCanonical(g.String()))
}
