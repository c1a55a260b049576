package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Encode_Arguments(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &Command{out: out}

	err := cmd.Execute([]string{"Hello, world!"})
	require.NoError(t, err)
	require.Equal(t, "Gt4CGFiHehzRzjCF16\n", out.String())
}

func Test_Encode_Stdin(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &Command{in: strings.NewReader("Hello, world!"), out: out}

	err := cmd.Execute(nil)
	require.NoError(t, err)
	require.Equal(t, "Gt4CGFiHehzRzjCF16\n", out.String())
}
