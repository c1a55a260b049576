package g60

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PartialSymbols_Minimality(t *testing.T) {
	// k(n) must be the smallest symbol count able to represent every
	// n-byte value: 60^k >= 2^(8n) > 60^(k-1). The values overflow 64
	// bits at the top end, hence big.Int.
	for n := 1; n <= blockBytes; n++ {
		k := partialSymbols[n]

		byteSpace := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
		symbolSpace := new(big.Int).Exp(big.NewInt(60), big.NewInt(int64(k)), nil)
		tighter := new(big.Int).Exp(big.NewInt(60), big.NewInt(int64(k-1)), nil)

		require.True(t, symbolSpace.Cmp(byteSpace) >= 0, "60^%d cannot hold %d bytes", k, n)
		require.True(t, tighter.Cmp(byteSpace) < 0, "%d symbols waste space for %d bytes", k, n)
	}
}

func Test_PartialTables_Inverse(t *testing.T) {
	for n := 0; n <= blockBytes; n++ {
		require.Equal(t, n, partialBytes[partialSymbols[n]], "inverse mismatch for %d bytes", n)
	}

	// The three symbol counts no block produces.
	for _, k := range []int{1, 4, 8} {
		require.Equal(t, -1, partialBytes[k], "%d symbols should be impossible", k)
	}
}

func Test_EncodedLen(t *testing.T) {
	for n := 0; n <= 100; n++ {
		expected := int(math.Ceil(11.0 * float64(n) / 8.0))
		require.Equal(t, expected, EncodedLen(n), "incorrect for %d", n)
	}
}

func Test_DecodedLen(t *testing.T) {
	for n := 0; n <= 100; n++ {
		require.Equal(t, n, DecodedLen(EncodedLen(n)), "incorrect for %d", n)
	}
}
