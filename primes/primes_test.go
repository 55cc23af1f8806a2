package primes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/winderica/PoST-NDSS20/big"
)

func TestGenerate(t *testing.T) {
	x, err := Generate(128, nil)

	require.NoError(t, err)
	require.NotNil(t, x)
	require.Equal(t, 128, x.BitLen())
	require.True(t, x.ProbablyPrime(100), "Generated number was not prime")
}

func TestGenerateProductBitLength(t *testing.T) {
	p, err := Generate(64, nil)
	require.NoError(t, err)
	q, err := Generate(64, nil)
	require.NoError(t, err)

	// The top two bits of each prime are set, so the product never loses a bit.
	n := new(big.Int).Mul(p, q)
	require.Equal(t, 128, n.BitLen())
}

func TestGenerateTooSmall(t *testing.T) {
	_, err := Generate(4, nil)
	require.Error(t, err)
}

func TestGenerateConcurrent(t *testing.T) {
	stop := make(chan struct{})
	ints, errs := GenerateConcurrent(64, stop)

	var x *big.Int
	select {
	case x = <-ints:
	case err := <-errs:
		require.NoError(t, err)
	}
	close(stop)

	require.NotNil(t, x)
	require.True(t, x.ProbablyPrime(100), "Generated number was not prime")
}
