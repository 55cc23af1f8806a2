package post

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/winderica/PoST-NDSS20/big"
	"github.com/winderica/PoST-NDSS20/cbor"
)

func TestNewPrivateKey(t *testing.T) {
	sk, err := NewPrivateKey(big.NewInt(1019), big.NewInt(1021))
	require.NoError(t, err)
	require.NoError(t, sk.Validate())

	require.Equal(t, int64(1019*1021), sk.N.Int64())
	require.Equal(t, int64(1018*1020), sk.Phi.Int64())

	pk := sk.PublicKey()
	require.NoError(t, pk.Validate())
	require.Zero(t, pk.N.Cmp(sk.N))
}

func TestNewPrivateKeyRejectsEqualPrimes(t *testing.T) {
	_, err := NewPrivateKey(big.NewInt(1019), big.NewInt(1019))
	require.Error(t, err)
}

func TestNewPrivateKeyRejectsNil(t *testing.T) {
	_, err := NewPrivateKey(nil, big.NewInt(1019))
	require.Error(t, err)
	_, err = NewPrivateKey(big.NewInt(1019), nil)
	require.Error(t, err)
}

func TestSetup(t *testing.T) {
	sk, err := Setup(Params{NBits: 128, DelayDepth: 6})
	require.NoError(t, err)
	require.NoError(t, sk.Validate())

	require.Equal(t, 64, sk.P.BitLen())
	require.Equal(t, 64, sk.Q.BitLen())
	require.Equal(t, 128, sk.N.BitLen())
	require.NotZero(t, sk.P.Cmp(sk.Q))
}

func TestSetupRejectsBadParams(t *testing.T) {
	_, err := Setup(Params{NBits: 127, DelayDepth: 6})
	require.Error(t, err)
	_, err = Setup(Params{NBits: 8, DelayDepth: 6})
	require.Error(t, err)
	_, err = Setup(Params{NBits: 128, DelayDepth: MaxDelayDepth + 1})
	require.Error(t, err)
}

func TestValidateRejectsComposite(t *testing.T) {
	sk, err := NewPrivateKey(big.NewInt(1019), big.NewInt(1022))
	require.NoError(t, err)
	require.Error(t, sk.Validate())
}

func TestPrivateKeyJSON(t *testing.T) {
	sk, err := NewPrivateKey(big.NewInt(1019), big.NewInt(1021))
	require.NoError(t, err)

	bts, err := json.Marshal(sk)
	require.NoError(t, err)

	parsed := new(PrivateKey)
	require.NoError(t, json.Unmarshal(bts, parsed))

	// P and Q round-trip; N and Phi are rederived
	require.Zero(t, sk.P.Cmp(parsed.P))
	require.Zero(t, sk.Q.Cmp(parsed.Q))
	require.Zero(t, sk.N.Cmp(parsed.N))
	require.Zero(t, sk.Phi.Cmp(parsed.Phi))
}

func TestPrivateKeyCBOR(t *testing.T) {
	sk, err := NewPrivateKey(big.NewInt(1019), big.NewInt(1021))
	require.NoError(t, err)

	bts, err := cbor.Marshal(sk)
	require.NoError(t, err)

	parsed := new(PrivateKey)
	require.NoError(t, cbor.Unmarshal(bts, parsed))
	require.Zero(t, sk.N.Cmp(parsed.N))
	require.Zero(t, sk.Phi.Cmp(parsed.Phi))
}

func TestPublicKeyCBOR(t *testing.T) {
	pk := &PublicKey{N: big.NewInt(1019 * 1021)}

	bts, err := cbor.Marshal(pk)
	require.NoError(t, err)

	parsed := new(PublicKey)
	require.NoError(t, cbor.Unmarshal(bts, parsed))
	require.Zero(t, pk.N.Cmp(parsed.N))
}
