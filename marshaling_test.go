package post

import (
	"encoding/json"
	"testing"

	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"

	"github.com/winderica/PoST-NDSS20/big"
	"github.com/winderica/PoST-NDSS20/cbor"
	"github.com/winderica/PoST-NDSS20/internal/common"
)

func TestCommitmentMultihash(t *testing.T) {
	c := Commitment(common.Digest([]byte("some data")))

	bts, err := c.MarshalBinary()
	require.NoError(t, err)

	dec, err := multihash.Decode(bts)
	require.NoError(t, err)
	require.Equal(t, uint64(multihash.SHA3_256), dec.Code)
	require.Equal(t, []byte(c), dec.Digest)

	parsed := new(Commitment)
	require.NoError(t, parsed.UnmarshalBinary(bts))
	require.Equal(t, c, *parsed)
}

func TestCommitmentMultihashRejectsWrongCode(t *testing.T) {
	bts, err := multihash.Encode(common.Digest([]byte("some data")), multihash.SHA2_256)
	require.NoError(t, err)

	parsed := new(Commitment)
	require.Error(t, parsed.UnmarshalBinary(bts))
}

func TestCommitmentMultihashRejectsShortDigest(t *testing.T) {
	c := Commitment([]byte("too short"))
	_, err := c.MarshalBinary()
	require.Error(t, err)
}

func TestUnmarshalRejectsEqualPrimes(t *testing.T) {
	// Parsed keys go through the same checks as constructed ones; a key with
	// p = q would yield a square modulus with a wrong totient.
	bad := privateKey{P: big.NewInt(1019), Q: big.NewInt(1019)}

	bts, err := json.Marshal(bad)
	require.NoError(t, err)
	require.Error(t, json.Unmarshal(bts, new(PrivateKey)))

	bts, err = cbor.Marshal(bad)
	require.NoError(t, err)
	require.Error(t, cbor.Unmarshal(bts, new(PrivateKey)))
}

func TestUnmarshalRejectsMissingPrime(t *testing.T) {
	bts, err := json.Marshal(privateKey{P: big.NewInt(1019)})
	require.NoError(t, err)
	require.Error(t, json.Unmarshal(bts, new(PrivateKey)))
}

func TestCommitmentPairCBOR(t *testing.T) {
	pair := CommitmentPair{
		C: common.Digest([]byte("challenges")),
		V: common.Digest([]byte("responses")),
	}

	bts, err := cbor.Marshal(pair)
	require.NoError(t, err)

	parsed := new(CommitmentPair)
	require.NoError(t, cbor.Unmarshal(bts, parsed))
	require.True(t, pair.Equal(*parsed))
}
