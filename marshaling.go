package post

import (
	"encoding/json"

	"github.com/go-errors/errors"
	"github.com/multiformats/go-multihash"

	"github.com/winderica/PoST-NDSS20/cbor"
	"github.com/winderica/PoST-NDSS20/internal/common"
)

// Commitments travel between the storer and its verifiers, so their binary
// form is a self-describing sha3-256 multihash rather than a bare digest.

// MarshalBinary implements encoding.BinaryMarshaler.
func (c Commitment) MarshalBinary() ([]byte, error) {
	if len(c) != common.DigestLength {
		return nil, errors.Errorf("commitment has %d bytes, expected %d", len(c), common.DigestLength)
	}
	return multihash.Encode(c, multihash.SHA3_256)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Commitment) UnmarshalBinary(data []byte) error {
	dec, err := multihash.Decode(data)
	if err != nil {
		return err
	}
	if dec.Code != multihash.SHA3_256 {
		return errors.Errorf("unexpected multihash code 0x%x", dec.Code)
	}
	if dec.Length != common.DigestLength {
		return errors.Errorf("multihash digest has %d bytes, expected %d", dec.Length, common.DigestLength)
	}
	*c = Commitment(dec.Digest)
	return nil
}

// Key (un)marshaling. The derived values N and Phi are never serialized;
// unmarshaling a private key recomputes them from P and Q.

type privateKey PrivateKey // alias without the custom (un)marshalers

// MarshalCBOR implements cbor.Marshaler using deterministic encoding.
func (sk *PrivateKey) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal((*privateKey)(sk))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (sk *PrivateKey) UnmarshalCBOR(data []byte) error {
	var tmp privateKey
	if err := cbor.Unmarshal(data, &tmp); err != nil {
		return err
	}
	return sk.setParsed(tmp)
}

// UnmarshalJSON implements json.Unmarshaler.
func (sk *PrivateKey) UnmarshalJSON(data []byte) error {
	var tmp privateKey
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	return sk.setParsed(tmp)
}

// setParsed goes through NewPrivateKey so that parsed keys are subject to
// the same checks as constructed ones, and N and Phi are rederived.
func (sk *PrivateKey) setParsed(tmp privateKey) error {
	parsed, err := NewPrivateKey(tmp.P, tmp.Q)
	if err != nil {
		return err
	}
	*sk = *parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler using deterministic encoding.
func (pk *PublicKey) MarshalCBOR() ([]byte, error) {
	type publicKey PublicKey
	return cbor.Marshal((*publicKey)(pk))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (pk *PublicKey) UnmarshalCBOR(data []byte) error {
	type publicKey PublicKey
	var tmp publicKey
	if err := cbor.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.N == nil {
		return errors.New("serialized public key is missing its modulus")
	}
	*pk = PublicKey(tmp)
	return nil
}

// MarshalCBOR implements cbor.Marshaler using deterministic encoding.
func (cp CommitmentPair) MarshalCBOR() ([]byte, error) {
	type commitmentPair CommitmentPair
	return cbor.Marshal(commitmentPair(cp))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (cp *CommitmentPair) UnmarshalCBOR(data []byte) error {
	type commitmentPair CommitmentPair
	var tmp commitmentPair
	if err := cbor.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*cp = CommitmentPair(tmp)
	return nil
}
