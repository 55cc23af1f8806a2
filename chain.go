package post

import (
	"bytes"

	"github.com/winderica/PoST-NDSS20/internal/common"
)

type (
	// Commitment is a single finalizing digest summarizing all challenges or
	// all responses of a chain run.
	Commitment []byte

	// CommitmentPair is the scheme's comparable output: C commits to the
	// challenge sequence, V to the data-keyed response sequence.
	CommitmentPair struct {
		C Commitment `json:"c"`
		V Commitment `json:"v"`
	}
)

// Equal reports whether two pairs are byte-identical.
func (cp CommitmentPair) Equal(other CommitmentPair) bool {
	return bytes.Equal(cp.C, other.C) && bytes.Equal(cp.V, other.V)
}

// chain drives the delay evaluator through rounds 0..k inclusive. Each round
// MACs the data with the rolling challenge, folds challenge and response into
// the two accumulators, and derives the next challenge by passing the hashed
// response through the delay function.
//
// For the same seed, data, round count and effective modulus, the trapdoor
// and sequential evaluators yield identical pairs; that equality is the
// verification condition of the scheme.
func chain(seed, data []byte, step DelayStep, k int) CommitmentPair {
	c := seed
	cs := make([]byte, 0, (k+1)*common.DigestLength)
	vs := make([]byte, 0, (k+1)*common.DigestLength)
	for i := 0; i <= k; i++ {
		v := common.KeyedHash(c, data)
		cs = append(cs, c...)
		vs = append(vs, v...)
		c = common.Digest(step.Step(common.Digest(v)))
	}
	return CommitmentPair{C: common.Digest(cs), V: common.Digest(vs)}
}
