package post

import (
	"github.com/go-errors/errors"
)

// Store runs the owner path: the full challenge-response chain over data,
// with each round's delay function evaluated through the trapdoor. The
// resulting pair can be published as a commitment to holding data for the
// wall-clock time the slow path needs.
//
// The round count k is an opaque caller-supplied integer; rounds 0 through k
// inclusive are executed, so k = 0 still performs one round.
func Store(seed, data []byte, sk *PrivateKey, T uint, k int) (CommitmentPair, error) {
	if err := checkChainArgs(seed, k); err != nil {
		return CommitmentPair{}, err
	}
	step, err := NewTrapdoor(sk, T)
	if err != nil {
		return CommitmentPair{}, err
	}
	return chain(seed, data, step, k), nil
}

// Prove runs the verifier path: the identical chain computed by brute-force
// sequential squaring, requiring only the public modulus. A verifier checks
// the returned pair for equality against a published one; a mismatch means
// the parameters differed or the storer did not hold the claimed data and
// trapdoor relationship.
func Prove(seed, data []byte, pk *PublicKey, T uint, k int) (CommitmentPair, error) {
	if err := checkChainArgs(seed, k); err != nil {
		return CommitmentPair{}, err
	}
	step, err := NewSequential(pk, T)
	if err != nil {
		return CommitmentPair{}, err
	}
	return chain(seed, data, step, k), nil
}

func checkChainArgs(seed []byte, k int) error {
	if len(seed) != SeedLength {
		return errors.Errorf("seed has %d bytes, expected %d", len(seed), SeedLength)
	}
	if k < 0 {
		return errors.Errorf("round count %d is negative", k)
	}
	return nil
}
