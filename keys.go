package post

import (
	"github.com/go-errors/errors"

	"github.com/winderica/PoST-NDSS20/big"
	"github.com/winderica/PoST-NDSS20/primes"
)

type (
	// PrivateKey holds the trapdoor: the factorization of the modulus. It is
	// owner-only and must never leave the party running the fast path.
	PrivateKey struct {
		P *big.Int `json:"p"`
		Q *big.Int `json:"q"`

		// Derived values, recomputed when unmarshaling.
		N   *big.Int `json:"-"`
		Phi *big.Int `json:"-"`
	}

	// PublicKey holds the modulus N = P*Q, sufficient for the slow path.
	PublicKey struct {
		N *big.Int `json:"n"`
	}
)

var bigOne = big.NewInt(1)

// NewPrivateKey creates a private key from two primes, deriving the modulus
// and its totient.
func NewPrivateKey(p, q *big.Int) (*PrivateKey, error) {
	if p == nil || q == nil {
		return nil, errors.New("both primes are required")
	}
	if p.Cmp(q) == 0 {
		return nil, errors.New("primes p and q must be distinct")
	}
	sk := &PrivateKey{P: p, Q: q}
	sk.derive()
	return sk, nil
}

func (sk *PrivateKey) derive() {
	sk.N = new(big.Int).Mul(sk.P, sk.Q)
	sk.Phi = new(big.Int).Mul(
		new(big.Int).Sub(sk.P, bigOne),
		new(big.Int).Sub(sk.Q, bigOne),
	)
}

// PublicKey returns the public part of the key.
func (sk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{N: new(big.Int).Set(sk.N)}
}

// Validate does some sanity checks on the key material.
func (sk *PrivateKey) Validate() error {
	if sk.P == nil || sk.Q == nil || sk.N == nil || sk.Phi == nil {
		return errors.New("private key is incomplete")
	}
	if !sk.P.ProbablyPrime(40) {
		return errors.New("P is not prime")
	}
	if !sk.Q.ProbablyPrime(40) {
		return errors.New("Q is not prime")
	}
	if sk.P.BitLen() != sk.Q.BitLen() {
		return errors.New("P and Q have different bit lengths")
	}
	return nil
}

// Validate does some sanity checks on the modulus.
func (pk *PublicKey) Validate() error {
	if pk.N == nil || pk.N.Cmp(bigOne) <= 0 {
		return errors.New("modulus is missing or too small")
	}
	if pk.N.Bit(0) == 0 {
		return errors.New("modulus is even")
	}
	return nil
}

// Setup generates fresh trapdoor parameters: two independent probable primes
// of NBits/2 bits each. Prime candidates are searched on all CPU cores; the
// first two distinct results are used.
func Setup(params Params) (*PrivateKey, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	stop := make(chan struct{})
	defer close(stop)
	ints, errs := primes.GenerateConcurrent(params.NBits/2, stop)

	var p, q *big.Int
	for q == nil {
		select {
		case x := <-ints:
			if p == nil {
				p = x
			} else if p.Cmp(x) != 0 {
				q = x
			}
		case err := <-errs:
			return nil, err
		}
	}

	Logger.WithField("nbits", params.NBits).Debug("generated trapdoor modulus")
	return NewPrivateKey(p, q)
}
