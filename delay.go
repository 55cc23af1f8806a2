package post

import (
	"math"

	"github.com/go-errors/errors"

	"github.com/winderica/PoST-NDSS20/big"
)

// A DelayStep evaluates one round of the delay function x -> x^(2^T) mod N.
// The two implementations compute the same mathematical function; only their
// cost differs.
type DelayStep interface {
	// Step interprets x as an unsigned big-endian integer and returns the
	// minimal big-endian encoding of x^(2^T) mod N.
	Step(x []byte) []byte
}

// Trapdoor is the owner-side evaluator. It holds the exponent
// E = 2^(2^T) mod Phi(N), which by Euler's theorem collapses 2^T sequential
// squarings into a single modular exponentiation. E is derived from the
// factorization of N and is as secret as the factorization itself.
type Trapdoor struct {
	N *big.Int
	E *big.Int
}

// NewTrapdoor derives the reduced exponent for the given delay depth.
func NewTrapdoor(sk *PrivateKey, T uint) (*Trapdoor, error) {
	if sk == nil || sk.N == nil || sk.Phi == nil {
		return nil, errors.New("private key is missing derived values")
	}
	if sk.N.Cmp(bigOne) <= 0 || sk.Phi.Sign() <= 0 {
		return nil, errors.New("modulus and totient must be greater than one")
	}
	if T > MaxDelayDepth {
		return nil, errors.Errorf("delay depth %d exceeds maximum of %d", T, MaxDelayDepth)
	}
	bit := uint64(1) << T
	if bit > uint64(math.MaxInt) {
		return nil, errors.Errorf("delay depth %d is not representable on this platform", T)
	}

	e := new(big.Int).SetBit(big.NewInt(0), int(bit), 1)
	e.Mod(e, sk.Phi)
	return &Trapdoor{N: new(big.Int).Set(sk.N), E: e}, nil
}

// Step computes x^E mod N in a single exponentiation.
func (t *Trapdoor) Step(x []byte) []byte {
	g := new(big.Int).SetBytes(x)
	return g.Exp(g, t.E, t.N).Bytes()
}

// Sequential is the verifier-side evaluator. It needs only the public
// modulus, and its cost of 2^T modular multiplications is the delay the
// scheme relies on: the squaring loop has no algebraic shortcut without the
// factorization, and cannot be parallelized.
type Sequential struct {
	N *big.Int
	T uint
}

// NewSequential returns a sequential evaluator for the given delay depth.
func NewSequential(pk *PublicKey, T uint) (*Sequential, error) {
	if pk == nil {
		return nil, errors.New("public key is missing its modulus")
	}
	if err := pk.Validate(); err != nil {
		return nil, err
	}
	if T > MaxDelayDepth {
		return nil, errors.Errorf("delay depth %d exceeds maximum of %d", T, MaxDelayDepth)
	}
	return &Sequential{N: new(big.Int).Set(pk.N), T: T}, nil
}

// Step computes x^(2^T) mod N by squaring exactly 2^T times.
func (s *Sequential) Step(x []byte) []byte {
	g := new(big.Int).SetBytes(x)
	g.Mod(g, s.N)
	for i := uint64(0); i < uint64(1)<<s.T; i++ {
		g.Mul(g, g)
		g.Mod(g, s.N)
	}
	return g.Bytes()
}
