package post

import (
	"sort"

	"github.com/go-errors/errors"
)

// MaxDelayDepth bounds the delay depth T. The trapdoor exponent is reduced
// from an integer with a single set bit at position 2^T, so 2^T bits must be
// a constructible quantity; 34 caps the unreduced exponent at 2 GiB.
const MaxDelayDepth = 34

// SeedLength is the required byte length of the initial challenge seed.
const SeedLength = 32

// Params holds the public parameters of one instantiation of the scheme.
// They are passed explicitly into Setup so that multiple parameter sets can
// coexist within one process.
type Params struct {
	// NBits is the bit length of the modulus N; each prime gets NBits/2 bits.
	NBits int
	// DelayDepth is T: every chain round performs 2^T sequential squarings.
	DelayDepth uint
}

// defaultParams holds per modulus length the default parameters.
var defaultParams = map[int]Params{
	1024: {NBits: 1024, DelayDepth: 26},
	2048: {NBits: 2048, DelayDepth: 28},
	4096: {NBits: 4096, DelayDepth: 30},
}

// DefaultParams returns the default parameters for the given modulus length.
func DefaultParams(nBits int) (Params, error) {
	p, ok := defaultParams[nBits]
	if !ok {
		return Params{}, errors.Errorf("no default parameters for %d bit moduli", nBits)
	}
	return p, nil
}

// getAvailableKeyLengths returns the modulus lengths for the provided map of
// parameters.
func getAvailableKeyLengths(paramsMap map[int]Params) []int {
	lengths := make([]int, 0, len(paramsMap))
	for k := range paramsMap {
		lengths = append(lengths, k)
	}
	sort.Ints(lengths)
	return lengths
}

// DefaultKeyLengths is a slice of integers holding the modulus lengths for
// which default parameters are available.
var DefaultKeyLengths = getAvailableKeyLengths(defaultParams)

// Validate checks that the parameters are usable.
func (p Params) Validate() error {
	if p.NBits < 16 || p.NBits%2 != 0 {
		return errors.Errorf("modulus length %d is not an even number of at least 16 bits", p.NBits)
	}
	if p.DelayDepth > MaxDelayDepth {
		return errors.Errorf("delay depth %d exceeds maximum of %d", p.DelayDepth, MaxDelayDepth)
	}
	return nil
}
