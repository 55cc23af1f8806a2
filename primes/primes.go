// Package primes generates the random probable primes from which trapdoor
// moduli are built.
package primes

import (
	"crypto/rand"
	"io"
	"runtime"

	"github.com/go-errors/errors"

	"github.com/winderica/PoST-NDSS20/big"
)

// SmallPrimes is a list of small prime numbers that allows us to rapidly
// exclude some fraction of composite candidates when searching for a random
// prime. This list is truncated at the point where SmallPrimesProduct exceeds
// a uint64. It does not include two because we ensure that the candidates are
// odd by construction.
var SmallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

// SmallPrimesProduct is the product of the values in SmallPrimes and allows us
// to reduce a candidate prime by this number and then determine whether it's
// coprime with all the elements of SmallPrimes without further big.Int
// operations.
var SmallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// Generate returns a random probable prime of exactly the given bit size.
// The two most significant bits are set so that the product of two such
// primes always has exactly 2*bitsize bits.
//
// In order to cancel the search, send a struct{} on the stop parameter or
// close() it; Generate then returns nil, nil. (Passing nil is allowed; then
// the search cannot be cancelled.)
func Generate(bitsize int, stop chan struct{}) (*big.Int, error) {
	if bitsize < 8 {
		return nil, errors.Errorf("prime size %d too small, need at least 8 bits", bitsize)
	}

	var (
		bts    = make([]byte, (bitsize+7)/8)
		b      = uint(bitsize % 8)
		p      = new(big.Int)
		bigMod = new(big.Int)
		i      int
	)
	if b == 0 {
		b = 8
	}

NextCandidate:
	for {
		// Every 100 candidates, check if we have been asked to stop
		i++
		if stop != nil && i%100 == 0 {
			select {
			case <-stop:
				return nil, nil
			default: // just continue with the loop
			}
		}

		if _, err := io.ReadFull(rand.Reader, bts); err != nil {
			return nil, errors.Wrap(err, 0)
		}

		// Clear bits in the first byte to make sure the candidate has a size <= bitsize.
		bts[0] &= uint8(int(1<<b) - 1)
		// Set the two most significant bits.
		if b >= 2 {
			bts[0] |= 3 << (b - 2)
		} else {
			bts[0] |= 1
			if len(bts) > 1 {
				bts[1] |= 0x80
			}
		}
		// Make the value odd since an even number this large certainly isn't prime.
		bts[len(bts)-1] |= 1

		p.SetBytes(bts)

		// Calculate the value mod the product of SmallPrimes. If it's a multiple of any of these
		// primes we discard this candidate. This check is much cheaper than ProbablyPrime() below.
		bigMod.Mod(p, SmallPrimesProduct)
		mod := bigMod.Uint64()
		for _, prime := range SmallPrimes {
			// Candidates have at least 8 bits, so a multiple of a small prime
			// is never that prime itself.
			if mod%uint64(prime) == 0 {
				continue NextCandidate
			}
		}

		if p.ProbablyPrime(20) {
			return new(big.Int).Set(p), nil
		}
	}
}

// GenerateConcurrent concurrently and continuously generates primes of the
// given bit size on all CPU cores, until the stop channel receives a struct
// or is closed. If an error is encountered, generation is stopped in all
// goroutines, and the error is sent on the second return parameter.
func GenerateConcurrent(bitsize int, stop chan struct{}) (<-chan *big.Int, <-chan error) {
	count := runtime.GOMAXPROCS(0)
	ints := make(chan *big.Int, count)
	errs := make(chan error, count)

	// In order to succesfully close all goroutines below when the caller wants them to, they require
	// a channel that is close()d: just sending a struct{}{} would stop one but not all goroutines.
	// Instead of requiring the caller to close() the stop chan parameter we use our own chan for
	// this, so that we always stop all goroutines independent of whether the caller close()s stop
	// or sends a struct{}{} to it.
	stopped := make(chan struct{})
	go func() {
		select {
		case <-stop:
			close(stopped)
		case <-stopped: // stopped can also be closed by a goroutine that encountered an error
		}
	}()

	for i := 0; i < count; i++ {
		go func() {
			for {
				// Pass stopped chan along; if closed, Generate() returns nil, nil
				x, err := Generate(bitsize, stopped)
				if err != nil {
					errs <- err
					close(stopped)
					return
				}

				// Only send result and continue generating if we have not been told to stop
				select {
				case <-stopped:
					return
				default:
					ints <- x
					continue
				}
			}
		}()
	}

	return ints, errs
}
