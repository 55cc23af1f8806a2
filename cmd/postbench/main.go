// Command postbench benchmarks the two evaluation paths of the storage-time
// delay function: Store (trapdoor) and Prove (sequential squaring). For every
// combination of duration units and data size it generates a fresh modulus
// and seed, runs both paths, verifies that the commitment pairs match, and
// reports the timings.
package main

import (
	"crypto/rand"
	"strconv"
	"time"

	"github.com/docopt/docopt-go"
	"github.com/sirupsen/logrus"

	post "github.com/winderica/PoST-NDSS20"
)

const usage = `postbench

Benchmark the trapdoor (store) and sequential (prove) paths of the
storage-time delay function.

Usage:
  postbench [--nbits=<bits>] [--depth=<T>] [--units=<u>] [--rounds-per-unit=<r>] [--sizes=<mb>...] [--verbose]
  postbench -h | --help

Options:
  --nbits=<bits>          Modulus bit length [default: 2048].
  --depth=<T>             Delay depth T; 2^T squarings per round [default: 28].
  --units=<u>             Number of duration units to sweep [default: 4].
  --rounds-per-unit=<r>   Chain rounds per duration unit [default: 720].
  --sizes=<mb>            Data sizes in MB [default: 64 128 192 256].
  --verbose               Enable debug logging.
  -h --help               Show this screen.`

type options struct {
	NBits         int      `docopt:"--nbits"`
	Depth         int      `docopt:"--depth"`
	Units         int      `docopt:"--units"`
	RoundsPerUnit int      `docopt:"--rounds-per-unit"`
	Sizes         []string `docopt:"--sizes"`
	Verbose       bool     `docopt:"--verbose"`
}

func main() {
	log := logrus.StandardLogger()
	post.Logger = log

	parsed, err := docopt.ParseDoc(usage)
	if err != nil {
		log.WithError(err).Fatal("failed to parse arguments")
	}
	var opts options
	if err = parsed.Bind(&opts); err != nil {
		log.WithError(err).Fatal("failed to bind arguments")
	}
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	params := post.Params{NBits: opts.NBits, DelayDepth: uint(opts.Depth)}
	if err = params.Validate(); err != nil {
		log.WithError(err).Fatal("invalid parameters")
	}

	sizes := make([]int, len(opts.Sizes))
	for i, s := range opts.Sizes {
		if sizes[i], err = strconv.Atoi(s); err != nil || sizes[i] <= 0 {
			log.WithField("size", s).Fatal("invalid data size")
		}
	}

	for unit := 1; unit <= opts.Units; unit++ {
		// The mapping from a duration unit to a round count is a benchmark
		// convention, not part of the scheme.
		k := unit*opts.RoundsPerUnit - 1

		for _, size := range sizes {
			log.WithFields(logrus.Fields{
				"units":   unit,
				"size_mb": size,
				"rounds":  k + 1,
			}).Info("running benchmark case")

			seed := make([]byte, post.SeedLength)
			if _, err = rand.Read(seed); err != nil {
				log.WithError(err).Fatal("failed to generate seed")
			}
			data := make([]byte, size*1024*1024)

			sk, err := post.Setup(params)
			if err != nil {
				log.WithError(err).Fatal("setup failed")
			}

			start := time.Now()
			stored, err := post.Store(seed, data, sk, params.DelayDepth, k)
			if err != nil {
				log.WithError(err).Fatal("store failed")
			}
			log.WithField("elapsed", time.Since(start)).Info("store done")

			start = time.Now()
			proved, err := post.Prove(seed, data, sk.PublicKey(), params.DelayDepth, k)
			if err != nil {
				log.WithError(err).Fatal("prove failed")
			}
			log.WithField("elapsed", time.Since(start)).Info("prove done")

			if !stored.Equal(proved) {
				log.Fatal("store and prove commitments diverged")
			}
		}
	}
}
