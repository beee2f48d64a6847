package ranker

import (
	"io"
	"math"
	"math/rand"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

const (
	// DefaultDampingFactor is used when Config.DampingFactor is not set.
	DefaultDampingFactor = 0.85

	// DefaultSamples is used when Config.Samples is not set.
	DefaultSamples = 10000

	// ConvergenceThreshold is the maximum absolute change of any page score
	// between two rounds of IterateRank below which the scores are considered
	// converged.
	ConvergenceThreshold = 0.001
)

//go:generate mockgen -package mocks -destination mocks/mocks.go github.com/Ahmed-Sermani/pagerank/ranker RandomSource

// RandomSource is implemented by pseudo-random generators that can drive the
// sampling estimator. *rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int

	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
}

// Config encapsulates the parameters of a single PageRank estimation.
type Config struct {
	// DampingFactor is the probability that the random surfer follows one
	// of the outgoing links of the current page instead of jumping to a
	// random page of the corpus.
	//
	// If not specified, a default value of 0.85 will be used instead.
	DampingFactor float64

	// Samples is the number of pages visited by SampleRank.
	//
	// If not specified, a default value of 10000 will be used instead.
	Samples int

	// Rand drives SampleRank. Seed it to get reproducible results.
	//
	// If not specified, a time-seeded generator will be used instead.
	Rand RandomSource

	// MaxIterations bounds the number of relaxation rounds of IterateRank.
	// Zero means no bound.
	MaxIterations int

	// Logger receives debug information about the estimation. If not
	// specified, nothing is logged.
	Logger *logrus.Entry
}

// validate checks whether the configuration is valid and sets the default
// values where required.
func (c *Config) validate() error {
	var err error
	if c.DampingFactor == 0 {
		c.DampingFactor = DefaultDampingFactor
	} else if dErr := checkDampingFactor(c.DampingFactor); dErr != nil {
		err = multierror.Append(err, dErr)
	}

	if c.Samples < 0 {
		err = multierror.Append(err, ErrInvalidSampleCount)
	} else if c.Samples == 0 {
		c.Samples = DefaultSamples
	}

	if c.MaxIterations < 0 {
		err = multierror.Append(err, xerrors.New("MaxIterations must not be negative"))
	}

	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if c.Logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		c.Logger = logrus.NewEntry(l)
	}

	return err
}

func checkDampingFactor(d float64) error {
	if math.IsNaN(d) || d <= 0 || d >= 1 {
		return ErrInvalidDampingFactor
	}
	return nil
}
