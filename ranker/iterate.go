package ranker

import (
	"math"

	"github.com/Ahmed-Sermani/pagerank/corpus"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// IterateRank computes PageRank scores by repeatedly applying
//
//	rank'(p) = (1-d)/N + d * Σ rank(q)/outDegree(q)
//
// over every page q linking to p, starting from a uniform distribution. Sink
// pages are treated as linking to every page, so their score is spread evenly
// over the corpus. Iteration stops once no score changed by more than
// ConvergenceThreshold in the last round and the result is normalized to sum
// to 1.
//
// The output only depends on the corpus and the damping factor.
func IterateRank(c *corpus.Corpus, cfg Config) (RankTable, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("PageRank iterator config validation failed: %w", err)
	}
	if c.Len() == 0 {
		return nil, xerrors.Errorf("iterate PageRank: %w", corpus.ErrEmptyCorpus)
	}

	var (
		numPages = c.Len()
		n        = float64(numPages)
		d        = cfg.DampingFactor
		inbound  = inboundLinks(c)
		prev     = make([]float64, numPages)
		next     = make([]float64, numPages)
		rounds   int
	)
	for i := range prev {
		prev[i] = 1 / n
	}

	for {
		if cfg.MaxIterations > 0 && rounds == cfg.MaxIterations {
			return nil, xerrors.Errorf("iterate PageRank after %d rounds: %w", rounds, ErrNotConverged)
		}
		rounds++

		// Score held by sinks is spread evenly over every page.
		var sinkScore float64
		for q := 0; q < numPages; q++ {
			if len(c.Outbound(q)) == 0 {
				sinkScore += prev[q]
			}
		}

		var maxDelta float64
		for p := 0; p < numPages; p++ {
			linked := sinkScore / n
			for _, q := range inbound[p] {
				linked += prev[q] / float64(len(c.Outbound(q)))
			}

			next[p] = (1-d)/n + d*linked
			maxDelta = math.Max(maxDelta, math.Abs(next[p]-prev[p]))
		}

		prev, next = next, prev
		if maxDelta < ConvergenceThreshold {
			break
		}
	}

	var total float64
	for _, score := range prev {
		total += score
	}

	ranks := make(RankTable, numPages)
	for i, score := range prev {
		ranks[c.Page(i)] = score / total
	}

	cfg.Logger.WithFields(logrus.Fields{
		"pages":  numPages,
		"rounds": rounds,
	}).Debug("PageRank scores converged")
	return ranks, nil
}

// inboundLinks returns, for each page index, the indices of the pages linking
// to it.
func inboundLinks(c *corpus.Corpus) [][]int {
	inbound := make([][]int, c.Len())
	for q := 0; q < c.Len(); q++ {
		for _, p := range c.Outbound(q) {
			inbound[p] = append(inbound[p], q)
		}
	}
	return inbound
}
