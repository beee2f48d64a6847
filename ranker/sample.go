package ranker

import (
	"github.com/Ahmed-Sermani/pagerank/corpus"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// SampleRank estimates PageRank scores by walking the random surfer over the
// corpus for cfg.Samples steps and returning the fraction of steps spent on
// each page. The walk starts on a page picked uniformly at random.
//
// Results depend on cfg.Rand; two calls with identically seeded sources
// return identical tables.
func SampleRank(c *corpus.Corpus, cfg Config) (RankTable, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("PageRank sampler config validation failed: %w", err)
	}
	if c.Len() == 0 {
		return nil, xerrors.Errorf("sample PageRank: %w", corpus.ErrEmptyCorpus)
	}

	var (
		numPages = c.Len()
		visits   = make([]int, numPages)
		weights  = make([]float64, numPages)
		cur      = cfg.Rand.Intn(numPages)
	)
	for step := 0; step < cfg.Samples; step++ {
		visits[cur]++
		if step == cfg.Samples-1 {
			break
		}

		transitionWeights(c, cur, cfg.DampingFactor, weights)
		cur = pickWeighted(weights, cfg.Rand.Float64())
	}

	ranks := make(RankTable, numPages)
	for i, count := range visits {
		ranks[c.Page(i)] = float64(count) / float64(cfg.Samples)
	}

	cfg.Logger.WithFields(logrus.Fields{
		"pages":   numPages,
		"samples": cfg.Samples,
	}).Debug("sampled PageRank")
	return ranks, nil
}

// pickWeighted returns the index whose cumulative weight range contains r.
// Rounding may leave r past the last boundary; the last index is returned then.
func pickWeighted(weights []float64, r float64) int {
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}
