package ranker

import (
	"github.com/Ahmed-Sermani/pagerank/corpus"
	"golang.org/x/xerrors"
)

// Transition returns the probability distribution of the page visited after
// page when following the random surfer model with the given damping factor.
//
// Every page of the corpus receives (1-d)/N for the random jump and each page
// linked from page receives an additional d/k, where k is the number of
// outbound links. A sink page is treated as linking to every page, so the
// resulting distribution is uniform.
func Transition(c *corpus.Corpus, page string, dampingFactor float64) (Distribution, error) {
	if c.Len() == 0 {
		return nil, xerrors.Errorf("transition: %w", corpus.ErrEmptyCorpus)
	}
	if err := checkDampingFactor(dampingFactor); err != nil {
		return nil, xerrors.Errorf("transition: %w", err)
	}

	i, ok := c.Index(page)
	if !ok {
		return nil, xerrors.Errorf("transition from %q: %w", page, ErrUnknownPage)
	}

	weights := make([]float64, c.Len())
	transitionWeights(c, i, dampingFactor, weights)

	dist := make(Distribution, len(weights))
	for j, w := range weights {
		dist[c.Page(j)] = w
	}
	return dist, nil
}

// transitionWeights fills weights with the transition probabilities from the
// page at index src. weights is indexed like the corpus pages and must have
// exactly c.Len() entries.
func transitionWeights(c *corpus.Corpus, src int, dampingFactor float64, weights []float64) {
	n := float64(len(weights))
	out := c.Outbound(src)
	if len(out) == 0 {
		for j := range weights {
			weights[j] = 1 / n
		}
		return
	}

	jump := (1 - dampingFactor) / n
	for j := range weights {
		weights[j] = jump
	}

	follow := dampingFactor / float64(len(out))
	for _, dst := range out {
		weights[dst] += follow
	}
}
