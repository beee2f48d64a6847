/*
Estimates PageRank scores for the pages of a closed corpus.
*/
package ranker

import (
	"sort"

	"golang.org/x/xerrors"
)

/*
   PageRank models a random surfer. The surfer lands on some page of the
   corpus and from then on, at every step, does one of two things:

       With probability equal to the damping factor the surfer follows one
       of the outbound links of the current page, picked uniformly.

       Otherwise the surfer jumps to a page picked uniformly from the whole
       corpus. A page without outbound links (a sink) always behaves this way.

   The PageRank of a page is the long-run probability of finding the surfer
   on it. Two estimators are provided:

       SampleRank walks the surfer for a fixed number of steps and reports
       visit frequencies. It is stochastic; its accuracy grows with the number
       of samples.

       IterateRank solves the PageRank fixed-point equation by relaxation until
       no score moves by more than ConvergenceThreshold. It is deterministic.

   Both return a RankTable whose values lie in [0, 1] and sum to 1.
*/

var (
	// ErrInvalidDampingFactor is returned when the damping factor is not in the (0, 1) range.
	ErrInvalidDampingFactor = xerrors.New("damping factor must be in the range (0, 1)")

	// ErrInvalidSampleCount is returned when a negative sample count is configured.
	ErrInvalidSampleCount = xerrors.New("sample count must be at least 1")

	// ErrUnknownPage is returned when a page is not part of the corpus.
	ErrUnknownPage = xerrors.New("page is not part of the corpus")

	// ErrNotConverged is returned by IterateRank when the configured
	// iteration limit is reached before the scores converge.
	ErrNotConverged = xerrors.New("PageRank scores did not converge")
)

// RankTable maps each page to its PageRank score.
type RankTable map[string]float64

// Sum returns the sum of all scores in the table.
func (t RankTable) Sum() float64 {
	var sum float64
	for _, page := range t.Pages() {
		sum += t[page]
	}
	return sum
}

// Pages returns the pages in the table in lexicographic order.
func (t RankTable) Pages() []string {
	pages := make([]string, 0, len(t))
	for page := range t {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// Distribution is a probability distribution over the pages of a corpus.
type Distribution map[string]float64
