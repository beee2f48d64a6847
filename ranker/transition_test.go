package ranker_test

import (
	"github.com/Ahmed-Sermani/pagerank/corpus"
	"github.com/Ahmed-Sermani/pagerank/ranker"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(TransitionTestSuite))

type TransitionTestSuite struct{}

func (s *TransitionTestSuite) TestLinkedPage(c *gc.C) {
	cor := mustBuildCorpus(c, map[string][]string{
		"1.html": {"2.html", "3.html"},
		"2.html": {"3.html"},
		"3.html": {"2.html"},
	})

	dist, err := ranker.Transition(cor, "1.html", 0.85)
	c.Assert(err, gc.IsNil)
	c.Assert(dist, gc.HasLen, 3)
	assertScore(c, dist["1.html"], 0.05, 1e-9, "1.html")
	assertScore(c, dist["2.html"], 0.475, 1e-9, "2.html")
	assertScore(c, dist["3.html"], 0.475, 1e-9, "3.html")
	assertScore(c, ranker.RankTable(dist).Sum(), 1.0, 1e-9, "sum")
}

func (s *TransitionTestSuite) TestSinkIsUniform(c *gc.C) {
	cor := mustBuildCorpus(c, mixedCorpus)

	dist, err := ranker.Transition(cor, "e.html", 0.85)
	c.Assert(err, gc.IsNil)
	c.Assert(dist, gc.HasLen, 5)
	for page, p := range dist {
		assertScore(c, p, 0.2, 1e-12, page)
	}
}

func (s *TransitionTestSuite) TestSumsToOne(c *gc.C) {
	cor := mustBuildCorpus(c, mixedCorpus)

	for _, page := range cor.Pages() {
		for _, d := range []float64{0.1, 0.5, 0.85, 0.99} {
			dist, err := ranker.Transition(cor, page, d)
			c.Assert(err, gc.IsNil)
			c.Assert(dist, gc.HasLen, cor.Len())
			assertScore(c, ranker.RankTable(dist).Sum(), 1.0, 1e-9, page)
		}
	}
}

func (s *TransitionTestSuite) TestErrors(c *gc.C) {
	cor := mustBuildCorpus(c, chainCorpus)

	_, err := ranker.Transition(cor, "4.html", 0.85)
	c.Assert(xerrors.Is(err, ranker.ErrUnknownPage), gc.Equals, true)

	for _, d := range []float64{0, 1, -0.5, 1.5} {
		_, err = ranker.Transition(cor, "1.html", d)
		c.Assert(xerrors.Is(err, ranker.ErrInvalidDampingFactor), gc.Equals, true, gc.Commentf("damping %v", d))
	}

	_, err = ranker.Transition(nil, "1.html", 0.85)
	c.Assert(xerrors.Is(err, corpus.ErrEmptyCorpus), gc.Equals, true)
}
