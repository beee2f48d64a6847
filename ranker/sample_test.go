package ranker_test

import (
	"github.com/Ahmed-Sermani/pagerank/corpus"
	"github.com/Ahmed-Sermani/pagerank/ranker"
	"github.com/Ahmed-Sermani/pagerank/ranker/mocks"
	"github.com/golang/mock/gomock"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(SampleRankTestSuite))

type SampleRankTestSuite struct{}

func (s *SampleRankTestSuite) TestWalkFollowsTransitionWeights(c *gc.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	cor := mustBuildCorpus(c, map[string][]string{
		"a.html": {"b.html"},
		"b.html": {"c.html"},
		"c.html": {},
	})

	rnd := mocks.NewMockRandomSource(ctrl)
	gomock.InOrder(
		// Start on a.html.
		rnd.EXPECT().Intn(3).Return(0),
		// a.html -> b.html: weights are [0.05, 0.9, 0.05].
		rnd.EXPECT().Float64().Return(0.5),
		// b.html -> c.html: weights are [0.05, 0.05, 0.9].
		rnd.EXPECT().Float64().Return(0.99),
		// c.html is a sink: weights are uniform.
		rnd.EXPECT().Float64().Return(0.1),
	)

	ranks, err := ranker.SampleRank(cor, ranker.Config{
		DampingFactor: 0.85,
		Samples:       4,
		Rand:          rnd,
	})
	c.Assert(err, gc.IsNil)
	c.Assert(ranks, gc.DeepEquals, ranker.RankTable{
		"a.html": 0.5,
		"b.html": 0.25,
		"c.html": 0.25,
	})
}

func (s *SampleRankTestSuite) TestSinglePage(c *gc.C) {
	cor := mustBuildCorpus(c, map[string][]string{"only.html": {}})

	for _, n := range []int{1, 10, 1000} {
		ranks, err := ranker.SampleRank(cor, ranker.Config{Samples: n, Rand: seededRand(1)})
		c.Assert(err, gc.IsNil)
		c.Assert(ranks, gc.DeepEquals, ranker.RankTable{"only.html": 1.0})
	}
}

func (s *SampleRankTestSuite) TestSumsToOne(c *gc.C) {
	for _, adj := range []map[string][]string{chainCorpus, mixedCorpus} {
		cor := mustBuildCorpus(c, adj)
		ranks, err := ranker.SampleRank(cor, ranker.Config{Samples: 997, Rand: seededRand(42)})
		c.Assert(err, gc.IsNil)
		c.Assert(ranks, gc.HasLen, cor.Len())
		assertScore(c, ranks.Sum(), 1.0, 1e-6, "sum")
		for page, score := range ranks {
			c.Assert(score >= 0, gc.Equals, true, gc.Commentf("page %q", page))
		}
	}
}

func (s *SampleRankTestSuite) TestReproducibleWithSameSeed(c *gc.C) {
	cor := mustBuildCorpus(c, mixedCorpus)

	first, err := ranker.SampleRank(cor, ranker.Config{Samples: 5000, Rand: seededRand(7)})
	c.Assert(err, gc.IsNil)
	second, err := ranker.SampleRank(cor, ranker.Config{Samples: 5000, Rand: seededRand(7)})
	c.Assert(err, gc.IsNil)
	c.Assert(first, gc.DeepEquals, second)
}

func (s *SampleRankTestSuite) TestApproachesIteratedScores(c *gc.C) {
	for _, adj := range []map[string][]string{chainCorpus, mixedCorpus} {
		cor := mustBuildCorpus(c, adj)

		exp, err := ranker.IterateRank(cor, ranker.Config{DampingFactor: 0.85})
		c.Assert(err, gc.IsNil)

		got, err := ranker.SampleRank(cor, ranker.Config{
			DampingFactor: 0.85,
			Samples:       100000,
			Rand:          seededRand(1234),
		})
		c.Assert(err, gc.IsNil)

		for page, score := range exp {
			assertScore(c, got[page], score, 0.01, page)
		}
	}
}

func (s *SampleRankTestSuite) TestDefaults(c *gc.C) {
	cor := mustBuildCorpus(c, chainCorpus)

	ranks, err := ranker.SampleRank(cor, ranker.Config{})
	c.Assert(err, gc.IsNil)
	assertScore(c, ranks.Sum(), 1.0, 1e-6, "sum")
}

func (s *SampleRankTestSuite) TestInvalidConfig(c *gc.C) {
	cor := mustBuildCorpus(c, chainCorpus)

	_, err := ranker.SampleRank(cor, ranker.Config{Samples: -1})
	c.Assert(xerrors.Is(err, ranker.ErrInvalidSampleCount), gc.Equals, true)

	_, err = ranker.SampleRank(cor, ranker.Config{DampingFactor: 1.2})
	c.Assert(xerrors.Is(err, ranker.ErrInvalidDampingFactor), gc.Equals, true)
}

func (s *SampleRankTestSuite) TestEmptyCorpus(c *gc.C) {
	_, err := ranker.SampleRank(nil, ranker.Config{})
	c.Assert(xerrors.Is(err, corpus.ErrEmptyCorpus), gc.Equals, true)
}
