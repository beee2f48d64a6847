/*
Models a closed corpus of pages as a directed link graph.
*/
package corpus

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/xerrors"
)

// ErrEmptyCorpus is returned when a corpus would contain no pages. Ranking
// is undefined for such a corpus.
var ErrEmptyCorpus = xerrors.New("corpus contains no pages")

// RawLinks maps each page to the set of link targets extracted from it. The
// targets are unfiltered; they may point outside the corpus or back to the
// page itself.
type RawLinks map[string]mapset.Set[string]

// Add records a raw link from page to target, creating the page entry on
// first use.
func (r RawLinks) Add(page, target string) {
	links := r[page]
	if links == nil {
		links = mapset.NewThreadUnsafeSet[string]()
		r[page] = links
	}
	links.Add(target)
}

// Corpus is an immutable link graph where every link target is a page of the
// corpus and no page links to itself.
//
// Pages are kept in lexicographic order; the position of a page in that order
// is its index.
type Corpus struct {
	pages []string
	index map[string]int

	// outbound holds the sorted indices of the pages linked from each page.
	outbound [][]int
}

// Build creates a Corpus from the raw links extracted for each page. Links to
// pages that are not part of raw and self-links are pruned.
func Build(raw RawLinks) (*Corpus, error) {
	if len(raw) == 0 {
		return nil, xerrors.Errorf("build corpus: %w", ErrEmptyCorpus)
	}

	c := &Corpus{
		pages: make([]string, 0, len(raw)),
		index: make(map[string]int, len(raw)),
	}
	for page := range raw {
		c.pages = append(c.pages, page)
	}
	sort.Strings(c.pages)

	known := mapset.NewThreadUnsafeSet(c.pages...)
	for i, page := range c.pages {
		c.index[page] = i
	}

	c.outbound = make([][]int, len(c.pages))
	for i, page := range c.pages {
		var targets []string
		if raw[page] != nil {
			// Intersect requires both operands to share the same set implementation.
			links := mapset.NewThreadUnsafeSet(raw[page].ToSlice()...).Intersect(known)
			links.Remove(page)
			targets = links.ToSlice()
		}

		out := make([]int, 0, len(targets))
		for _, dst := range targets {
			out = append(out, c.index[dst])
		}
		sort.Ints(out)
		c.outbound[i] = out
	}

	return c, nil
}

// Len returns the number of pages in the corpus.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pages)
}

// Pages returns the pages of the corpus in lexicographic order.
func (c *Corpus) Pages() []string {
	return append([]string(nil), c.pages...)
}

// Page returns the page at index i.
func (c *Corpus) Page(i int) string { return c.pages[i] }

// Index returns the index of page and whether the page is part of the corpus.
func (c *Corpus) Index(page string) (int, bool) {
	i, ok := c.index[page]
	return i, ok
}

// Contains reports whether page is part of the corpus.
func (c *Corpus) Contains(page string) bool {
	_, ok := c.index[page]
	return ok
}

// Links returns the pages linked from page in lexicographic order. Unknown
// pages have no links.
func (c *Corpus) Links(page string) []string {
	i, ok := c.index[page]
	if !ok {
		return nil
	}

	links := make([]string, len(c.outbound[i]))
	for j, dst := range c.outbound[i] {
		links[j] = c.pages[dst]
	}
	return links
}

// OutDegree returns the number of pages linked from page.
func (c *Corpus) OutDegree(page string) int {
	i, ok := c.index[page]
	if !ok {
		return 0
	}
	return len(c.outbound[i])
}

// IsSink reports whether page is part of the corpus and has no outbound links.
func (c *Corpus) IsSink(page string) bool {
	i, ok := c.index[page]
	return ok && len(c.outbound[i]) == 0
}

// Outbound returns the indices of the pages linked from the page at index i.
// The returned slice must not be modified.
func (c *Corpus) Outbound(i int) []int { return c.outbound[i] }
