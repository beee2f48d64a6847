/*
   Reads a directory of HTML documents and extracts the links of each page.
*/

package crawler

import (
	"io/fs"
	"strings"

	"github.com/Ahmed-Sermani/pagerank/corpus"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// Crawler collects the raw links of every HTML document found at the top
// level of a corpus directory. Each document becomes a page named after its
// file name; its raw links are the href values found in its anchor tags.
type Crawler struct {
	extractor LinkExtractor
	logger    *logrus.Entry
}

// Config encapsulates the settings for a Crawler.
type Config struct {
	// Extractor pulls the href values out of a document. If not specified,
	// a RegexExtractor is used.
	Extractor LinkExtractor

	// Logger for reporting crawled pages. If not specified, the standard
	// logrus logger is used.
	Logger *logrus.Entry
}

func NewCrawler(cfg Config) *Crawler {
	if cfg.Extractor == nil {
		cfg.Extractor = RegexExtractor{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Crawler{
		extractor: cfg.Extractor,
		logger:    cfg.Logger,
	}
}

// Crawl returns the raw links of each .html file in the root of fsys. Links
// are returned as found; pruning them is left to corpus.Build.
//
// Documents that cannot be read or parsed do not stop the crawl; all such
// failures are reported together once every document has been visited.
func (c *Crawler) Crawl(fsys fs.FS) (corpus.RawLinks, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, xerrors.Errorf("list corpus documents: %w", err)
	}

	var (
		raw      = make(corpus.RawLinks)
		crawlErr error
	)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".html") {
			continue
		}

		links, err := c.extract(fsys, name)
		if err != nil {
			crawlErr = multierror.Append(crawlErr, xerrors.Errorf("crawl %q: %w", name, err))
			continue
		}

		raw[name] = nil
		for _, link := range links {
			raw.Add(name, link)
		}
		c.logger.WithFields(logrus.Fields{
			"page":  name,
			"links": len(links),
		}).Debug("crawled page")
	}

	if crawlErr != nil {
		return nil, crawlErr
	}
	return raw, nil
}

func (c *Crawler) extract(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return c.extractor.ExtractLinks(f)
}
