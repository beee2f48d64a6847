package crawler

import (
	"io"
	"regexp"

	"golang.org/x/net/html"
	"golang.org/x/xerrors"
)

var (
	_ LinkExtractor = RegexExtractor{}
	_ LinkExtractor = HTMLExtractor{}

	anchorHrefRegex = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)
)

// LinkExtractor is implemented by types that can extract the href values of
// the anchor tags of an HTML document.
type LinkExtractor interface {
	ExtractLinks(r io.Reader) ([]string, error)
}

// ExtractorByName returns the LinkExtractor registered under name. Supported
// names are "regex" and "html".
func ExtractorByName(name string) (LinkExtractor, error) {
	switch name {
	case "regex", "":
		return RegexExtractor{}, nil
	case "html":
		return HTMLExtractor{}, nil
	default:
		return nil, xerrors.Errorf("unsupported link extractor: %q", name)
	}
}

// RegexExtractor scans the raw document with a single pattern matching
// double-quoted href attributes of anchor tags. It does not parse the
// document, so anchors inside comments or scripts are reported too.
type RegexExtractor struct{}

func (RegexExtractor) ExtractLinks(r io.Reader) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var links []string
	for _, match := range anchorHrefRegex.FindAllSubmatch(content, -1) {
		links = append(links, string(match[1]))
	}
	return links, nil
}

// HTMLExtractor tokenizes the document and reports the href attribute of each
// anchor start tag, regardless of quoting style or letter case.
type HTMLExtractor struct{}

func (HTMLExtractor) ExtractLinks(r io.Reader) ([]string, error) {
	var (
		links []string
		z     = html.NewTokenizer(r)
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return links, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" {
				continue
			}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "href" {
					links = append(links, string(val))
				}
			}
		}
	}
}
