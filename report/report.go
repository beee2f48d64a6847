/*
Formats rank tables for human consumption.
*/
package report

import (
	"fmt"
	"io"

	"github.com/Ahmed-Sermani/pagerank/ranker"
	"golang.org/x/xerrors"
)

// Write prints title followed by one "  page: score" line per page of ranks.
// Pages are listed in lexicographic order and scores are rounded to four
// decimal places.
func Write(w io.Writer, title string, ranks ranker.RankTable) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return xerrors.Errorf("write report %q: %w", title, err)
	}
	for _, page := range ranks.Pages() {
		if _, err := fmt.Fprintf(w, "  %s: %.4f\n", page, ranks[page]); err != nil {
			return xerrors.Errorf("write report %q: %w", title, err)
		}
	}
	return nil
}
