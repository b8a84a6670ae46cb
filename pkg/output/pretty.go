package output

import (
	"fmt"
	"io"

	"github.com/e12tools/resistor-combinator/internal/search"
	"github.com/e12tools/resistor-combinator/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyLookup outputs a human-readable description of one best match.
func PrettyLookup(w io.Writer, r search.Record) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "--- Best match for %s ---\n", format.Ohms(r.Target))
	_, _ = p.Fprintf(w, "R1       | %s\n", format.Ohms(r.A))
	_, _ = p.Fprintf(w, "R2       | %s\n", format.Ohms(r.B))
	_, _ = p.Fprintf(w, "Function | %s <%s>\n", r.Operator, r.Operator.Symbol())
	_, _ = p.Fprintf(w, "Value    | %s (%.4fΩ)\n", format.Ohms(r.Value), r.Value)
	_, _ = p.Fprintf(w, "Diff     | %.4fΩ (%s)\n", r.Diff, format.Percent(r.PercentDiff))
}

// PrettySummary outputs run totals with grouped digits.
func PrettySummary(w io.Writer, s search.Summary, path string) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "--- Wrote %d targets to %s ---\n", s.Targets, path)
	_, _ = p.Fprintf(w, "Matches within tolerance | %d\n", s.ExactMatches)
	_, _ = p.Fprintf(w, "Mean difference          | %s\n", format.Percent(s.MeanPercentDiff))
	_, _ = p.Fprintf(w, "Worst difference         | %s at %s\n", format.Percent(s.WorstPercentDiff), format.Ohms(s.WorstTarget))
	_, _ = fmt.Fprintf(w, "Elapsed                  | %s\n", s.Elapsed)
}
