package chart

import (
	"fmt"
	"strings"

	"github.com/slidekit/slidekit-go/pkg/chart/layout"
)

// altTextMaxListed is the largest series enumerated point by point in
// alt text; longer series are summarized by count and endpoints.
const altTextMaxListed = 4

// AltText produces a one-line plain-prose description of the chart.
// Unlike the rendered markup, the text is not escaped.
func AltText(req Request) string {
	desc := req.Kind.DisplayName()
	if req.Title != "" {
		desc = fmt.Sprintf("%s titled '%s'", desc, req.Title)
	}

	n := len(req.Labels)
	if n > altTextMaxListed {
		return fmt.Sprintf("%s showing %d data points from %s to %s",
			desc, n, req.Labels[0], req.Labels[n-1])
	}

	pairs := make([]string, 0, n)
	for i, label := range req.Labels {
		pairs = append(pairs, fmt.Sprintf("%s: %s", label, layout.FormatValue(req.Values[i])))
	}
	return fmt.Sprintf("%s showing %s", desc, strings.Join(pairs, ", "))
}
