package lines

import (
	"strings"

	"github.com/cmorenog/docextract/constants"
)

// FilterRelevant keeps only the lines likely to carry an extractable
// record: those containing a domain keyword, a brand tag, or one of the
// record marker prefixes. Order and original line numbers are
// preserved so downstream attribution stays traceable.
func FilterRelevant(ls []Line) []Line {
	var out []Line
	for _, ln := range ls {
		if containsAnyFold(ln.Text, constants.RelevanceKeywords) {
			out = append(out, ln)
		}
	}
	return out
}

func containsAnyFold(s string, keywords []string) bool {
	upper := strings.ToUpper(s)
	for _, kw := range keywords {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return true
		}
	}
	return false
}
