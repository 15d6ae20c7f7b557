package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cmorenog/docextract/constants"
	"github.com/cmorenog/docextract/internal/lines"
)

var (
	reQuantityToken = regexp.MustCompile(`(?i)\b(\d+)\s*(?:` + unitAlternation() + `)\b`)
	reOrderID       = regexp.MustCompile(`(?i)CPOV-(\d+)`)
)

func unitAlternation() string {
	quoted := make([]string, len(constants.UnitTokens))
	for i, t := range constants.UnitTokens {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(quoted, "|")
}

// scanQuantities runs the per-line quantity scan. Upstream layout
// extraction sometimes merges two adjacent table rows without a
// separator, so a digit run next to a unit marker may really be the
// tail of an order code. Per candidate on a line:
//
//  1. the line must also carry an article marker, or nothing on it is
//     trusted;
//  2. candidates above the high threshold are rejected when any order
//     identifier on the line contains the candidate digits, or the text
//     before the candidate holds an order identifier whose digits end
//     with it;
//  3. the shared validator gets the final say, with the full line as
//     context.
//
// First accepted value wins per line. A value string accepted anywhere
// in the document suppresses later identical values (cross-line dedup).
func scanQuantities(name string, ls []lines.Line, cfg Config) []Field {
	cfg = cfg.withDefaults()

	seen := make(map[string]struct{})
	var out []Field

	for _, ln := range ls {
		if !containsAnyFold(ln.Text, constants.ArticleKeywords) {
			continue
		}

		for _, m := range reQuantityToken.FindAllStringSubmatchIndex(ln.Text, -1) {
			candidate := ln.Text[m[2]:m[3]]
			n, err := strconv.Atoi(candidate)
			if err != nil {
				continue
			}

			if n > cfg.HighQuantityThreshold {
				if orderDigitsContain(ln.Text, candidate) {
					continue
				}
				if orderDigitsEndWith(ln.Text[:m[2]], candidate) {
					continue
				}
			}

			v, ok := ValidateQuantity(candidate, ln.Text, cfg)
			if !ok {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, Field{Name: name, Value: v, SourceLine: ln.Index})
			break // first accepted value per line
		}
	}
	return out
}

// orderDigitsContain reports whether the line's order identifier has a
// numeric portion containing candidate as a substring — the signature
// of an order code's tail digits glued onto a would-be quantity.
func orderDigitsContain(s, candidate string) bool {
	m := reOrderID.FindStringSubmatch(s)
	return m != nil && strings.Contains(m[1], candidate)
}

// orderDigitsEndWith reports whether any order identifier in s has
// digits ending with candidate — the candidate is then a split
// remainder of that code, not an independent quantity.
func orderDigitsEndWith(s, candidate string) bool {
	for _, m := range reOrderID.FindAllStringSubmatch(s, -1) {
		if strings.HasSuffix(m[1], candidate) {
			return true
		}
	}
	return false
}
