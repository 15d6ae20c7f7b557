package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cmorenog/docextract/constants"
)

var reDigitRun = regexp.MustCompile(`\d+`)

// ValidateQuantity is the single source of truth for "is this number a
// plausible quantity", shared by the AI post-processing and the manual
// scan. It extracts the first digit run from raw and range-checks it:
// context containing a unit/quantity word is authoritative and admits
// the full sanity range; without context only the narrower default
// range passes. Returns the normalized digit string.
func ValidateQuantity(raw, context string, cfg Config) (string, bool) {
	cfg = cfg.withDefaults()

	digits := reDigitRun.FindString(raw)
	if digits == "" {
		return "", false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", false
	}
	if n <= 0 || n > cfg.MaxQuantity {
		return "", false
	}
	if context != "" && containsAnyFold(context, constants.QuantityContextWords) {
		return digits, true
	}
	if n > cfg.MaxQuantityNoContext {
		return "", false
	}
	return digits, true
}

// dedupe drops any field whose exact (name, value) pair was already
// emitted in this run, preserving first-seen order.
func dedupe(fs []Field) []Field {
	if len(fs) == 0 {
		return fs
	}
	seen := make(map[string]struct{}, len(fs))
	out := fs[:0]
	for _, f := range fs {
		key := f.Name + "\x00" + f.Value
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
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
