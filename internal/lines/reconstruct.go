package lines

import (
	"regexp"
	"strings"

	"github.com/cmorenog/docextract/constants"
)

// Line is one reconstructed record-sized unit of text. Index is the
// 1-based position within the document's line sequence and stays stable
// for the duration of one extraction run.
type Line struct {
	Index int
	Text  string
}

var (
	reNewline = regexp.MustCompile(`\r?\n`)

	// Record-start markers tried in order on the degraded path. The
	// load prefix opens every record in the documents we see; the order
	// prefix and the generic short-code shape cover layouts that drop
	// it. At least 3 digits required so incidental abbreviations
	// ("No-12") don't trigger a resegmentation.
	markerPatterns = []*regexp.Regexp{
		regexp.MustCompile(regexp.QuoteMeta(constants.LoadPrefix) + `\d+`),
		regexp.MustCompile(regexp.QuoteMeta(constants.OrderPrefix) + `\d+`),
		regexp.MustCompile(`\b[A-Z]{2,3}-\d{3,}`),
	}

	reInnerSpace = regexp.MustCompile(`\s+`)

	reAnchor = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(constants.AnchorPhrase))
)

// Reconstruct turns a raw text blob into ordered logical lines. The
// naive newline split wins whenever it yields enough lines; otherwise
// the text probably lost its line breaks (a common PDF text-layer
// failure) and record boundaries are recovered from marker prefixes,
// or, failing that, from the repeating article anchor phrase.
// Never returns an error: the worst case is the naive split itself.
func Reconstruct(text string) []Line {
	naive := splitTrim(text)
	if len(naive) >= constants.MinNaiveLines {
		return number(naive)
	}

	if segs := splitOnMarkers(text); len(segs) > 0 {
		return number(segs)
	}
	if segs := splitOnAnchor(text); len(segs) > 1 {
		return number(segs)
	}
	return number(naive)
}

func splitTrim(text string) []string {
	var out []string
	for _, raw := range reNewline.Split(text, -1) {
		if s := strings.TrimSpace(raw); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitOnMarkers treats each marker occurrence as the start of one
// logical line spanning to the next marker (or end of text). Text
// before the first marker is header noise and is dropped, as are
// candidates under the minimum segment length.
func splitOnMarkers(text string) []string {
	for _, re := range markerPatterns {
		locs := re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		starts := make([]int, len(locs))
		for i, l := range locs {
			starts[i] = l[0]
		}
		return segmentsAt(text, starts)
	}
	return nil
}

// splitOnAnchor cuts the text at each occurrence of the fixed article
// anchor phrase. The prefix before the first anchor is kept when it is
// long enough to be a record of its own.
func splitOnAnchor(text string) []string {
	locs := reAnchor.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	starts := make([]int, len(locs))
	for i, l := range locs {
		starts[i] = l[0]
	}
	if starts[0] > 0 {
		starts = append([]int{0}, starts...)
	}
	return segmentsAt(text, starts)
}

func segmentsAt(text string, starts []int) []string {
	var out []string
	for i, s := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		seg := strings.TrimSpace(reInnerSpace.ReplaceAllString(text[s:end], " "))
		if len(seg) < constants.MinSegmentChars {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// number assigns 1-based indices after all filtering.
func number(segs []string) []Line {
	out := make([]Line, 0, len(segs))
	for i, s := range segs {
		out = append(out, Line{Index: i + 1, Text: s})
	}
	return out
}
