package llm

import (
	"strconv"
	"strings"

	"github.com/cmorenog/docextract/constants"
	"github.com/cmorenog/docextract/internal/lines"
)

// BuildExtractionPrompt composes the extraction instruction: requested
// field labels, strict per-line independence rules, the single-JSON
// output contract, and the relevant lines each explicitly numbered.
// The numbered excerpt is capped at maxChars to bound request size.
func BuildExtractionPrompt(fields []string, ls []lines.Line, maxChars int) string {
	if maxChars <= 0 {
		maxChars = constants.DefaultMaxTextChars
	}

	parts := []string{
		"You are a document field extractor for dispatch and order documents.",
		"Extract the requested fields from the numbered lines below.",
		"Requested fields: " + strings.Join(fields, ", ") + ".",
		"Treat every line independently. Never combine a value found on one line with a record from another line.",
		`Return ONLY a single JSON object of the form {"fields": [{"name": string, "value": string, "line": number}]}.`,
		"Use the requested field label as 'name' and the 1-based line number the value came from as 'line'.",
		"Omit a field entirely when no value is confidently present on that line.",
		"Never output null or empty values.",
	}

	var b strings.Builder
	b.WriteString(strings.Join(parts, " "))
	b.WriteString("\n\nLines:\n")

	used := 0
	for _, ln := range ls {
		entry := strconv.Itoa(ln.Index) + ": " + ln.Text + "\n"
		if used+len(entry) > maxChars {
			b.WriteString("…(truncated)\n")
			break
		}
		b.WriteString(entry)
		used += len(entry)
	}
	return b.String()
}
