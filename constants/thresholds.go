package constants

// Tuning thresholds observed to work on real dispatch documents. They
// are starting heuristics, not principled limits; adjust per document
// family rather than editing the algorithms that consume them.
const (
	// MinNaiveLines is the minimum line count a plain newline split must
	// produce before we trust it. Fewer lines means the source text
	// probably lost its line breaks and needs marker resegmentation.
	MinNaiveLines = 5

	// MinSegmentChars discards resegmented candidates shorter than this
	// (noise guard on the degraded path).
	MinSegmentChars = 10

	// MinArticleChars discards article-name matches shorter than this.
	MinArticleChars = 6

	// HighQuantityThreshold separates plausible unit counts from numbers
	// that are probably a misattributed order-code fragment. Candidates
	// above it must survive the order-code collision checks.
	HighQuantityThreshold = 500

	// MaxQuantity is the hard sanity bound on any quantity.
	MaxQuantity = 99999

	// MaxQuantityNoContext is the plausible range ceiling applied when
	// no unit/quantity word supports the value.
	MaxQuantityNoContext = 9999

	// DefaultMaxTextChars caps the text excerpt sent to the model.
	DefaultMaxTextChars = 30000
)
