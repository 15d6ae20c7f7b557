package extract

import (
	"context"

	"github.com/cmorenog/docextract/constants"
	"github.com/cmorenog/docextract/internal/lines"
)

// Field is one attributed value pulled from the document. SourceLine is
// the 1-based index into the reconstructed line sequence; 0 means the
// origin is unknown (possible when the model omits line attribution).
// Value is never empty: empty results are dropped before a Field is
// emitted.
type Field struct {
	Name       string `json:"name"`
	Value      string `json:"value"`
	SourceLine int    `json:"source_line,omitempty"`
}

// Request is the input contract: flattened document text plus the
// requested field-category labels, order-significant.
type Request struct {
	Text   string
	Fields []string
}

// Extractor is the contract both strategies implement: the AI variant
// and the manual regex variant are interchangeable behind it.
type Extractor interface {
	Extract(ctx context.Context, text string, relevant []lines.Line, fields []string) ([]Field, error)
}

// Config carries the extraction thresholds. Zero values take the tuned
// defaults from constants; injecting different limits lets a document
// family with large legitimate quantities raise the bar without
// touching the algorithm.
type Config struct {
	MaxTextChars          int
	HighQuantityThreshold int
	MaxQuantity           int
	MaxQuantityNoContext  int
}

func (c Config) withDefaults() Config {
	if c.MaxTextChars <= 0 {
		c.MaxTextChars = constants.DefaultMaxTextChars
	}
	if c.HighQuantityThreshold <= 0 {
		c.HighQuantityThreshold = constants.HighQuantityThreshold
	}
	if c.MaxQuantity <= 0 {
		c.MaxQuantity = constants.MaxQuantity
	}
	if c.MaxQuantityNoContext <= 0 {
		c.MaxQuantityNoContext = constants.MaxQuantityNoContext
	}
	return c
}
