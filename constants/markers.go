package constants

// Marker prefixes identify records in dispatch documents. They double
// as record-boundary signals when a PDF text layer lost its line breaks
// and as collision checks against numbers torn off an order code.
const (
	LoadPrefix  = "CG-"
	OrderPrefix = "CPOV-"
)

// AnchorPhrase is the secondary segmentation anchor used when no
// marker prefix occurs anywhere in a degraded text blob.
const AnchorPhrase = "TUBOS PVC"

// ArticleKeywords mark a line as carrying a product record. A bare
// number+unit with none of these nearby is not a trustworthy quantity.
var ArticleKeywords = []string{"CORVI", "SONACA", "TUBOS PVC", "TUBOS"}

// UnitTokens are the unit abbreviations that may trail a quantity.
var UnitTokens = []string{"UND", "PCS", "UNIDADES"}

// QuantityContextWords make surrounding context authoritative during
// quantity validation (a value next to one of these skips the narrow
// default range check).
var QuantityContextWords = []string{"UND", "PCS", "UNIDADES", "CANTIDAD", "QTY"}

// RelevanceKeywords select the lines worth sending to extraction.
var RelevanceKeywords = []string{"TUBOS", "CORVI", "SONACA", LoadPrefix, OrderPrefix}
