package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cmorenog/docextract/constants"
	"github.com/cmorenog/docextract/internal/lines"
	"github.com/cmorenog/docextract/internal/llm"
)

// AIExtractor asks a text-generation capability to extract the fields,
// then re-validates every returned field as untrusted input. Any miss
// (transport failure, malformed output, wrong shape, or a response
// with no usable fields) falls back to the manual strategy,
// unconditionally and silently: the caller never sees a partial
// AI/manual merge or an AI error.
type AIExtractor struct {
	gen      llm.TextGenerator
	fallback *ManualExtractor
	cfg      Config
	log      *slog.Logger
}

func NewAIExtractor(gen llm.TextGenerator, fallback *ManualExtractor, cfg Config, logger *slog.Logger) *AIExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &AIExtractor{gen: gen, fallback: fallback, cfg: cfg.withDefaults(), log: logger}
}

func (a *AIExtractor) Extract(ctx context.Context, text string, relevant []lines.Line, fields []string) ([]Field, error) {
	if a.gen == nil {
		return a.fallback.Extract(ctx, text, relevant, fields)
	}
	start := time.Now()

	prompt := llm.BuildExtractionPrompt(fields, relevant, a.cfg.MaxTextChars)

	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		a.log.Warn("extract.ai.fallback", "reason", "generate", "error", err)
		return a.fallback.Extract(ctx, text, relevant, fields)
	}

	payloads, err := llm.ParseExtractionResponse(raw, a.log)
	if err != nil {
		a.log.Warn("extract.ai.fallback", "reason", "parse", "error", err)
		return a.fallback.Extract(ctx, text, relevant, fields)
	}

	out := a.acceptPayloads(payloads, relevant)
	if len(out) == 0 {
		a.log.Warn("extract.ai.fallback", "reason", "empty", "returned", len(payloads))
		return a.fallback.Extract(ctx, text, relevant, fields)
	}
	a.log.Info("extract.ai.ok",
		"requested", len(fields),
		"returned", len(payloads),
		"accepted", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// acceptPayloads re-validates raw model output through the same
// validator the manual path uses — AI output is never trusted as
// pre-sanitized.
func (a *AIExtractor) acceptPayloads(payloads []llm.FieldPayload, relevant []lines.Line) []Field {
	byIndex := make(map[int]string, len(relevant))
	for _, ln := range relevant {
		byIndex[ln.Index] = ln.Text
	}

	var out []Field
	for _, p := range payloads {
		lineText, known := byIndex[p.Line]
		line := p.Line
		if !known {
			// Out-of-range attribution: keep the value, drop the claim.
			line = 0
		}

		value := strings.TrimSpace(p.Value)
		if value == "" {
			continue
		}

		if cat, _ := constants.Canonicalize(p.Name); cat == constants.Quantity {
			v, ok := ValidateQuantity(value, lineText, a.cfg)
			if !ok {
				continue
			}
			value = v
		}

		out = append(out, Field{Name: p.Name, Value: value, SourceLine: line})
	}
	return dedupe(out)
}
