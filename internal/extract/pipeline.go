package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cmorenog/docextract/internal/common"
	"github.com/cmorenog/docextract/internal/lines"
	"github.com/cmorenog/docextract/internal/llm"
)

// Pipeline runs one document through normalization, line
// reconstruction, relevance filtering, field extraction, and final
// deduplication. All state is local to one Run call; a Pipeline is safe
// for concurrent use.
type Pipeline struct {
	log       *slog.Logger
	cfg       Config
	extractor Extractor
}

// NewPipeline wires the two-tier strategy: the AI variant over gen when
// one is provided, with the manual variant as its fallback; manual-only
// when gen is nil.
func NewPipeline(logger *slog.Logger, cfg Config, gen llm.TextGenerator) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()

	manual := NewManualExtractor(cfg, logger)
	var ex Extractor = manual
	if gen != nil {
		ex = NewAIExtractor(gen, manual, cfg, logger)
	}
	return &Pipeline{log: logger, cfg: cfg, extractor: ex}
}

// Run extracts the requested fields from one document's text.
// Empty/blank text yields an empty result set; the caller surfaces "no
// data". When both strategies produce nothing, the distinguishable
// common.ErrNothingExtracted is returned — the only recoverable
// condition this pipeline passes upward.
func (p *Pipeline) Run(ctx context.Context, req Request) ([]Field, error) {
	start := time.Now()

	if strings.TrimSpace(req.Text) == "" {
		p.log.Info("extract.pipeline.empty_input")
		return []Field{}, nil
	}

	text := lines.Normalize(req.Text)
	ls := lines.Reconstruct(text)
	relevant := lines.FilterRelevant(ls)
	if len(relevant) == 0 {
		// No keyword hit anywhere: give the strategies every line rather
		// than a guaranteed-empty excerpt.
		relevant = ls
	}

	out, err := p.extractor.Extract(ctx, text, relevant, req.Fields)
	if err != nil {
		return nil, common.WrapError(err, "extract")
	}
	out = dedupe(out)

	p.log.Info("extract.pipeline.ok",
		"requested", len(req.Fields),
		"lines", len(ls),
		"relevant_lines", len(relevant),
		"fields", len(out),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if len(out) == 0 {
		return nil, common.ErrNothingExtracted
	}
	return out, nil
}
