package extract

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/cmorenog/docextract/constants"
	"github.com/cmorenog/docextract/internal/lines"
)

// rule pairs a pattern with optional post-processing. A post func
// returning "" rejects the match. Adding a category is a data change
// here, not a new branch.
type rule struct {
	pattern *regexp.Regexp
	post    func(string) string
	min     int
}

var (
	reArticleLabel = regexp.MustCompile(`(?i)nombre del art[ií]culo:\s*([^\n]+)`)
	reArticleRun   = regexp.MustCompile(`[A-ZÁÉÍÓÚÑ0-9]["'A-ZÁÉÍÓÚÑ0-9 ./-]*(?:CORVI|SONACA|TUBOS)["'A-ZÁÉÍÓÚÑ0-9 ./-]*`)
	reLeadMarkers  = regexp.MustCompile(`^(?:(?:CG|CPOV)-\d+\s*)+`)
	reQtyTail      = regexp.MustCompile(`\s*\d+\s*(?:` + unitAlternation() + `)\.?\s*$`)
)

var categoryRules = map[constants.FieldCategory][]rule{
	constants.OrderNumber: {
		{pattern: regexp.MustCompile(constants.OrderPrefix + `\d+`)},
	},
	constants.LoadID: {
		{pattern: regexp.MustCompile(constants.LoadPrefix + `\d+`)},
	},
	constants.ArticleName: {
		{pattern: reArticleLabel, min: constants.MinArticleChars},
		{pattern: reArticleRun, post: trimArticle, min: constants.MinArticleChars},
	},
}

// trimArticle strips record markers off the front and a trailing
// quantity+unit off the back of an uppercase article run.
func trimArticle(s string) string {
	s = reLeadMarkers.ReplaceAllString(s, "")
	s = reQtyTail.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ManualExtractor is the deterministic regex strategy: the fallback
// behind the AI variant, and the primary when no AI capability is
// wired. Each requested category is evaluated independently; a
// category that finds nothing contributes zero fields, never an error.
type ManualExtractor struct {
	cfg Config
	log *slog.Logger
}

func NewManualExtractor(cfg Config, logger *slog.Logger) *ManualExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &ManualExtractor{cfg: cfg.withDefaults(), log: logger}
}

func (m *ManualExtractor) Extract(_ context.Context, text string, relevant []lines.Line, fields []string) ([]Field, error) {
	start := time.Now()

	var out []Field
	for _, label := range fields {
		cat, _ := constants.Canonicalize(label)
		switch cat {
		case constants.Quantity:
			out = append(out, scanQuantities(label, relevant, m.cfg)...)
		case constants.Generic:
			out = append(out, searchGeneric(label, relevant)...)
		default:
			out = append(out, m.applyRules(label, cat, text, relevant)...)
		}
	}
	out = dedupe(out)

	m.log.Info("extract.manual.ok",
		"requested", len(fields),
		"fields", len(out),
		"relevant_lines", len(relevant),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (m *ManualExtractor) applyRules(label string, cat constants.FieldCategory, text string, relevant []lines.Line) []Field {
	var out []Field
	for _, r := range categoryRules[cat] {
		for _, match := range r.pattern.FindAllStringSubmatch(text, -1) {
			value := match[0]
			if len(match) > 1 {
				value = match[1]
			}
			if r.post != nil {
				value = r.post(value)
			}
			value = strings.TrimSpace(value)
			if value == "" || len(value) < r.min {
				continue
			}
			out = append(out, Field{
				Name:       label,
				Value:      value,
				SourceLine: locate(relevant, value),
			})
		}
	}
	return out
}

// searchGeneric handles arbitrary user labels: a line-level substring
// search returning the matched lines, annotated with any embedded
// numbers found on them.
func searchGeneric(label string, ls []lines.Line) []Field {
	needle := strings.ToUpper(strings.TrimSpace(label))
	if needle == "" {
		return nil
	}
	var out []Field
	for _, ln := range ls {
		if !strings.Contains(strings.ToUpper(ln.Text), needle) {
			continue
		}
		value := ln.Text
		if nums := reDigitRun.FindAllString(ln.Text, -1); len(nums) > 0 {
			value += " (" + strings.Join(nums, ", ") + ")"
		}
		out = append(out, Field{Name: label, Value: value, SourceLine: ln.Index})
	}
	return out
}

// locate attributes a value to the first line containing it; 0 when no
// line does (e.g. the match spans a segment boundary).
func locate(ls []lines.Line, value string) int {
	for _, ln := range ls {
		if strings.Contains(ln.Text, value) {
			return ln.Index
		}
	}
	return 0
}
