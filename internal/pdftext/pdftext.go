// Package pdftext turns a PDF's positioned text fragments into plain
// text with real line breaks, so downstream line reconstruction can
// trust "one line = one visual row" whenever the PDF allows it.
package pdftext

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"
)

// yTolerance groups fragments whose baselines differ by less than this
// many points into the same visual row.
const yTolerance = 2.0

type row struct {
	y     float64
	frags []pdf.Text
}

// Extractor reads positioned text out of PDF files page by page.
type Extractor struct {
	log *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{log: logger}
}

// ExtractText returns the document text with one line per visual row,
// pages separated by a blank line. Pages are read concurrently; a page
// that fails to parse contributes empty text instead of aborting the
// document.
func (e *Extractor) ExtractText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.log.Warn("pdftext.close_error", "path", path, "error", cerr)
		}
	}()

	n := r.NumPage()
	pageTexts := make([]string, n)

	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(pageNum int) {
			defer wg.Done()
			// The pdf package panics on some malformed content streams;
			// treat that the same as a failed page.
			defer func() {
				if rec := recover(); rec != nil {
					e.log.Warn("pdftext.page_panic", "page", pageNum, "detail", fmt.Sprint(rec))
				}
			}()
			p := r.Page(pageNum)
			if p.V.IsNull() {
				return
			}
			pageTexts[pageNum-1] = pageText(p.Content().Text)
		}(i)
	}
	wg.Wait()

	var nonEmpty []string
	for _, t := range pageTexts {
		if t != "" {
			nonEmpty = append(nonEmpty, t)
		}
	}
	text := strings.Join(nonEmpty, "\n\n")

	e.log.Info("pdftext.extract.ok",
		"path", path,
		"pages", n,
		"pages_with_text", len(nonEmpty),
		"bytes", len(text),
	)
	return text, n, nil
}

// pageText groups a page's fragments into visual rows and joins them in
// reading order.
func pageText(texts []pdf.Text) string {
	rows := groupIntoRows(texts)
	if len(rows) == 0 {
		return ""
	}

	// PDF Y grows upward: top-to-bottom reading order is descending Y.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	var b strings.Builder
	for i, rw := range rows {
		sort.SliceStable(rw.frags, func(a, c int) bool { return rw.frags[a].X < rw.frags[c].X })
		if i > 0 {
			b.WriteString("\n")
		}
		for j, fr := range rw.frags {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(strings.TrimSpace(fr.S))
		}
	}
	return b.String()
}

func groupIntoRows(texts []pdf.Text) []row {
	var rows []row
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < yTolerance {
				rows[i].frags = append(rows[i].frags, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: t.Y, frags: []pdf.Text{t}})
		}
	}
	return rows
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
