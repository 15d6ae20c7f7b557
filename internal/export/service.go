package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cmorenog/docextract/internal/extract"
)

// Service produces XLSX bytes from extracted fields.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// FieldsXLSX returns an XLSX workbook with one row per extracted field,
// grouped by field name in the requested order. Names outside the
// requested list (shouldn't happen, but the model may rename) are
// appended after.
func (s *Service) FieldsXLSX(fields []extract.Field, requested []string) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Campos"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{"Campo", "Valor", "Línea"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, fd := range groupByName(fields, requested) {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, fd.Name)
		write(2, fd.Value)
		if fd.SourceLine > 0 {
			write(3, fd.SourceLine)
		} else {
			write(3, "")
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // field name
	_ = f.SetColWidth(sheet, "B", "B", 48) // value
	_ = f.SetColWidth(sheet, "C", "C", 8)  // line

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(fields),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// groupByName orders fields by their name's position in the requested
// labels, keeping the extraction order within each group.
func groupByName(fields []extract.Field, requested []string) []extract.Field {
	rank := make(map[string]int, len(requested))
	for i, name := range requested {
		if _, ok := rank[name]; !ok {
			rank[name] = i
		}
	}

	out := make([]extract.Field, 0, len(fields))
	done := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		if _, dup := done[name]; dup {
			continue
		}
		done[name] = struct{}{}
		for _, fd := range fields {
			if fd.Name == name {
				out = append(out, fd)
			}
		}
	}
	for _, fd := range fields {
		if _, ok := rank[fd.Name]; !ok {
			out = append(out, fd)
		}
	}
	return out
}
