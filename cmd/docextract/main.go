package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmorenog/docextract/internal/common"
	"github.com/cmorenog/docextract/internal/export"
	"github.com/cmorenog/docextract/internal/extract"
	"github.com/cmorenog/docextract/internal/llm"
	"github.com/cmorenog/docextract/internal/llm/openai"
	"github.com/cmorenog/docextract/internal/pdftext"
)

var defaultFields = []string{"Numero de Pedido", "Guia", "Nombre del Articulo", "Cantidad"}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: docextract <input-file> [field ...]")
		os.Exit(2)
	}
	path := os.Args[1]
	fields := os.Args[2:]
	if len(fields) == 0 {
		fields = defaultFields
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(2)
	}

	text, err := readInput(path, logger)
	if err != nil {
		logger.Error("read input", "path", path, "error", err)
		os.Exit(1)
	}

	var gen llm.TextGenerator
	if cfg.LLM.APIKey != "" {
		gen = openai.NewClient(openai.Config{
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set; running manual extraction only")
	}

	pipe := extract.NewPipeline(logger, extract.Config{MaxTextChars: cfg.Extract.MaxTextChars}, gen)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	out, err := pipe.Run(ctx, extract.Request{Text: text, Fields: fields})
	if err != nil {
		if errors.Is(err, common.ErrNothingExtracted) {
			logger.Error("no fields extracted", "path", path)
			os.Exit(1)
		}
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	xlsx, err := export.NewService(logger).FieldsXLSX(out, fields)
	if err != nil {
		logger.Error("build workbook", "error", err)
		os.Exit(1)
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".xlsx"
	if err := os.WriteFile(outPath, xlsx, 0o644); err != nil {
		logger.Error("write workbook", "path", outPath, "error", err)
		os.Exit(1)
	}

	logger.Info("done", "fields", len(out), "output", outPath)
}

func readInput(path string, logger *slog.Logger) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, pages, err := pdftext.NewExtractor(logger).ExtractText(path)
		if err != nil {
			return "", err
		}
		logger.Info("input.pdf", "path", path, "pages", pages, "bytes", len(text))
		return text, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
