package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmorenog/docextract/internal/lines"
)

const sampleText = `CG-00014961 CPOV-000009927 TUBOS PVC SCH 40 6" CORVI-SONACA 40 UND
CG-00014962 CPOV-000009928 TUBOS PVC PRESION 1/2" CORVI-SONACA 25 UND
Transportadora: RUTA EXPRESS
Observaciones: entregar en bodega 3
Total registros: 2`

func sampleLines(t *testing.T) []lines.Line {
	t.Helper()
	ls := lines.Reconstruct(sampleText)
	require.Len(t, ls, 5)
	return ls
}

func TestManualExtractOrderNumbers(t *testing.T) {
	m := NewManualExtractor(Config{}, nil)

	got, err := m.Extract(context.Background(), sampleText, sampleLines(t), []string{"Numero de Pedido"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "CPOV-000009927", got[0].Value)
	require.Equal(t, 1, got[0].SourceLine)
	require.Equal(t, "CPOV-000009928", got[1].Value)
	require.Equal(t, 2, got[1].SourceLine)
}

func TestManualExtractLoadIDs(t *testing.T) {
	m := NewManualExtractor(Config{}, nil)

	got, err := m.Extract(context.Background(), sampleText, sampleLines(t), []string{"Guia"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "CG-00014961", got[0].Value)
	require.Equal(t, "CG-00014962", got[1].Value)
}

func TestManualExtractArticleNames(t *testing.T) {
	m := NewManualExtractor(Config{}, nil)

	got, err := m.Extract(context.Background(), sampleText, sampleLines(t), []string{"Nombre del Articulo"})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	// Markers and the quantity tail are trimmed off the uppercase run.
	require.Equal(t, `TUBOS PVC SCH 40 6" CORVI-SONACA`, got[0].Value)
}

func TestManualExtractArticleLabelPattern(t *testing.T) {
	m := NewManualExtractor(Config{}, nil)
	text := "Nombre del Articulo: CODO PVC 45 GRADOS"
	ls := []lines.Line{{Index: 1, Text: text}}

	got, err := m.Extract(context.Background(), text, ls, []string{"Articulo"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "CODO PVC 45 GRADOS", got[0].Value)
}

func TestManualExtractQuantities(t *testing.T) {
	m := NewManualExtractor(Config{}, nil)

	got, err := m.Extract(context.Background(), sampleText, sampleLines(t), []string{"Cantidad"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "40", got[0].Value)
	require.Equal(t, "25", got[1].Value)
}

func TestManualExtractGenericLabel(t *testing.T) {
	m := NewManualExtractor(Config{}, nil)

	got, err := m.Extract(context.Background(), sampleText, sampleLines(t), []string{"Transportadora"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 3, got[0].SourceLine)
	require.Contains(t, got[0].Value, "RUTA EXPRESS")
}

func TestManualExtractGenericAnnotatesNumbers(t *testing.T) {
	m := NewManualExtractor(Config{}, nil)
	ls := []lines.Line{{Index: 1, Text: "Bodega 3 pasillo 12"}}

	got, err := m.Extract(context.Background(), "Bodega 3 pasillo 12", ls, []string{"Bodega"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Contains(t, got[0].Value, "(3, 12)")
}

func TestManualExtractMissingCategoryYieldsNothing(t *testing.T) {
	m := NewManualExtractor(Config{}, nil)
	text := "sin registros utiles"
	ls := []lines.Line{{Index: 1, Text: text}}

	got, err := m.Extract(context.Background(), text, ls, []string{"Numero de Pedido", "Guia", "Cantidad"})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestManualExtractDedupesRepeatedMatches(t *testing.T) {
	m := NewManualExtractor(Config{}, nil)
	text := "CPOV-000000001 TUBOS CORVI y de nuevo CPOV-000000001"
	ls := []lines.Line{{Index: 1, Text: text}}

	got, err := m.Extract(context.Background(), text, ls, []string{"Pedido"})
	require.NoError(t, err)
	require.Len(t, got, 1)
}
