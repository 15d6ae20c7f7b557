package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cmorenog/docextract/internal/extract"
)

func TestFieldsXLSX(t *testing.T) {
	fields := []extract.Field{
		{Name: "Cantidad", Value: "40", SourceLine: 1},
		{Name: "Guia", Value: "CG-00014961", SourceLine: 1},
		{Name: "Cantidad", Value: "25", SourceLine: 2},
	}

	b, err := NewService(nil).FieldsXLSX(fields, []string{"Guia", "Cantidad"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	const sheet = "Campos"

	get := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	require.Equal(t, "Campo", get("A1"))
	require.Equal(t, "Valor", get("B1"))
	require.Equal(t, "Línea", get("C1"))

	// Rows grouped by field name in the requested order.
	require.Equal(t, "Guia", get("A2"))
	require.Equal(t, "CG-00014961", get("B2"))
	require.Equal(t, "1", get("C2"))
	require.Equal(t, "Cantidad", get("A3"))
	require.Equal(t, "40", get("B3"))
	require.Equal(t, "Cantidad", get("A4"))
	require.Equal(t, "25", get("B4"))
	require.Equal(t, "2", get("C4"))
}

func TestFieldsXLSXUnknownOriginAndStrayNames(t *testing.T) {
	fields := []extract.Field{
		{Name: "Extra", Value: "valor inesperado"},
		{Name: "Guia", Value: "CG-00014961", SourceLine: 3},
	}

	b, err := NewService(nil).FieldsXLSX(fields, []string{"Guia"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	// Requested name first, stray model-invented names appended after.
	v, err := f.GetCellValue("Campos", "A2")
	require.NoError(t, err)
	require.Equal(t, "Guia", v)

	v, err = f.GetCellValue("Campos", "A3")
	require.NoError(t, err)
	require.Equal(t, "Extra", v)

	// Unknown origin leaves the line cell empty.
	v, err = f.GetCellValue("Campos", "C3")
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestFieldsXLSXEmpty(t *testing.T) {
	b, err := NewService(nil).FieldsXLSX(nil, []string{"Cantidad"})
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	v, err := f.GetCellValue("Campos", "A1")
	require.NoError(t, err)
	require.Equal(t, "Campo", v)
}
