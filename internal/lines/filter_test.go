package lines

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterRelevant(t *testing.T) {
	ls := []Line{
		{Index: 1, Text: "GUIA DE DESPACHO No. 14961"},
		{Index: 2, Text: "CG-00014961 CPOV-000009927 TUBOS PVC SCH 40 CORVI-SONACA 40 UND"},
		{Index: 3, Text: "Transportadora: RUTA EXPRESS"},
		{Index: 4, Text: "tubos pvc presion 21 und"},
		{Index: 5, Text: "Total items: 2"},
	}

	got := FilterRelevant(ls)
	require.Len(t, got, 2)

	// Order and original line numbers are preserved.
	require.Equal(t, 2, got[0].Index)
	require.Equal(t, 4, got[1].Index)
}

func TestFilterRelevantNoMatches(t *testing.T) {
	ls := []Line{
		{Index: 1, Text: "nada que ver aqui"},
		{Index: 2, Text: "tampoco en esta"},
	}
	require.Empty(t, FilterRelevant(ls))
}

func TestFilterRelevantMarkerPrefixes(t *testing.T) {
	ls := []Line{
		{Index: 1, Text: "pedido CPOV-000009911"},
		{Index: 2, Text: "carga CG-00014961"},
	}
	require.Len(t, FilterRelevant(ls), 2)
}
