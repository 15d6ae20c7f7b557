package constants_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cmorenog/docextract/constants"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  constants.FieldCategory
		known bool
	}{
		{"spanish quantity", "Cantidad", constants.Quantity, true},
		{"uppercase quantity", "CANTIDAD", constants.Quantity, true},
		{"english quantity", "qty", constants.Quantity, true},
		{"order label", "Numero de Pedido", constants.OrderNumber, true},
		{"accented order label", "Número de Pedido", constants.OrderNumber, true},
		{"load label", "Guia", constants.LoadID, true},
		{"accented load label", " Guía ", constants.LoadID, true},
		{"article label", "Nombre del Articulo", constants.ArticleName, true},
		{"canonical string", "OrderNumber", constants.OrderNumber, true},
		{"unknown label", "Transportadora", constants.Generic, false},
		{"empty", "", constants.Generic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := constants.Canonicalize(tt.input)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.known, known)
		})
	}
}

func TestAsStringSlice(t *testing.T) {
	got := constants.AsStringSlice()
	require.Equal(t, []string{"OrderNumber", "LoadID", "ArticleName", "Quantity"}, got)
}
