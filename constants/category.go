package constants

import (
	"strings"
)

type FieldCategory string

const (
	OrderNumber FieldCategory = "OrderNumber"
	LoadID      FieldCategory = "LoadID"
	ArticleName FieldCategory = "ArticleName"
	Quantity    FieldCategory = "Quantity"
	Generic     FieldCategory = "Generic"
)

var allCategories = []FieldCategory{
	OrderNumber,
	LoadID,
	ArticleName,
	Quantity,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a caller-supplied field label (Spanish or English,
// any casing) to a canonical category. Labels that match nothing fall
// through to Generic, which triggers the substring-search strategy.
func Canonicalize(input string) (FieldCategory, bool) {
	if input == "" {
		return Generic, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]FieldCategory{
		"pedido":              OrderNumber,
		"no de pedido":        OrderNumber,
		"no. de pedido":       OrderNumber,
		"numero de pedido":    OrderNumber,
		"número de pedido":    OrderNumber,
		"orden":               OrderNumber,
		"order":               OrderNumber,
		"order number":        OrderNumber,
		"guia":                LoadID,
		"guía":                LoadID,
		"no de guia":          LoadID,
		"numero de guia":      LoadID,
		"número de guía":      LoadID,
		"guia de carga":       LoadID,
		"load":                LoadID,
		"load id":             LoadID,
		"articulo":            ArticleName,
		"artículo":            ArticleName,
		"nombre del articulo": ArticleName,
		"nombre del artículo": ArticleName,
		"producto":            ArticleName,
		"article":             ArticleName,
		"article name":        ArticleName,
		"cantidad":            Quantity,
		"cantidades":          Quantity,
		"quantity":            Quantity,
		"qty":                 Quantity,
		"unidades":            Quantity,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Generic, false
}
