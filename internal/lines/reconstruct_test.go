package lines

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReconstructPlainSplit(t *testing.T) {
	// Text with real line breaks round-trips as a trimmed split.
	text := "CG-100 CPOV-200 TUBOS PVC A 1 UND\n" +
		"  CG-101 CPOV-201 TUBOS PVC B 2 UND  \n" +
		"\n" +
		"CG-102 CPOV-202 TUBOS PVC C 3 UND\n" +
		"CG-103 CPOV-203 TUBOS PVC D 4 UND\n" +
		"CG-104 CPOV-204 TUBOS PVC E 5 UND\n"

	got := Reconstruct(text)
	require.Len(t, got, 5)
	for i, ln := range got {
		require.Equal(t, i+1, ln.Index)
		require.Equal(t, ln.Text, strings.TrimSpace(ln.Text))
	}
	require.Equal(t, "CG-101 CPOV-201 TUBOS PVC B 2 UND", got[1].Text)
}

func TestReconstructMergedRecords(t *testing.T) {
	// A concatenated blob with marker-delimited records recovers exactly
	// one logical line per marker.
	text := "CG-1 CPOV-100 TUBOS PVC SCH 40 A 1 UND CG-2 CPOV-200 TUBOS PVC SCH 40 B 400 UND"

	got := Reconstruct(text)
	require.Len(t, got, 2)
	require.Equal(t, "CG-1 CPOV-100 TUBOS PVC SCH 40 A 1 UND", got[0].Text)
	require.Equal(t, "CG-2 CPOV-200 TUBOS PVC SCH 40 B 400 UND", got[1].Text)
	require.Equal(t, 1, got[0].Index)
	require.Equal(t, 2, got[1].Index)
}

func TestReconstructDropsHeaderBeforeFirstMarker(t *testing.T) {
	text := "GUIA DE DESPACHO CG-10 TUBOS PVC A 1 UND CG-11 TUBOS PVC B 2 UND"

	got := Reconstruct(text)
	require.Len(t, got, 2)
	require.True(t, strings.HasPrefix(got[0].Text, "CG-10"))
}

func TestReconstructNoiseGuard(t *testing.T) {
	// Segments shorter than the minimum are discarded on the degraded
	// path; numbering is assigned after filtering.
	text := "CG-1 X CG-2 CPOV-200 TUBOS PVC SCH 40 B 400 UND"

	got := Reconstruct(text)
	require.Len(t, got, 1)
	require.Equal(t, 1, got[0].Index)
	require.True(t, strings.HasPrefix(got[0].Text, "CG-2"))
}

func TestReconstructAnchorFallback(t *testing.T) {
	// No marker prefixes anywhere: fall back to the article anchor
	// phrase as the record boundary.
	text := "TUBOS PVC SCH 40 CORVI 12 UND TUBOS PVC PRESION CORVI 7 UND"

	got := Reconstruct(text)
	require.Len(t, got, 2)
	require.True(t, strings.HasPrefix(got[0].Text, "TUBOS PVC SCH 40"))
	require.True(t, strings.HasPrefix(got[1].Text, "TUBOS PVC PRESION"))
}

func TestReconstructAnchorCaseAndMultibyte(t *testing.T) {
	// Lowercase anchors still cut the text, including after runes whose
	// upper-case form has a different byte length.
	text := strings.Repeat("ɱ", 100) + " tubos pvc sch 40 corvi 12 und"

	got := Reconstruct(text)
	require.Len(t, got, 2)
	require.True(t, strings.HasPrefix(got[1].Text, "tubos pvc sch 40"))
}

func TestReconstructWorstCaseNaive(t *testing.T) {
	// No markers, no anchors: the naive split is returned even when it
	// is a single line.
	text := "una sola linea sin marcadores reconocibles"

	got := Reconstruct(text)
	require.Len(t, got, 1)
	require.Equal(t, text, got[0].Text)
}

func TestReconstructEmpty(t *testing.T) {
	require.Empty(t, Reconstruct(""))
	require.Empty(t, Reconstruct("   \n \n "))
}

func TestNormalize(t *testing.T) {
	got := Normalize("a\tb  c \r\nd\n\n\n\ne")
	require.Equal(t, "a b c\nd\n\ne", got)

	// Digits survive untouched.
	require.Equal(t, "CG-00014961 05 UND", Normalize("CG-00014961  05   UND"))
}
