package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForScript(t *testing.T) {
	require.NotNil(t, ForScript("devanagari"))
	assert.Nil(t, ForScript("latin"))
	assert.Equal(t, "devanagari", Devanagari().Script())
}

func TestNasalizationVariants(t *testing.T) {
	tbl := Devanagari()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{
			name: "anusvara to class nasal",
			term: "अंत",
			want: []string{"अंत", "अन्त"},
		},
		{
			name: "class nasal to anusvara",
			term: "अन्त",
			want: []string{"अन्त", "अंत"},
		},
		{
			name: "labial class",
			term: "संपद्",
			want: []string{"संपद्", "सम्पद्"},
		},
		{
			name: "no substitution site",
			term: "राम",
			want: []string{"राम"},
		},
		{
			name: "final anusvara has no following stop",
			term: "रामं",
			want: []string{"रामं"},
		},
		{
			name: "two sites yield per-site and all-sites variants",
			term: "संबन्ध",
			want: []string{"संबन्ध", "सम्बन्ध", "संबंध", "सम्बंध"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tbl.NasalizationVariants(tt.term)
			require.Equal(t, tt.want, got)
			assert.Equal(t, tt.term, got[0], "term itself is always first")
		})
	}
}

func TestNasalizationVariantsNonMatchingStop(t *testing.T) {
	// Anusvara before a sibilant has no class nasal; no variant.
	got := Devanagari().NasalizationVariants("अंश")
	assert.Equal(t, []string{"अंश"}, got)
}
