package sandhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pratika/internal/domain"
)

func variantTexts(vs []domain.Variant) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Text
	}
	return out
}

func TestExpandBareStem(t *testing.T) {
	e := NewExpander(DefaultEndingMap())

	// A stem in inherent a takes the suffix directly.
	got := e.ExpandQuotationVariants("राम")
	require.Len(t, got, 1)
	assert.Equal(t, "रामेति", got[0].Text)
	assert.Equal(t, "->ेति", got[0].RuleID)
}

func TestExpandMarkedStem(t *testing.T) {
	e := NewExpander(DefaultEndingMap())

	tests := []struct {
		term string
		want string
		rule string
	}{
		{"हरिः", "हरिरिति", "ः->रिति"},
		{"रामम्", "राममिति", "म्->मिति"},
		{"रामं", "राममिति", "ं->मिति"},
		{"देवौ", "देवाविति", "ौ->ाविति"},
		{"रामस्य", "रामस्येति", "स्य->स्येति"},
	}
	for _, tt := range tests {
		got := e.ExpandQuotationVariants(tt.term)
		texts := variantTexts(got)
		require.Contains(t, texts, tt.want, tt.term)
		for _, v := range got {
			if v.Text == tt.want {
				assert.Equal(t, tt.rule, v.RuleID)
			}
		}
	}
}

func TestExpandQuotedForm(t *testing.T) {
	e := NewExpander(DefaultEndingMap())

	// रामेति reads back as राम or रामा; no forward fusion is attempted
	// on a term already in quoted shape.
	got := e.ExpandQuotationVariants("रामेति")
	assert.Equal(t, []string{"राम", "रामा"}, variantTexts(got))
	for _, v := range got {
		assert.NotContains(t, v.Text, "ेतीति")
	}
}

// Both a long suffix and a shorter one it contains must contribute;
// stopping at the first hit would lose the short suffix's readings.
func TestExpandAllMatchingSuffixes(t *testing.T) {
	e := NewExpander(DefaultEndingMap())

	texts := variantTexts(e.ExpandQuotationVariants("रामस्येति"))
	assert.Contains(t, texts, "रामस्य")  // via स्येति
	assert.Contains(t, texts, "रामस्या") // via the bare ेति reading
}

func TestExpandExcludesTermAndDedupes(t *testing.T) {
	e := NewExpander(DefaultEndingMap())

	got := e.ExpandQuotationVariants("रामस्येति")
	seen := map[string]bool{}
	for _, v := range got {
		assert.NotEqual(t, "रामस्येति", v.Text, "term itself must not be a variant")
		assert.False(t, seen[v.Text], "duplicate variant %q", v.Text)
		seen[v.Text] = true
	}
}

func TestExpandEmpty(t *testing.T) {
	e := NewExpander(DefaultEndingMap())
	assert.Nil(t, e.ExpandQuotationVariants(""))
	assert.Nil(t, e.ExpandQuotationVariants("   "))
}
