package sandhi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitVariantsIdentityFirst(t *testing.T) {
	s := NewSplitter()

	got := s.SplitVariants("  देवः ")
	require.NotEmpty(t, got)
	assert.Equal(t, "देवः", got[0].Text, "identity variant carries the normalized term")
	assert.Equal(t, "original", got[0].RuleID)
}

func TestSplitVariantsVisargaAlternations(t *testing.T) {
	s := NewSplitter()

	texts := variantTexts(s.SplitVariants("देवः"))
	assert.Contains(t, texts, "देवो") // visarga-o
	assert.Contains(t, texts, "देवर्") // visarga-r
	assert.Contains(t, texts, "देवस्") // visarga-s
	assert.Contains(t, texts, "देव")  // visarga-elision
}

func TestSplitVariantsReverseFusion(t *testing.T) {
	s := NewSplitter()

	got := s.SplitVariants("देवो")
	byText := map[string]string{}
	for _, v := range got {
		byText[v.Text] = v.RuleID
	}
	// The fused ो splits back into its sources.
	assert.Equal(t, "split-guna-o", byText["देवअउ"])
	assert.Equal(t, "split-guna-o-long", byText["देवअऊ"])
	// And the final ो alternates back to visarga.
	assert.Equal(t, "ending-o-visarga", byText["देवः"])
}

func TestSplitVariantsForwardFusion(t *testing.T) {
	s := NewSplitter()

	texts := variantTexts(s.SplitVariants("तत्च"))
	assert.Contains(t, texts, "तच्च", "unfused त्च fuses forward")
}

func TestSplitVariantsDedup(t *testing.T) {
	s := NewSplitter()

	got := s.SplitVariants("देवो देवो")
	seen := map[string]bool{}
	for _, v := range got {
		assert.False(t, seen[v.Text], "duplicate variant %q", v.Text)
		seen[v.Text] = true
	}
}

func TestSplitVariantsEmpty(t *testing.T) {
	s := NewSplitter()
	assert.Nil(t, s.SplitVariants(""))
	assert.Nil(t, s.SplitVariants("  "))
}
