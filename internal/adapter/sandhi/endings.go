// Package sandhi generates alternative surface forms of a query term:
// quotation variants through the bidirectional ending correspondence
// map, and fusion variants through the splitter. All tables are built
// once and read-only; every generator is a pure function of its input.
package sandhi

import "sort"

// EndingMap is the bidirectional correspondence between iti-class
// suffixes and grammatical base endings.
//
// reverse maps one iti-suffix to every base ending it may stand for;
// the ambiguity is preserved, not resolved. forward is single-valued:
// each base ending fuses into exactly one iti-suffix. The empty forward
// key covers stems ending in a bare consonant (inherent a).
type EndingMap struct {
	reverse map[string][]string
	forward map[string]string

	suffixes    []string // reverse keys, longest first
	forwardKeys []string // forward keys, longest first
}

// DefaultEndingMap returns the Devanagari correspondence table.
func DefaultEndingMap() *EndingMap {
	m := &EndingMap{
		reverse: map[string][]string{
			"भ्यामिति": {"भ्याम्"},
			"भिरिति":  {"भिः"},
			"ैरिति":   {"ैः"},
			"ष्विति":   {"षु"},
			"स्विति":   {"सु"},
			"स्येति":   {"स्य"},
			"ामिति":   {"ाम्"},
			"ेनेति":    {"ेन"},
			"ादिति":   {"ात्"},
			"न्निति":   {"न्"},
			"मिति":    {"म्", "ं"},
			"दिति":    {"त्", "द्"},
			"गिति":    {"क्", "ग्"},
			"ाविति":   {"ौ"},
			"ायिति":   {"ै"},
			"्विति":    {"ु", "ू"},
			"यिति":    {"े"},
			"रिति":    {"ः", "र्"},
			"ीति":     {"ि", "ी"},
			"ेति":      {"", "ा"},
		},
		forward: map[string]string{
			"भ्याम्": "भ्यामिति",
			"भिः":   "भिरिति",
			"ैः":    "ैरिति",
			"षु":    "ष्विति",
			"सु":    "स्विति",
			"स्य":   "स्येति",
			"ाम्":   "ामिति",
			"ेन":    "ेनेति",
			"ात्":   "ादिति",
			"न्":    "न्निति",
			"म्":    "मिति",
			"ं":     "मिति",
			"त्":    "दिति",
			"द्":    "दिति",
			"क्":    "गिति",
			"ग्":    "गिति",
			"ौ":     "ाविति",
			"ै":     "ायिति",
			"ु":     "्विति",
			"ू":     "्विति",
			"े":     "यिति",
			"ः":     "रिति",
			"र्":    "रिति",
			"ि":     "ीति",
			"ी":     "ीति",
			"ा":     "ेति",
			"":      "ेति",
		},
	}
	m.suffixes = sortedKeysLongestFirst(m.reverse)
	for k := range m.forward {
		m.forwardKeys = append(m.forwardKeys, k)
	}
	sortLongestFirst(m.forwardKeys)
	return m
}

// Reverse returns the base endings an iti-suffix may stand for.
func (m *EndingMap) Reverse(suffix string) []string {
	return m.reverse[suffix]
}

// Forward returns the iti-suffix a base ending fuses into.
func (m *EndingMap) Forward(base string) (string, bool) {
	s, ok := m.forward[base]
	return s, ok
}

// Suffixes returns the reverse-map keys, longest first. The returned
// slice is shared and must not be mutated.
func (m *EndingMap) Suffixes() []string {
	return m.suffixes
}

// ForwardKeys returns the forward-map keys, longest first.
func (m *EndingMap) ForwardKeys() []string {
	return m.forwardKeys
}

func sortedKeysLongestFirst(rel map[string][]string) []string {
	keys := make([]string, 0, len(rel))
	for k := range rel {
		keys = append(keys, k)
	}
	sortLongestFirst(keys)
	return keys
}

// sortLongestFirst orders by descending codepoint length, then
// lexically, so traversal order is deterministic.
func sortLongestFirst(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		li, lj := len([]rune(keys[i])), len([]rune(keys[j]))
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
}
