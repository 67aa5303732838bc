package script

// nasalClass pairs a class nasal with the stop consonants it assimilates
// to. Anusvara before a stop is orthographically interchangeable with
// the class nasal plus virama (रामं करोति ≡ रामङ् करोति at the sign level,
// अंत ≡ अन्त).
type nasalClass struct {
	nasal rune
	stops string
}

var devanagariNasalClasses = []nasalClass{
	{'ङ', "कखगघ"},
	{'ञ', "चछजझ"},
	{'ण', "टठडढ"},
	{'न', "तथदध"},
	{'म', "पफबभ"},
}

// EquivalenceTable generates the script-specific equivalent spellings of
// a term. It is pure data plus pure functions; one table is shared for
// the process lifetime.
type EquivalenceTable struct {
	script  string
	classes []nasalClass
}

// Devanagari is the shipped equivalence table. The registry is keyed by
// script name so further scripts can be added as data.
var tables = map[string]*EquivalenceTable{
	"devanagari": {script: "devanagari", classes: devanagariNasalClasses},
}

// ForScript returns the equivalence table for the named script, or nil
// if the script is unknown.
func ForScript(name string) *EquivalenceTable {
	return tables[name]
}

// Devanagari returns the default table.
func Devanagari() *EquivalenceTable {
	return tables["devanagari"]
}

// Script reports the script this table covers.
func (t *EquivalenceTable) Script() string {
	return t.script
}

func (t *EquivalenceTable) classNasalFor(stop rune) (rune, bool) {
	for _, c := range t.classes {
		for _, s := range c.stops {
			if s == stop {
				return c.nasal, true
			}
		}
	}
	return 0, false
}

func (t *EquivalenceTable) sameClass(nasal, stop rune) bool {
	for _, c := range t.classes {
		if c.nasal != nasal {
			continue
		}
		for _, s := range c.stops {
			if s == stop {
				return true
			}
		}
	}
	return false
}

// site is one position where a nasalization substitution applies.
// width is the codepoint count consumed; repl the replacement sequence.
type site struct {
	pos   int
	width int
	repl  []rune
}

func (t *EquivalenceTable) sites(runes []rune) []site {
	var out []site
	for i := 0; i < len(runes); i++ {
		// anusvara + stop -> class nasal + virama + stop
		if runes[i] == Anusvara && i+1 < len(runes) {
			if nasal, ok := t.classNasalFor(runes[i+1]); ok {
				out = append(out, site{pos: i, width: 1, repl: []rune{nasal, Virama}})
			}
		}
		// class nasal + virama + stop -> anusvara + stop
		if IsConsonant(runes[i]) && i+2 < len(runes) && runes[i+1] == Virama && t.sameClass(runes[i], runes[i+2]) {
			out = append(out, site{pos: i, width: 2, repl: []rune{Anusvara}})
		}
	}
	return out
}

func applySites(runes []rune, sites []site) string {
	var out []rune
	last := 0
	for _, s := range sites {
		out = append(out, runes[last:s.pos]...)
		out = append(out, s.repl...)
		last = s.pos + s.width
	}
	out = append(out, runes[last:]...)
	return string(out)
}

// NasalizationVariants returns the term plus every equivalent spelling
// obtained by substituting anusvara for a class-nasal-plus-virama
// sequence or vice versa: each site individually and all sites at once.
// The term itself is always first; output is deduplicated.
func (t *EquivalenceTable) NasalizationVariants(term string) []string {
	runes := []rune(term)
	variants := []string{term}
	seen := map[string]struct{}{term: {}}

	sites := t.sites(runes)
	add := func(v string) {
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			variants = append(variants, v)
		}
	}
	for _, s := range sites {
		add(applySites(runes, []site{s}))
	}
	if len(sites) > 1 {
		add(applySites(runes, sites))
	}
	return variants
}
