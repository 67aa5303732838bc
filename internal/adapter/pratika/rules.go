package pratika

// SuffixRule matches a codepoint suffix of the original trimmed text
// and reconstructs the quoted stem. The table is walked in order and
// the first rule whose Match (and Guard, when present) holds wins, so
// ordering is significant: longest and most specific patterns first.
//
// Confidence values are hand-picked literals carried as-is; they are
// lookup constants, not derived from a formula.
type SuffixRule struct {
	// Match is the surface suffix, matched against the original text
	// (not a partially stripped remainder).
	Match string
	// Append is the literal reconstructed ending added after the match
	// is stripped.
	Append string
	// Guard, when set, must also hold for the rule to fire. Used for
	// the one-codepoint lookback disambiguations.
	Guard func(runes []rune) bool

	RuleID      string
	Description string
	Confidence  int
}

// precededByIU reports whether the codepoint before the 4-codepoint
// रिति tail is a short or long i/u vowel sign, which marks a
// visarga-elision origin (हरिः + इति → हरिरिति).
func precededByIU(runes []rune) bool {
	if len(runes) < 5 {
		return false
	}
	switch runes[len(runes)-5] {
	case 'ि', 'ी', 'ु', 'ू':
		return true
	}
	return false
}

// otiConsonants is the rough consonant class the ोति lookback tests the
// single preceding grapheme against. The membership is knowingly
// imprecise and can misfire on legitimate words; it is carried
// unchanged as a documented limitation.
const otiConsonants = "कचटतपयरलवशषसह"

func precededByOtiClass(runes []rune) bool {
	if len(runes) < 4 {
		return false
	}
	p := runes[len(runes)-4]
	for _, c := range otiConsonants {
		if c == p {
			return true
		}
	}
	return false
}

// DefaultRules returns the ordered suffix-rule table for Devanagari.
// The slice is constructed once per Analyzer and never mutated.
func DefaultRules() []SuffixRule {
	return []SuffixRule{
		{Match: "भ्यामिति", Append: "भ्याम्", RuleID: "bhyamiti-dual",
			Description: "dative/ablative dual -भ्याम् fused with इति", Confidence: 95},
		{Match: "ष्विति", Append: "षु", RuleID: "shviti-locative",
			Description: "locative plural -षु glided to ष्व् before इति", Confidence: 92},
		{Match: "स्विति", Append: "सु", RuleID: "sviti-locative",
			Description: "locative plural -सु glided to स्व् before इति", Confidence: 92},
		{Match: "स्येति", Append: "स्य", RuleID: "syeti-genitive",
			Description: "genitive singular -स्य fused with इति", Confidence: 92},
		{Match: "भिरिति", Append: "भिः", RuleID: "bhiriti-visarga",
			Description: "instrumental plural -भिः with visarga surfacing as र् before इति", Confidence: 90},
		{Match: "ैरिति", Append: "ैः", RuleID: "airiti-visarga",
			Description: "instrumental plural -ैः with visarga surfacing as र् before इति", Confidence: 90},
		{Match: "ेनेति", Append: "ेन", RuleID: "eneti-instrumental",
			Description: "instrumental singular -ेन fused with इति", Confidence: 88},
		{Match: "ामिति", Append: "ाम्", RuleID: "amiti-genitive-plural",
			Description: "genitive plural -आम् fused with इति", Confidence: 88},
		{Match: "ादिति", Append: "ात्", RuleID: "aditi-ablative",
			Description: "ablative singular -आत् voiced to द् before इति", Confidence: 88},
		{Match: "न्निति", Append: "न्", RuleID: "nniti-doubled-n",
			Description: "final न् doubled before the initial vowel of इति", Confidence: 85},
		{Match: "ाविति", Append: "ौ", RuleID: "aviti-dual-au",
			Description: "dual -औ glided to आव् before इति", Confidence: 85},
		{Match: "ायिति", Append: "ै", RuleID: "ayiti-ai",
			Description: "-ऐ glided to आय् before इति", Confidence: 85},
		{Match: "्विति", Append: "ु", RuleID: "uviti-glide",
			Description: "final उ/ऊ glided to व् before इति (short vowel reconstructed)", Confidence: 80},
		{Match: "्रिति", Append: "ृ", RuleID: "riti-vocalic-r",
			Description: "final vocalic ऋ glided to र् before इति", Confidence: 80},
		{Match: "मिति", Append: "म्", RuleID: "miti-anusvara",
			Description: "accusative म्/anusvara joined to इति", Confidence: 85},
		{Match: "दिति", Append: "त्", RuleID: "diti-dental",
			Description: "final त् voiced to द् before इति", Confidence: 80},
		{Match: "डिति", Append: "ट्", RuleID: "dditi-retroflex",
			Description: "final ट् voiced to ड् before इति", Confidence: 75},
		{Match: "बिति", Append: "प्", RuleID: "biti-labial",
			Description: "final प् voiced to ब् before इति", Confidence: 75},
		{Match: "गिति", Append: "क्", RuleID: "giti-velar",
			Description: "final क् voiced to ग् before इति", Confidence: 75},
		{Match: "रिति", Append: "ः", Guard: precededByIU, RuleID: "riti-visarga",
			Description: "visarga after i/u vowel surfacing as र् before इति", Confidence: 75},
		{Match: "रिति", Append: "र्", RuleID: "riti-consonant",
			Description: "genuine final र् joined to इति", Confidence: 70},
		{Match: "यिति", Append: "े", RuleID: "yiti-e",
			Description: "final ए glided to य् before इति", Confidence: 70},
		{Match: "विति", Append: "ो", RuleID: "viti-o",
			Description: "final ओ glided to व् before इति", Confidence: 70},
		{Match: "ोति", Append: "ः", Guard: precededByOtiClass, RuleID: "oti-visarga",
			Description: "-अः rounded to ओ before इति (rough lookback class)", Confidence: 70},
		{Match: "ोति", Append: "ो", RuleID: "oti-vowel",
			Description: "final ओ absorbing the initial vowel of इति", Confidence: 65},
		{Match: "ीति", Append: "ि", RuleID: "iti-vowel-i",
			Description: "final इ/ई merged with इति (short vowel reconstructed)", Confidence: 65},
		{Match: "ेति", Append: "", RuleID: "eti",
			Description: "final अ/आ raised to ए before इति", Confidence: 65},
	}
}

// gateSuffixes are the fused tail shapes a candidate must carry; any
// other ending is rejected before the rule walk.
var gateSuffixes = []string{"िति", "ीति", "ेति", "ोति"}

// SpaceItiRule identifies the space-separated quotation form.
const (
	SpaceItiRuleID     = "space-iti-inherent-a"
	SpaceItiConfidence = 75
)

// GenericItiRule is the fallback when the gate passes but no specific
// rule matches: strip exactly the 3-codepoint quotation cluster.
const (
	GenericItiRuleID     = "generic-iti"
	GenericItiConfidence = 60
)
