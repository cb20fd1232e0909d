package morphology

// GermanNounRules returns the built-in rule tables for German nouns. The
// tables operate on snowball output, so every ending on the matching side is
// lowercase and umlaut-free (the stemmer folds ä/ö/ü); the generated forms
// restore umlauts where the plural requires them.
//
// The data is a recall-tuned best effort: it covers the umlaut and latinate
// plural families plus the productive derivation suffixes, not every German
// inflection class.
func GermanNounRules() *RuleData {
	return &RuleData{
		FullFormExceptions: []FullFormException{
			// Umlaut plurals. Longer endings come first within an entry so a
			// compound never matches a shorter ending embedded in a longer one.
			{StemEndings: []string{"stadt"}, FullForms: []string{"stadt", "städte", "städten"}},
			{StemEndings: []string{"mann"}, FullForms: []string{"mann", "manns", "mannes", "männer", "männern"}},
			{StemEndings: []string{"land"}, FullForms: []string{"land", "lands", "landes", "länder", "ländern"}},
			{StemEndings: []string{"haus"}, FullForms: []string{"haus", "hauses", "häuser", "häusern"}},
			{StemEndings: []string{"buch"}, FullForms: []string{"buch", "buchs", "buches", "bücher", "büchern"}},
			{StemEndings: []string{"arzt"}, FullForms: []string{"arzt", "arztes", "ärzte", "ärzten"}},
			{StemEndings: []string{"vater"}, FullForms: []string{"vater", "vaters", "väter", "vätern"}},
			{StemEndings: []string{"mutter"}, FullForms: []string{"mutter", "mütter", "müttern"}},
			{StemEndings: []string{"bruder"}, FullForms: []string{"bruder", "bruders", "brüder", "brüdern"}},
			{StemEndings: []string{"tochter"}, FullForms: []string{"tochter", "töchter", "töchtern"}},
			// Latinate plurals that drop their singular ending.
			{StemEndings: []string{"museum"}, FullForms: []string{"museum", "museums", "museen"}},
			{StemEndings: []string{"datum"}, FullForms: []string{"datum", "datums", "daten"}},
			{StemEndings: []string{"thema"}, FullForms: []string{"thema", "themas", "themen"}},
			{StemEndings: []string{"konto"}, FullForms: []string{"konto", "kontos", "konten"}},
		},
		PredictableSuffixes: []SuffixClass{
			{
				Name:             "feminineDerivation",
				StemEndings:      []string{"ung", "heit", "keit", "schaft", "tat", "ion"},
				SuffixesToAppend: []string{"en"},
				// sprung/ursprung end in -ung but are masculine umlaut plurals.
				ExclusionEndings: []string{"sprung", "schwung"},
			},
			{
				Name:             "femaleAgent",
				StemEndings:      []string{"in"},
				SuffixesToAppend: []string{"nen"},
				// -ein/-ain words (wein, bein, domain) are not agent nouns.
				ExclusionEndings: []string{"ein", "ain"},
			},
			{
				Name:             "diminutive",
				StemEndings:      []string{"chen", "lein"},
				SuffixesToAppend: []string{"s"},
			},
		},
		RegularSuffixes: []string{"e", "en", "n", "s", "es", "er", "ern"},
		RegularSuffixAdditions: []SuffixModification{
			// Sibilant stems insert an epenthetic e before s-initial suffixes.
			{Name: "sibilant", TriggerEndings: []string{"s", "ß", "x", "z"}, Suffixes: []string{"se", "sen", "ses"}},
			// Weak nouns in -e take -ns in the genitive (name -> namens).
			{Name: "weakNoun", TriggerEndings: []string{"e"}, Suffixes: []string{"ns"}},
		},
		RegularSuffixDeletions: []SuffixModification{
			// A bare s or n cannot attach directly after a sibilant.
			{Name: "sibilant", TriggerEndings: []string{"s", "ß", "x", "z"}, Suffixes: []string{"s", "n", "es"}},
			// Stems already ending in -e never double it (name -> namen, not nameen).
			{Name: "weakNoun", TriggerEndings: []string{"e"}, Suffixes: []string{"e", "en", "es", "er", "ern"}},
			// Full-vowel finals (auto, taxi) only take -s.
			{Name: "fullVowel", TriggerEndings: []string{"a", "i", "o", "u", "y"}, Suffixes: []string{"e", "en", "es", "er", "ern", "n"}},
		},
		StemChanges: []StemChange{
			{Name: "latinateUm", MatchEnding: "um", Replacement: "en"},
			{Name: "latinateA", MatchEnding: "a", Replacement: "en"},
			{Name: "latinateOn", MatchEnding: "on", Replacement: "en"},
			{Name: "ismus", MatchEnding: "ismus", Replacement: "ismen"},
			{Name: "nis", MatchEnding: "nis", Replacement: "nisse"},
		},
	}
}
