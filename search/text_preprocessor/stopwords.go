package text_preprocessor

// germanStopwords is the embedded stopword list for German. Function words
// never carry noun forms worth expanding, so both the document pipeline and
// the query side filter against this set after lowercasing.
var germanStopwords = map[string]struct{}{
	"aber": {}, "alle": {}, "allem": {}, "allen": {}, "aller": {}, "alles": {},
	"als": {}, "also": {}, "am": {}, "an": {}, "ander": {}, "andere": {},
	"anderem": {}, "anderen": {}, "anderer": {}, "anderes": {}, "auch": {},
	"auf": {}, "aus": {}, "bei": {}, "bin": {}, "bis": {}, "bist": {},
	"da": {}, "damit": {}, "dann": {}, "das": {}, "dass": {}, "dein": {},
	"dem": {}, "den": {}, "denn": {}, "der": {}, "des": {}, "dich": {},
	"die": {}, "dies": {}, "diese": {}, "diesem": {}, "diesen": {},
	"dieser": {}, "dieses": {}, "dir": {}, "doch": {}, "dort": {}, "du": {},
	"durch": {}, "ein": {}, "eine": {}, "einem": {}, "einen": {},
	"einer": {}, "eines": {}, "er": {}, "es": {}, "etwas": {}, "euer": {},
	"für": {}, "gegen": {}, "gewesen": {}, "hab": {}, "habe": {},
	"haben": {}, "hat": {}, "hatte": {}, "hatten": {}, "hier": {},
	"hin": {}, "hinter": {}, "ich": {}, "ihm": {}, "ihn": {}, "ihr": {},
	"ihre": {}, "im": {}, "in": {}, "ist": {}, "ja": {}, "jede": {},
	"jedem": {}, "jeden": {}, "jeder": {}, "jedes": {}, "kann": {},
	"kein": {}, "keine": {}, "können": {}, "mein": {}, "mich": {},
	"mir": {}, "mit": {}, "nach": {}, "nicht": {}, "noch": {}, "nun": {},
	"nur": {}, "ob": {}, "oder": {}, "ohne": {}, "sehr": {}, "sein": {},
	"seine": {}, "sich": {}, "sie": {}, "sind": {}, "so": {}, "um": {},
	"und": {}, "uns": {}, "unter": {}, "viel": {}, "vom": {}, "von": {},
	"vor": {}, "war": {}, "waren": {}, "was": {}, "weil": {}, "weiter": {},
	"welche": {}, "wenn": {}, "werde": {}, "werden": {}, "wie": {},
	"wieder": {}, "will": {}, "wir": {}, "wird": {}, "wo": {}, "zu": {},
	"zum": {}, "zur": {}, "zwischen": {}, "über": {},
}

// GermanStopwords returns a copy of the embedded German stopword set, so
// callers can extend it without touching the shared table.
func GermanStopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(germanStopwords))
	for word := range germanStopwords {
		set[word] = struct{}{}
	}
	return set
}
