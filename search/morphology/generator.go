// Package morphology generates the plausible inflected surface forms of a
// noun from its stem, using ordered rule tables of exceptions, suffix
// modifications and stem edits. It is a best-effort generator tuned for
// recall in a text-matching context, not a complete decliner: the goal is
// that singular, plural, case and compound variants of the same word all
// land in one form set.
//
// Generation is a pure function of word + rule data. Rule tables are never
// mutated, so a Generator may be shared between goroutines.
package morphology

import (
	"errors"
	"strings"
)

// Result is the outcome of one generation call.
type Result struct {
	Forms []string // deduplicated surface forms, includes the stem or the original word
	Stem  string   // canonical stem the forms were derived from
}

// Generator binds rule data to a stemming function for repeated calls.
type Generator struct {
	data    *RuleData
	stemmer func(string) string
}

var errNoStemmer = errors.New("morphology: nil stemmer")

// NewGenerator validates the rule data once and returns a ready generator.
func NewGenerator(data *RuleData, stemmer func(string) string) (*Generator, error) {
	if stemmer == nil {
		return nil, errNoStemmer
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &Generator{data: data, stemmer: stemmer}, nil
}

// Forms generates all surface forms for word. The returned set always
// contains at least the stem, or the original word on the exception path.
func (g *Generator) Forms(word string) (Result, error) {
	if word == "" {
		return Result{}, errors.New("morphology: empty word")
	}
	stem := g.stemmer(word)

	// Exceptions short-circuit regular suffixation entirely. The original
	// word is kept alongside the override forms so the literal input is
	// always recoverable.
	if forms := exceptionForms(g.data, stem); len(forms) > 0 {
		return Result{Forms: dedupe(append(forms, word)), Stem: stem}, nil
	}

	suffixes := resolveRegularSuffixes(g.data, stem)
	forms := make([]string, 0, len(suffixes)+1+len(g.data.StemChanges))
	for _, suffix := range suffixes {
		forms = append(forms, stem+suffix)
	}
	forms = append(forms, stem)
	forms = append(forms, stemChangeForms(g.data.StemChanges, stem)...)

	return Result{Forms: dedupe(forms), Stem: stem}, nil
}

// GenerateForms is the one-shot entry point for callers that do not reuse a
// Generator.
func GenerateForms(word string, data *RuleData, stemmer func(string) string) (Result, error) {
	gen, err := NewGenerator(data, stemmer)
	if err != nil {
		return Result{}, err
	}
	return gen.Forms(word)
}

// exceptionForms runs both exception passes in priority order: full-form
// overrides first, predictable-suffix classes second. An empty result means
// the word is regular.
func exceptionForms(data *RuleData, stem string) []string {
	if forms := fullFormExceptionForms(data.FullFormExceptions, stem); len(forms) > 0 {
		return forms
	}
	return predictableSuffixForms(data.PredictableSuffixes, stem)
}

// fullFormExceptionForms checks the stem against the ordered full-form
// override table. The first matching (entry, ending) pair wins; later
// entries are never evaluated. When the stem carries compound material in
// front of the matched ending, the full forms act as suffixes appended to
// that prefix (hauptstadt -> haupt + städte); otherwise they are returned
// verbatim as complete words.
func fullFormExceptionForms(exceptions []FullFormException, stem string) []string {
	for _, exc := range exceptions {
		for _, ending := range exc.StemEndings {
			if !strings.HasSuffix(stem, ending) {
				continue
			}
			prefix := stem[:len(stem)-len(ending)]
			if prefix == "" {
				return append([]string(nil), exc.FullForms...)
			}
			forms := make([]string, 0, len(exc.FullForms))
			for _, form := range exc.FullForms {
				forms = append(forms, prefix+form)
			}
			return forms
		}
	}
	return nil
}

// predictableSuffixForms checks the stem against the ordered suffix-class
// table. The first class whose endings match (and whose exclusions do not)
// yields the stem with each class suffix appended, plus the bare stem.
func predictableSuffixForms(classes []SuffixClass, stem string) []string {
	for _, class := range classes {
		if endsWithAny(stem, class.ExclusionEndings) {
			continue
		}
		if !endsWithAny(stem, class.StemEndings) {
			continue
		}
		forms := make([]string, 0, len(class.SuffixesToAppend)+1)
		for _, suffix := range class.SuffixesToAppend {
			forms = append(forms, stem+suffix)
		}
		return append(forms, stem)
	}
	return nil
}

// resolveRegularSuffixes tailors the base regular suffix list to the stem.
// All additions are applied before any deletion, so a deletion rule can
// cancel a suffix an addition rule just contributed. The base list is
// copied, never mutated.
func resolveRegularSuffixes(data *RuleData, stem string) []string {
	suffixes := append([]string(nil), data.RegularSuffixes...)
	for _, mod := range data.RegularSuffixAdditions {
		if endsWithAny(stem, mod.TriggerEndings) {
			suffixes = append(suffixes, mod.Suffixes...)
		}
	}
	for _, mod := range data.RegularSuffixDeletions {
		if endsWithAny(stem, mod.TriggerEndings) {
			suffixes = deleteAll(suffixes, mod.Suffixes)
		}
	}
	return suffixes
}

// stemChangeForms produces one extra form per matching stem-change rule:
// strip the matched ending, append the replacement. Every matching rule
// contributes; there is no short-circuit here, unlike the exception tables.
func stemChangeForms(changes []StemChange, stem string) []string {
	var forms []string
	for _, change := range changes {
		if strings.HasSuffix(stem, change.MatchEnding) {
			forms = append(forms, stem[:len(stem)-len(change.MatchEnding)]+change.Replacement)
		}
	}
	return forms
}

func endsWithAny(s string, endings []string) bool {
	for _, ending := range endings {
		if strings.HasSuffix(s, ending) {
			return true
		}
	}
	return false
}

// deleteAll removes every occurrence of the targeted suffixes by value,
// regardless of whether they came from the base list or an addition rule.
func deleteAll(suffixes, targets []string) []string {
	drop := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		drop[t] = struct{}{}
	}
	kept := suffixes[:0]
	for _, suffix := range suffixes {
		if _, found := drop[suffix]; !found {
			kept = append(kept, suffix)
		}
	}
	return kept
}

func dedupe(forms []string) []string {
	seen := make(map[string]struct{}, len(forms))
	result := make([]string, 0, len(forms))
	for _, form := range forms {
		if _, exists := seen[form]; exists {
			continue
		}
		seen[form] = struct{}{}
		result = append(result, form)
	}
	return result
}
