package morphology

import "errors"

// FullFormException overrides form generation for a whole word family.
// StemEndings are candidate suffixes of the stem; FullForms are either
// complete replacement words (when the stem is the exception base itself)
// or suffixes appended to the compound prefix in front of the matched
// ending. Entries are evaluated in slice order and the first match wins.
type FullFormException struct {
	StemEndings []string
	FullForms   []string
}

// SuffixClass describes a predictable-suffix exception: stems ending in one
// of StemEndings (and in none of ExclusionEndings) take exactly the suffixes
// in SuffixesToAppend instead of the regular suffix list.
type SuffixClass struct {
	Name             string
	StemEndings      []string
	SuffixesToAppend []string
	ExclusionEndings []string
}

// SuffixModification conditionally adds or removes suffixes from the regular
// suffix list when the stem ends in one of TriggerEndings.
type SuffixModification struct {
	Name           string
	TriggerEndings []string
	Suffixes       []string
}

// StemChange produces one extra form by replacing a stem ending that plain
// suffixation cannot express (Museum -> Museen).
type StemChange struct {
	Name        string
	MatchEnding string
	Replacement string
}

// RuleData is the full rule table set for one word category. It is built
// once, treated as read-only, and may be shared between goroutines. All
// slices are ordered: precedence between rules is their slice position.
type RuleData struct {
	FullFormExceptions     []FullFormException
	PredictableSuffixes    []SuffixClass
	RegularSuffixes        []string
	RegularSuffixAdditions []SuffixModification
	RegularSuffixDeletions []SuffixModification
	StemChanges            []StemChange
}

var (
	errNoRuleData        = errors.New("morphology: nil rule data")
	errNoRegularSuffixes = errors.New("morphology: rule data has no regular suffixes")
	errEmptyRuleEntry    = errors.New("morphology: rule entry without endings")
)

// validate checks the structural preconditions the generator relies on.
// Malformed rule data is a caller contract violation, not a runtime
// condition the generator recovers from.
func (d *RuleData) validate() error {
	if d == nil {
		return errNoRuleData
	}
	if len(d.RegularSuffixes) == 0 {
		return errNoRegularSuffixes
	}
	for _, exc := range d.FullFormExceptions {
		if len(exc.StemEndings) == 0 || len(exc.FullForms) == 0 {
			return errEmptyRuleEntry
		}
	}
	for _, class := range d.PredictableSuffixes {
		if len(class.StemEndings) == 0 || len(class.SuffixesToAppend) == 0 {
			return errEmptyRuleEntry
		}
	}
	for _, mod := range d.RegularSuffixAdditions {
		if len(mod.TriggerEndings) == 0 || len(mod.Suffixes) == 0 {
			return errEmptyRuleEntry
		}
	}
	for _, mod := range d.RegularSuffixDeletions {
		if len(mod.TriggerEndings) == 0 || len(mod.Suffixes) == 0 {
			return errEmptyRuleEntry
		}
	}
	for _, change := range d.StemChanges {
		if change.MatchEnding == "" {
			return errEmptyRuleEntry
		}
	}
	return nil
}
