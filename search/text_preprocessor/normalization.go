package text_preprocessor

import (
	"strings"

	"github.com/rainycape/unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Translation tables
var specialCharsTrans = strings.NewReplacer("‘", "'", "’", "'", "´", "'", "“", "\"", "”", "\"", "–", "-", "-", "-")

// The casers are created per call: a cases.Caser is stateful and must not
// be shared between the ProcessMany worker goroutines.

func Lowercasing(text string) string {
	return cases.Lower(language.German).String(text)
}

// Titlecasing restores the capitalization German nouns carry in running
// text, for display of generated forms.
func Titlecasing(text string) string {
	return cases.Title(language.German).String(text)
}

func NormalizeAmpersand(text string) string {
	return strings.ReplaceAll(text, "&", " und ")
}

// NormalizeDiacritics folds a string to its closest ASCII rendering
// (städte -> stadte). The matcher indexes folded variants of generated
// forms so umlaut-less text still matches.
func NormalizeDiacritics(text string) string {
	return unidecode.Unidecode(text)
}

func NormalizeSpecialChars(text string) string {
	return specialCharsTrans.Replace(text)
}

func StripWhitespaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func RemoveEmptyTokens(tokens []string) []string {
	var result []string
	for _, token := range tokens {
		if token != "" {
			result = append(result, token)
		}
	}
	return result
}

func RemoveStopwords(tokens []string, stopwords map[string]struct{}) []string {
	var result []string
	for _, token := range tokens {
		if _, found := stopwords[token]; !found {
			result = append(result, token)
		}
	}
	return result
}

func ApplyStemmer(tokens []string, stemmer func(string) string) []string {
	var result []string
	for _, token := range tokens {
		result = append(result, stemmer(token))
	}
	return result
}
