package model

import (
	"math"
	"sort"

	"FormenGo/search/morphology"
	"FormenGo/search/text_preprocessor"

	"gonum.org/v1/gonum/stat"
)

// Document is one preprocessed corpus entry.
type Document struct {
	Text   string
	Tokens []string
}

// Expansion is the full surface-form set generated for one query term,
// including ASCII-folded variants so umlaut-less text still matches.
type Expansion struct {
	Term  string
	Stem  string
	Forms map[string]struct{}
}

// Matcher scores documents by how many tokens fall into the expanded form
// sets of the query terms. It replaces exact term lookup: Hauptstadt,
// Hauptstädte and Hauptstaedte all count as hits for the same term.
type Matcher struct {
	Docs                 []Document
	Expansions           []Expansion
	ScoreTable           []float64
	NormalizedScoreTable []float64
}

// NewMatcher expands every query term through the morphology generator and
// precomputes the score tables for the given documents.
func NewMatcher(docs []Document, gen *morphology.Generator, queryTerms []string) (*Matcher, error) {
	m := &Matcher{Docs: docs}
	for _, term := range queryTerms {
		result, err := gen.Forms(term)
		if err != nil {
			return nil, err
		}
		forms := make(map[string]struct{}, 2*len(result.Forms))
		for _, form := range result.Forms {
			forms[form] = struct{}{}
			forms[text_preprocessor.NormalizeDiacritics(form)] = struct{}{}
		}
		m.Expansions = append(m.Expansions, Expansion{Term: term, Stem: result.Stem, Forms: forms})
	}
	m.fillScoreTables()
	return m, nil
}

// hits counts the tokens of doc covered by the expansion set.
func hits(exp Expansion, doc Document) float64 {
	count := 0
	for _, token := range doc.Tokens {
		if _, found := exp.Forms[token]; found {
			count++
		}
	}
	return float64(count)
}

// idf weighs a term by how few documents its expansion set appears in.
func (m *Matcher) idf(exp Expansion) float64 {
	l := 0
	for _, doc := range m.Docs {
		if hits(exp, doc) > 0 {
			l++
		}
	}
	n := len(m.Docs)
	return math.Log((float64(n-l)+0.5)/(float64(l)+0.5) + 1.0)
}

func (m *Matcher) fillScoreTables() {
	m.ScoreTable = make([]float64, len(m.Docs))
	for _, exp := range m.Expansions {
		weight := m.idf(exp)
		for i, doc := range m.Docs {
			f := hits(exp, doc)
			m.ScoreTable[i] += weight * f / (f + 1.0)
		}
	}

	// z-score normalization of the raw scores
	m.NormalizedScoreTable = make([]float64, len(m.ScoreTable))
	mean := stat.Mean(m.ScoreTable, nil)
	stddev := stat.StdDev(m.ScoreTable, nil)
	for i, score := range m.ScoreTable {
		if stddev == 0 || math.IsNaN(stddev) {
			m.NormalizedScoreTable[i] = 0
			continue
		}
		m.NormalizedScoreTable[i] = (score - mean) / stddev
	}
}

// Rank returns the indices of the top-k documents by score, best first.
func (m *Matcher) Rank(k int) []int {
	indices := make([]int, len(m.Docs))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return m.ScoreTable[indices[a]] > m.ScoreTable[indices[b]]
	})
	if k > len(indices) {
		k = len(indices)
	}
	return indices[:k]
}
