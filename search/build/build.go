package build

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"FormenGo/search/model"
	"FormenGo/search/morphology"
	"FormenGo/search/text_preprocessor"
)

const nPreprocessWorkers = 4

// BuildMatcher reads every .txt and .html document under folderPath,
// preprocesses them for German surface-form matching, expands the query
// terms through the morphology generator and returns a ready Matcher.
func BuildMatcher(query string, folderPath string) (*model.Matcher, error) {
	texts, err := loadFolder(folderPath)
	if err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no .txt or .html documents in %s", folderPath)
	}

	preprocessor := text_preprocessor.NewPreprocessor(text_preprocessor.NewConfig())
	tokenLists := preprocessor.ProcessMany(texts, nPreprocessWorkers)

	docs := make([]model.Document, len(texts))
	for i, text := range texts {
		docs[i] = model.Document{Text: text, Tokens: tokenLists[i]}
	}

	gen, err := morphology.NewGenerator(morphology.GermanNounRules(), text_preprocessor.GermanStemmer())
	if err != nil {
		return nil, err
	}

	queryTerms := preprocessor.Process(query)
	log.Printf("matching %d query terms against %d documents", len(queryTerms), len(docs))

	return model.NewMatcher(docs, gen, queryTerms)
}

// loadFolder reads the supported documents in folderPath, extracting text
// from HTML files and taking .txt files verbatim.
func loadFolder(folderPath string) ([]string, error) {
	files, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, err
	}

	var texts []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext != ".txt" && ext != ".html" && ext != ".htm" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(folderPath, file.Name()))
		if err != nil {
			return nil, err
		}
		text := string(content)
		if ext != ".txt" {
			text = ExtractText(text)
		}
		if strings.TrimSpace(text) != "" {
			texts = append(texts, text)
		}
	}
	return texts, nil
}
