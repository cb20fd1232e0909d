package main

import (
	"fmt"
	"os"
	"strings"

	"FormenGo/search/build"
	"FormenGo/search/morphology"
	"FormenGo/search/text_preprocessor"
)

func main() {
	query := "Hauptstadt"
	folderPath := ""
	if len(os.Args) > 1 {
		query = os.Args[1]
	}
	if len(os.Args) > 2 {
		folderPath = os.Args[2]
	}

	gen, err := morphology.NewGenerator(morphology.GermanNounRules(), text_preprocessor.GermanStemmer())
	if err != nil {
		fmt.Println("Fehler beim Erstellen des Generators:", err)
		return
	}

	result, err := gen.Forms(strings.ToLower(query))
	if err != nil {
		fmt.Println("Fehler bei der Formgenerierung:", err)
		return
	}
	fmt.Printf("Stamm: %s\n", result.Stem)
	fmt.Printf("Formen: %s\n", strings.Join(result.Forms, ", "))

	if folderPath == "" {
		return
	}

	matcher, err := build.BuildMatcher(query, folderPath)
	if err != nil {
		fmt.Println("Fehler beim Aufbau des Matchers:", err)
		return
	}

	for _, i := range matcher.Rank(5) {
		fmt.Println(matcher.Docs[i].Text)
		fmt.Println(matcher.ScoreTable[i])
		fmt.Println(matcher.NormalizedScoreTable[i])
		fmt.Println("BREAK")
	}
}
