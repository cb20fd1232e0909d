package text_preprocessor

import "testing"

func TestGetStemmer(t *testing.T) {
	if _, err := GetStemmer("german"); err != nil {
		t.Fatalf("GetStemmer(german) error: %v", err)
	}
	if _, err := GetStemmer("GERMAN"); err != nil {
		t.Fatalf("GetStemmer is case sensitive: %v", err)
	}
	if _, err := GetStemmer("klingon"); err == nil {
		t.Fatal("GetStemmer(klingon) expected error, got none")
	}
}

func TestGermanStemmer(t *testing.T) {
	stem := GermanStemmer()

	tests := []struct {
		word     string
		expected string
	}{
		// singular and plural collapse to the same stem
		{"hauptstadt", "hauptstadt"},
		{"städte", "stadt"},
		{"häuser", "haus"},
	}

	for _, tt := range tests {
		if got := stem(tt.word); got != tt.expected {
			t.Errorf("stem(%q) = %q; want %q", tt.word, got, tt.expected)
		}
	}
}

func TestPorterStemmer(t *testing.T) {
	stem, err := GetStemmer("porter")
	if err != nil {
		t.Fatalf("GetStemmer(porter): %v", err)
	}
	if got := stem("running"); got != "run" {
		t.Errorf("stem(running) = %q; want run", got)
	}
}
