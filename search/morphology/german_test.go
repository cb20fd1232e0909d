package morphology

import "testing"

func germanGenerator(t *testing.T) *Generator {
	t.Helper()
	gen, err := NewGenerator(GermanNounRules(), identityStemmer)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return gen
}

func contains(forms []string, want string) bool {
	for _, form := range forms {
		if form == want {
			return true
		}
	}
	return false
}

func TestGermanNounRulesValid(t *testing.T) {
	if err := GermanNounRules().validate(); err != nil {
		t.Fatalf("built-in German rules invalid: %v", err)
	}
}

func TestGermanForms(t *testing.T) {
	gen := germanGenerator(t)

	tests := []struct {
		name    string
		word    string
		want    []string
		exclude []string
	}{
		{
			name: "umlaut plural compound",
			word: "hauptstadt",
			want: []string{"hauptstadt", "hauptstädte", "hauptstädten"},
		},
		{
			name: "umlaut plural base word",
			word: "buch",
			want: []string{"buch", "buches", "bücher", "büchern"},
		},
		{
			name: "feminine derivation suffix",
			word: "zeitung",
			want: []string{"zeitung", "zeitungen"},
			// the class short-circuits the regular suffix list
			exclude: []string{"zeitunger", "zeitungs"},
		},
		{
			name: "female agent noun",
			word: "lehrerin",
			want: []string{"lehrerin", "lehrerinnen"},
		},
		{
			name: "diminutive",
			word: "mädchen",
			want: []string{"mädchen", "mädchens"},
		},
		{
			name: "sibilant stem takes epenthetic e",
			word: "herz",
			want: []string{"herz", "herzen", "herzse", "herzsen"},
			// the deletion rule blocks a bare s after the sibilant
			exclude: []string{"herzs", "herzn"},
		},
		{
			name: "weak noun in e",
			word: "name",
			want: []string{"name", "namen", "names", "namens"},
			// never doubled: name + e
			exclude: []string{"namee", "nameen"},
		},
		{
			name:    "full vowel final only takes s",
			word:    "auto",
			want:    []string{"auto", "autos"},
			exclude: []string{"autoe", "autoen", "autoer"},
		},
		{
			name: "latinate full-form exception",
			word: "museum",
			want: []string{"museum", "museums", "museen"},
		},
		{
			name: "stem change alongside regular suffixes",
			word: "ergebnis",
			want: []string{"ergebnis", "ergebnisse"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := gen.Forms(tt.word)
			if err != nil {
				t.Fatalf("Forms(%q): %v", tt.word, err)
			}
			for _, want := range tt.want {
				if !contains(result.Forms, want) {
					t.Errorf("Forms(%q) = %v; missing %q", tt.word, result.Forms, want)
				}
			}
			for _, excluded := range tt.exclude {
				if contains(result.Forms, excluded) {
					t.Errorf("Forms(%q) = %v; must not contain %q", tt.word, result.Forms, excluded)
				}
			}
		})
	}
}

func TestGermanExclusionFallsBackToRegularSuffixes(t *testing.T) {
	gen := germanGenerator(t)
	// ursprung ends in -ung but is excluded from the feminine class, so the
	// regular path runs and the genitive -s survives
	result, err := gen.Forms("ursprung")
	if err != nil {
		t.Fatalf("Forms: %v", err)
	}
	if !contains(result.Forms, "ursprungs") {
		t.Errorf("Forms(ursprung) = %v; missing regular genitive ursprungs", result.Forms)
	}
}

func TestGermanFormsAlwaysContainStem(t *testing.T) {
	gen := germanGenerator(t)
	words := []string{"hauptstadt", "zeitung", "lehrer", "herz", "name", "auto", "museum", "kind"}
	for _, word := range words {
		result, err := gen.Forms(word)
		if err != nil {
			t.Fatalf("Forms(%q): %v", word, err)
		}
		if len(result.Forms) == 0 {
			t.Fatalf("Forms(%q) returned empty set", word)
		}
		if !contains(result.Forms, result.Stem) && !contains(result.Forms, word) {
			t.Errorf("Forms(%q) = %v; contains neither stem %q nor the word", word, result.Forms, result.Stem)
		}
	}
}

func FuzzGermanForms(f *testing.F) {
	for _, seed := range []string{"hauptstadt", "zeitung", "herz", "museum", "a", "straße", "café"} {
		f.Add(seed)
	}
	gen, err := NewGenerator(GermanNounRules(), identityStemmer)
	if err != nil {
		f.Fatalf("NewGenerator: %v", err)
	}
	f.Fuzz(func(t *testing.T, word string) {
		if word == "" {
			t.Skip()
		}
		result, err := gen.Forms(word)
		if err != nil {
			t.Fatalf("Forms(%q): %v", word, err)
		}
		if len(result.Forms) == 0 {
			t.Fatalf("Forms(%q) returned empty set", word)
		}
		if !contains(result.Forms, result.Stem) && !contains(result.Forms, word) {
			t.Errorf("Forms(%q) missing both stem and word: %v", word, result.Forms)
		}
		seen := map[string]struct{}{}
		for _, form := range result.Forms {
			if _, dup := seen[form]; dup {
				t.Errorf("Forms(%q) contains duplicate %q", word, form)
			}
			seen[form] = struct{}{}
		}
	})
}

func BenchmarkGermanForms(b *testing.B) {
	gen, err := NewGenerator(GermanNounRules(), identityStemmer)
	if err != nil {
		b.Fatalf("NewGenerator: %v", err)
	}
	words := []string{"hauptstadt", "zeitung", "lehrer", "herz", "museum"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Forms(words[i%len(words)]); err != nil {
			b.Fatal(err)
		}
	}
}
