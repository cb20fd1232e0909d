package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestBuildMatcher(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "Die Hauptstädte wachsen schnell.")
	writeFile(t, dir, "b.txt", "Ein Apfel fällt vom Baum.")
	writeFile(t, dir, "notes.md", "ignorierte Datei")

	matcher, err := BuildMatcher("Hauptstadt", dir)
	if err != nil {
		t.Fatalf("BuildMatcher: %v", err)
	}
	if len(matcher.Docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(matcher.Docs))
	}

	ranked := matcher.Rank(2)
	top := matcher.Docs[ranked[0]]
	if !strings.Contains(top.Text, "Hauptstädte") {
		t.Errorf("top document %q does not contain the plural form", top.Text)
	}
}

func TestBuildMatcherHTML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "seite.html",
		"<html><head><script>var x;</script></head><body><h1>Städte</h1><p>Die Hauptstädte Europas.</p></body></html>")
	writeFile(t, dir, "b.txt", "Ein Apfel fällt vom Baum.")

	matcher, err := BuildMatcher("Hauptstadt", dir)
	if err != nil {
		t.Fatalf("BuildMatcher: %v", err)
	}

	ranked := matcher.Rank(1)
	if !strings.Contains(matcher.Docs[ranked[0]].Text, "Hauptstädte") {
		t.Errorf("HTML document not ranked first: %q", matcher.Docs[ranked[0]].Text)
	}
}

func TestBuildMatcherEmptyFolder(t *testing.T) {
	if _, err := BuildMatcher("Hauptstadt", t.TempDir()); err == nil {
		t.Fatal("expected error for empty folder")
	}
}

func TestExtractText(t *testing.T) {
	html := `<html><head><style>p{}</style></head><body>
		<nav>Menü</nav>
		<div class="breadcrumb">Start &gt; Seite</div>
		<h1>Titel</h1>
		<p>Die Hauptstadt.</p>
	</body></html>`

	text := ExtractText(html)
	if !strings.Contains(text, "Titel") || !strings.Contains(text, "Die Hauptstadt.") {
		t.Errorf("ExtractText missing content: %q", text)
	}
	if strings.Contains(text, "Menü") || strings.Contains(text, "Start") {
		t.Errorf("ExtractText kept boilerplate: %q", text)
	}
}
