package poem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePoem(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const ozymandias = `canonical:
  title: Ozymandias
  author: Percy Bysshe Shelley
  language: en
  text: |
    I met a traveller from an antique land,
    Who said...
ru:
  title: Озимандия
  author: Percy Bysshe Shelley
  language: ru
  text: |
    Я встретил путника...
fa:
  title: اوزیماندیاس
  author: Percy Bysshe Shelley
  language: fa
  rtl: true
  text: |
    مسافری را دیدم
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writePoem(t, dir, "ozymandias.poem", ozymandias)

	lib, warnings, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if lib.Len() != 1 {
		t.Fatalf("got %d poems, want 1", lib.Len())
	}

	p := lib.Poems[0]
	if p.ID != "ozymandias.poem" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Canonical.Title != "Ozymandias" || p.Canonical.Language != "en" {
		t.Errorf("canonical = %+v", p.Canonical)
	}
	if len(p.Canonical.Lines) != 2 {
		t.Errorf("canonical lines = %v", p.Canonical.Lines)
	}
	// Version keys keep file order, canonical excluded.
	if len(p.VersionKeys) != 2 || p.VersionKeys[0] != "ru" || p.VersionKeys[1] != "fa" {
		t.Errorf("VersionKeys = %v, want [ru fa]", p.VersionKeys)
	}
	if !p.Versions["fa"].RTL {
		t.Error("fa version lost its rtl flag")
	}
}

func TestLoadOrdersByFilename(t *testing.T) {
	dir := t.TempDir()
	writePoem(t, dir, "b.poem", minimalPoem("Second"))
	writePoem(t, dir, "a.poem", minimalPoem("First"))

	lib, _, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if lib.Len() != 2 {
		t.Fatalf("got %d poems", lib.Len())
	}
	if lib.Poems[0].ID != "a.poem" || lib.Poems[1].ID != "b.poem" {
		t.Errorf("order = %q, %q", lib.Poems[0].ID, lib.Poems[1].ID)
	}
}

func TestLoadSkipsNonPoemFiles(t *testing.T) {
	dir := t.TempDir()
	writePoem(t, dir, "keep.poem", minimalPoem("Kept"))
	writePoem(t, dir, "notes.txt", "not a poem")
	writePoem(t, dir, "draft.poem.bak", "also not")
	if err := os.Mkdir(filepath.Join(dir, "sub.poem"), 0o755); err != nil {
		t.Fatal(err)
	}

	lib, warnings, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings: %v", warnings)
	}
	if lib.Len() != 1 || lib.Poems[0].ID != "keep.poem" {
		t.Errorf("library = %v", lib.Poems)
	}
}

func TestLoadInvalidFileWarnsAndContinues(t *testing.T) {
	dir := t.TempDir()
	writePoem(t, dir, "good.poem", minimalPoem("Good"))
	writePoem(t, dir, "bad.poem", "canonical: [not, a, mapping")

	lib, warnings, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if lib.Len() != 1 {
		t.Errorf("got %d poems, want the valid one only", lib.Len())
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "bad.poem") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name, content, wantErr string
	}{
		{
			"no canonical",
			"en:\n  title: T\n  author: A\n  language: en\n  text: |\n    x\n",
			"no canonical version",
		},
		{
			"missing title",
			"canonical:\n  author: A\n  language: en\n  text: |\n    x\n",
			"missing title",
		},
		{
			"missing author",
			"canonical:\n  title: T\n  language: en\n  text: |\n    x\n",
			"missing author",
		},
		{
			"missing language",
			"canonical:\n  title: T\n  author: A\n  text: |\n    x\n",
			"missing language",
		},
		{
			"empty text",
			"canonical:\n  title: T\n  author: A\n  language: en\n  text: \"\"\n",
			"empty text",
		},
		{
			"duplicate key",
			minimalPoem("T") + "ru:\n  title: T\n  author: A\n  language: ru\n  text: |\n    x\nru:\n  title: T2\n  author: A\n  language: ru\n  text: |\n    y\n",
			"", // yaml itself may reject duplicate mapping keys first
		},
		{
			// A second canonical block must reject the file, not last-win.
			"duplicate canonical",
			minimalPoem("T") + minimalPoem("T2"),
			"", // yaml itself may reject duplicate mapping keys first
		},
		{
			"top level not a mapping",
			"- just\n- a\n- list\n",
			"not a mapping",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writePoem(t, dir, "p.poem", tt.content)
			_, err := parseFile(filepath.Join(dir, "p.poem"))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func minimalPoem(title string) string {
	return "canonical:\n  title: " + title + "\n  author: A\n  language: en\n  text: |\n    line one\n"
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", nil},
		{"a\n", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
		{"a", []string{"a"}},
	}
	for _, tt := range tests {
		got := splitLines(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitLines(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitLines(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseLinesSectionMarkers(t *testing.T) {
	got, _ := parseLines([]string{"## Part One", "plain", "  ## Indented  ", "##nospace"})

	if got[0] != "  ——— Part One ———" {
		t.Errorf("got[0] = %q", got[0])
	}
	if got[1] != "plain" {
		t.Errorf("got[1] = %q", got[1])
	}
	if got[2] != "  ——— Indented ———" {
		t.Errorf("got[2] = %q", got[2])
	}
	// No space after the marker means it is not a section heading.
	if got[3] != "##nospace" {
		t.Errorf("got[3] = %q", got[3])
	}
}

func TestParseEmphasis(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		spans []Span
	}{
		{"plain line", "plain line", nil},
		{
			"a **bold** word",
			"a bold word",
			[]Span{{Start: 2, End: 6, Bold: true}},
		},
		{
			"an *italic* word",
			"an italic word",
			[]Span{{Start: 3, End: 9, Italic: true}},
		},
		{
			"**all bold line**",
			"all bold line",
			[]Span{{Start: 0, End: 13, Bold: true}},
		},
		{
			"**two** bold **runs**",
			"two bold runs",
			[]Span{{Start: 0, End: 3, Bold: true}, {Start: 9, End: 13, Bold: true}},
		},
		{
			// An unclosed marker runs to the end of the line.
			"**unterminated bold",
			"unterminated bold",
			[]Span{{Start: 0, End: 17, Bold: true}},
		},
	}
	for _, tt := range tests {
		got, spans := parseEmphasis(0, tt.in)
		if got != tt.want {
			t.Errorf("parseEmphasis(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if len(spans) != len(tt.spans) {
			t.Errorf("parseEmphasis(%q) spans = %v, want %v", tt.in, spans, tt.spans)
			continue
		}
		for i := range tt.spans {
			if spans[i] != tt.spans[i] {
				t.Errorf("parseEmphasis(%q) span %d = %v, want %v", tt.in, i, spans[i], tt.spans[i])
			}
		}
	}
}

// TestLoadStripsEmphasisMarkers: asterisks never survive loading as text.
func TestLoadStripsEmphasisMarkers(t *testing.T) {
	dir := t.TempDir()
	content := "canonical:\n  title: T\n  author: A\n  language: en\n  text: |\n    a **bold** word\n"
	writePoem(t, dir, "p.poem", content)

	lib, _, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	v := lib.Poems[0].Canonical
	if v.Lines[0] != "a bold word" {
		t.Errorf("line = %q, want markers stripped", v.Lines[0])
	}
	want := Span{Line: 0, Start: 2, End: 6, Bold: true}
	if len(v.Spans) != 1 || v.Spans[0] != want {
		t.Errorf("spans = %v, want [%v]", v.Spans, want)
	}
}

func TestVersionLookup(t *testing.T) {
	p := Poem{
		Canonical:   Version{Title: "C"},
		VersionKeys: []string{"ru"},
		Versions:    map[string]Version{"ru": {Title: "R"}},
	}

	if got := p.Version(""); got.Title != "C" {
		t.Errorf(`Version("") = %q`, got.Title)
	}
	if got := p.Version(CanonicalKey); got.Title != "C" {
		t.Errorf("Version(canonical) = %q", got.Title)
	}
	if got := p.Version("ru"); got.Title != "R" {
		t.Errorf("Version(ru) = %q", got.Title)
	}
	// Unknown keys fall back rather than fail.
	if got := p.Version("zz"); got.Title != "C" {
		t.Errorf("Version(zz) = %q", got.Title)
	}

	keys := p.AllKeys()
	if len(keys) != 2 || keys[0] != CanonicalKey || keys[1] != "ru" {
		t.Errorf("AllKeys = %v", keys)
	}
	if !p.HasVersions() {
		t.Error("HasVersions = false")
	}
	if (&Poem{}).HasVersions() {
		t.Error("empty poem claims versions")
	}
}
