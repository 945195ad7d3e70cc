package poem

import (
	"testing"
)

func indexLibrary() *Library {
	return &Library{Poems: []Poem{
		{
			ID:          "first.poem",
			Canonical:   Version{Title: "the Waste Land", Author: "T. S. Eliot", Language: "en"},
			VersionKeys: []string{"fr"},
			Versions: map[string]Version{
				"fr": {Title: "La Terre vaine", Author: "T. S. Eliot", Language: "fr"},
			},
		},
		{
			ID:        "second.poem",
			Canonical: Version{Title: "Ash Wednesday", Author: "T. S. Eliot", Language: "en"},
		},
		{
			ID:          "third.poem",
			Canonical:   Version{Title: "Бессонница", Author: "Осип Мандельштам", Language: "ru"},
			VersionKeys: []string{"en", "fr"},
			Versions: map[string]Version{
				"en": {Title: "Insomnia", Author: "Osip Mandelstam", Language: "en"},
				"fr": {Title: "Insomnie", Author: "Ossip Mandelstam", Language: "fr"},
			},
		},
	}}
}

func TestAuthorCounts(t *testing.T) {
	counts := indexLibrary().AuthorCounts()
	if len(counts) != 2 {
		t.Fatalf("counts = %v", counts)
	}
	if counts["T. S. Eliot"] != 2 {
		t.Errorf("Eliot = %d, want 2", counts["T. S. Eliot"])
	}
	if counts["Осип Мандельштам"] != 1 {
		t.Errorf("Мандельштам = %d, want 1", counts["Осип Мандельштам"])
	}
}

func TestLanguageCountsSpanVersions(t *testing.T) {
	counts := indexLibrary().LanguageCounts()
	want := map[string]int{"en": 3, "fr": 2, "ru": 1}
	for lang, n := range want {
		if counts[lang] != n {
			t.Errorf("%s = %d, want %d", lang, counts[lang], n)
		}
	}
	if len(counts) != len(want) {
		t.Errorf("counts = %v", counts)
	}
}

func TestSortedAuthors(t *testing.T) {
	authors := indexLibrary().SortedAuthors()
	if len(authors) != 2 || authors[0] != "T. S. Eliot" || authors[1] != "Осип Мандельштам" {
		t.Errorf("authors = %v", authors)
	}
}

func TestSortedLanguagesByCount(t *testing.T) {
	langs := indexLibrary().SortedLanguages()
	want := []string{"en", "fr", "ru"}
	if len(langs) != len(want) {
		t.Fatalf("langs = %v", langs)
	}
	for i := range want {
		if langs[i] != want[i] {
			t.Errorf("langs[%d] = %q, want %q", i, langs[i], want[i])
		}
	}
}

func TestSortedTitlesCaseInsensitive(t *testing.T) {
	titles := indexLibrary().SortedTitles()
	// "Ash Wednesday" before "the Waste Land" only under case folding.
	if titles[0].Title != "Ash Wednesday" || titles[0].Poem != 1 {
		t.Errorf("titles[0] = %v", titles[0])
	}
	if titles[1].Title != "the Waste Land" || titles[1].Poem != 0 {
		t.Errorf("titles[1] = %v", titles[1])
	}
}

func TestByAuthor(t *testing.T) {
	refs := indexLibrary().ByAuthor("T. S. Eliot")
	if len(refs) != 2 {
		t.Fatalf("refs = %v", refs)
	}
	for i, want := range []Ref{{Poem: 0}, {Poem: 1}} {
		if refs[i] != want {
			t.Errorf("refs[%d] = %v, want %v", i, refs[i], want)
		}
	}
	if got := indexLibrary().ByAuthor("Nobody"); got != nil {
		t.Errorf("unknown author = %v", got)
	}
}

func TestByLanguageCanonicalFirst(t *testing.T) {
	refs := indexLibrary().ByLanguage("en")
	want := []Ref{{Poem: 0}, {Poem: 1}, {Poem: 2, Key: "en"}}
	if len(refs) != len(want) {
		t.Fatalf("refs = %v, want %v", refs, want)
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("refs[%d] = %v, want %v", i, refs[i], want[i])
		}
	}
}

func TestSearch(t *testing.T) {
	lib := indexLibrary()

	tests := []struct {
		query string
		want  []Ref
	}{
		{"waste", []Ref{{Poem: 0}}},
		{"ELIOT", []Ref{{Poem: 0}, {Poem: 1}}},
		{"мандельштам", []Ref{{Poem: 2}}},
		{"  waste  ", []Ref{{Poem: 0}}},
		{"insomnia", nil}, // only canonical title and author are searched
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		got := lib.Search(tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Search(%q)[%d] = %v, want %v", tt.query, i, got[i], tt.want[i])
			}
		}
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName("ja"); got != "日本語" {
		t.Errorf("ja = %q", got)
	}
	if got := LanguageName("fa"); got != "فارسی" {
		t.Errorf("fa = %q", got)
	}
	// Unknown codes display as themselves.
	if got := LanguageName("xx"); got != "xx" {
		t.Errorf("xx = %q", got)
	}
}
