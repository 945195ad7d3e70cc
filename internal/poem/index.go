package poem

import (
	"sort"
	"strings"
)

// Ref names one renderable text: a poem index plus a version key.
// An empty key means the canonical version.
type Ref struct {
	Poem int
	Key  string
}

// TitleEntry pairs a poem index with its canonical title for sorted display.
type TitleEntry struct {
	Poem  int
	Title string
}

// AuthorCounts returns poems-per-author over canonical versions.
func (l *Library) AuthorCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range l.Poems {
		counts[p.Canonical.Author]++
	}
	return counts
}

// LanguageCounts returns versions-per-language over all versions,
// canonical included.
func (l *Library) LanguageCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range l.Poems {
		counts[p.Canonical.Language]++
		for _, key := range p.VersionKeys {
			counts[p.Versions[key].Language]++
		}
	}
	return counts
}

// SortedAuthors returns author names in alphabetical order.
func (l *Library) SortedAuthors() []string {
	counts := l.AuthorCounts()
	authors := make([]string, 0, len(counts))
	for a := range counts {
		authors = append(authors, a)
	}
	sort.Strings(authors)
	return authors
}

// SortedLanguages returns languages ordered by version count, most first.
// Ties break alphabetically so the order is stable across rebuilds.
func (l *Library) SortedLanguages() []string {
	counts := l.LanguageCounts()
	langs := make([]string, 0, len(counts))
	for lang := range counts {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		if counts[langs[i]] != counts[langs[j]] {
			return counts[langs[i]] > counts[langs[j]]
		}
		return langs[i] < langs[j]
	})
	return langs
}

// SortedTitles returns all poems ordered by canonical title,
// case-insensitively.
func (l *Library) SortedTitles() []TitleEntry {
	titles := make([]TitleEntry, 0, len(l.Poems))
	for i, p := range l.Poems {
		titles = append(titles, TitleEntry{Poem: i, Title: p.Canonical.Title})
	}
	sort.SliceStable(titles, func(i, j int) bool {
		return strings.ToLower(titles[i].Title) < strings.ToLower(titles[j].Title)
	})
	return titles
}

// ByAuthor returns refs to the canonical versions of poems by author,
// in library order.
func (l *Library) ByAuthor(author string) []Ref {
	var refs []Ref
	for i, p := range l.Poems {
		if p.Canonical.Author == author {
			refs = append(refs, Ref{Poem: i})
		}
	}
	return refs
}

// ByLanguage returns refs to every version written in lang, in library
// order with the canonical version of a poem before its other versions.
func (l *Library) ByLanguage(lang string) []Ref {
	var refs []Ref
	for i, p := range l.Poems {
		if p.Canonical.Language == lang {
			refs = append(refs, Ref{Poem: i})
		}
		for _, key := range p.VersionKeys {
			if p.Versions[key].Language == lang {
				refs = append(refs, Ref{Poem: i, Key: key})
			}
		}
	}
	return refs
}

// Search returns poems whose canonical title or author contains the query,
// case-insensitively. An empty query matches nothing.
func (l *Library) Search(query string) []Ref {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var refs []Ref
	for i, p := range l.Poems {
		if strings.Contains(strings.ToLower(p.Canonical.Title), query) ||
			strings.Contains(strings.ToLower(p.Canonical.Author), query) {
			refs = append(refs, Ref{Poem: i})
		}
	}
	return refs
}
