// Package poem loads and indexes a directory of .poem files.
//
// A .poem file is a YAML document holding one canonical version of a poem
// plus any number of additional versions (translations, transliterations,
// alternate scripts) keyed by name. The library built from a directory is
// immutable; it is rebuilt wholesale when the directory changes.
package poem

import "strings"

// CanonicalKey is the version key of a poem's default version.
const CanonicalKey = "canonical"

// Version is one authored rendering of a poem.
type Version struct {
	Title    string
	Author   string
	Language string
	Epigraph string
	Lines    []string
	Spans    []Span
	RTL      bool
	Vertical bool
}

// Span marks an emphasized run within one display line. Start and End are
// byte offsets into the stripped line text, marker characters excluded.
type Span struct {
	Line       int
	Start, End int
	Bold       bool
	Italic     bool
}

// Poem is a named work: one canonical version plus additional versions in
// file order.
type Poem struct {
	// ID is the poem's filename, unique within one library.
	ID        string
	Path      string
	Canonical Version

	// VersionKeys holds the non-canonical version keys in the order they
	// appear in the file.
	VersionKeys []string
	Versions    map[string]Version
}

// Version returns the version for key. The empty string and CanonicalKey
// both name the canonical version; an unknown key falls back to canonical.
func (p *Poem) Version(key string) Version {
	if key == "" || key == CanonicalKey {
		return p.Canonical
	}
	if v, ok := p.Versions[key]; ok {
		return v
	}
	return p.Canonical
}

// HasVersions reports whether the poem has any version beyond canonical.
func (p *Poem) HasVersions() bool {
	return len(p.VersionKeys) > 0
}

// AllKeys returns the display order of version keys, canonical first.
func (p *Poem) AllKeys() []string {
	keys := make([]string, 0, len(p.VersionKeys)+1)
	keys = append(keys, CanonicalKey)
	keys = append(keys, p.VersionKeys...)
	return keys
}

// Library is an ordered, read-only collection of poems.
type Library struct {
	Poems []Poem
}

// Len returns the number of poems in the library.
func (l *Library) Len() int {
	return len(l.Poems)
}

// splitLines converts a text block into its lines, preserving interior
// empty lines (stanza breaks) and dropping only the trailing newline.
func splitLines(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// parseLines resolves the light markup poem texts may carry. "## title"
// section markers become a decorated rule, and **bold** / *italic* runs are
// stripped to emphasis spans. Both transforms happen at load time so the
// marker characters never reach the layout grid.
func parseLines(lines []string) ([]string, []Span) {
	out := make([]string, len(lines))
	var spans []Span
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if title, ok := strings.CutPrefix(trimmed, "## "); ok {
			out[i] = "  ——— " + strings.TrimSpace(title) + " ———"
			continue
		}
		stripped, lineSpans := parseEmphasis(i, line)
		out[i] = stripped
		spans = append(spans, lineSpans...)
	}
	return out, spans
}

// parseEmphasis strips ** and * markers from one line, recording the runs
// they delimited. An unclosed marker emphasizes through the end of the line.
func parseEmphasis(lineIdx int, line string) (string, []Span) {
	var (
		b            strings.Builder
		spans        []Span
		bold, italic bool
		boldStart    int
		italicStart  int
	)
	for i := 0; i < len(line); {
		if strings.HasPrefix(line[i:], "**") {
			if bold {
				spans = append(spans, Span{Line: lineIdx, Start: boldStart, End: b.Len(), Bold: true})
			} else {
				boldStart = b.Len()
			}
			bold = !bold
			i += 2
			continue
		}
		if line[i] == '*' {
			if italic {
				spans = append(spans, Span{Line: lineIdx, Start: italicStart, End: b.Len(), Italic: true})
			} else {
				italicStart = b.Len()
			}
			italic = !italic
			i++
			continue
		}
		b.WriteByte(line[i])
		i++
	}
	if bold && b.Len() > boldStart {
		spans = append(spans, Span{Line: lineIdx, Start: boldStart, End: b.Len(), Bold: true})
	}
	if italic && b.Len() > italicStart {
		spans = append(spans, Span{Line: lineIdx, Start: italicStart, End: b.Len(), Italic: true})
	}
	return b.String(), spans
}
