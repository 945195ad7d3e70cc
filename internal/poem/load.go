package poem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// versionDoc is the on-disk shape of a single version.
type versionDoc struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Language string `yaml:"language"`
	Epigraph string `yaml:"epigraph"`
	Text     string `yaml:"text"`
	RTL      bool   `yaml:"rtl"`
	Vertical bool   `yaml:"vertical"`
}

func (d versionDoc) version() Version {
	lines, spans := parseLines(splitLines(d.Text))
	return Version{
		Title:    d.Title,
		Author:   d.Author,
		Language: d.Language,
		Epigraph: d.Epigraph,
		Lines:    lines,
		Spans:    spans,
		RTL:      d.RTL,
		Vertical: d.Vertical,
	}
}

// validate checks the loader-level invariants for one version.
func (d versionDoc) validate(key string) error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return fmt.Errorf("version %q: missing title", key)
	case strings.TrimSpace(d.Author) == "":
		return fmt.Errorf("version %q: missing author", key)
	case strings.TrimSpace(d.Language) == "":
		return fmt.Errorf("version %q: missing language", key)
	case len(splitLines(d.Text)) == 0:
		return fmt.Errorf("version %q: empty text", key)
	}
	return nil
}

// Load reads every .poem file in dir and returns the library plus a warning
// per file that failed to parse or validate. Invalid poems are excluded, not
// fatal; only an unreadable directory is an error.
func Load(dir string) (*Library, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read poems directory: %w", err)
	}

	var (
		lib      Library
		warnings []string
	)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".poem" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		p, err := parseFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		p.ID = name
		p.Path = path
		lib.Poems = append(lib.Poems, *p)
	}

	return &lib, warnings, nil
}

// parseFile decodes one .poem file. The top-level YAML mapping holds the
// canonical version under "canonical" and further versions under arbitrary
// keys; key order in the file is the display order.
func parseFile(path string) (*Poem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level is not a mapping")
	}

	p := &Poem{Versions: make(map[string]Version)}
	seenCanonical := false

	// Mapping content alternates key, value.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		var d versionDoc
		if err := root.Content[i+1].Decode(&d); err != nil {
			return nil, fmt.Errorf("version %q: %w", key, err)
		}
		if err := d.validate(key); err != nil {
			return nil, err
		}
		if key == CanonicalKey {
			if seenCanonical {
				return nil, fmt.Errorf("duplicate version key %q", key)
			}
			p.Canonical = d.version()
			seenCanonical = true
			continue
		}
		if _, dup := p.Versions[key]; dup {
			return nil, fmt.Errorf("duplicate version key %q", key)
		}
		p.VersionKeys = append(p.VersionKeys, key)
		p.Versions[key] = d.version()
	}

	if !seenCanonical {
		return nil, fmt.Errorf("no canonical version")
	}
	return p, nil
}
