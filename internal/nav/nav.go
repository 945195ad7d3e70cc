// Package nav owns the reader's navigation state machine: which view is
// active, what is selected, which poem and version the reader shows, and
// how far it is scrolled. Input arrives as discrete events rather than raw
// key codes, and events with no valid target state are ignored.
package nav

import (
	"fmt"
	"math/rand/v2"

	"leaves/internal/layout"
	"leaves/internal/poem"
)

// ViewKind identifies the active view.
type ViewKind int

const (
	ViewMenu ViewKind = iota
	ViewAuthors
	ViewLanguages
	ViewTitles
	ViewFiltered
	ViewSearch
	ViewReader
	ViewPicker
)

func (v ViewKind) String() string {
	switch v {
	case ViewMenu:
		return "Menu"
	case ViewAuthors:
		return "Authors"
	case ViewLanguages:
		return "Languages"
	case ViewTitles:
		return "Titles"
	case ViewFiltered:
		return "Filtered"
	case ViewSearch:
		return "Search"
	case ViewReader:
		return "Reader"
	case ViewPicker:
		return "Versions"
	}
	return "?"
}

// Menu entries, in display order.
const (
	menuAuthors = iota
	menuLanguages
	menuTitles
	menuRandom
	menuCount
)

// Event is a discrete navigation event produced by the input decoder.
type Event interface{ isEvent() }

// MoveSelection moves the selection in the active list view by Delta.
type MoveSelection struct{ Delta int }

// Select activates the current selection.
type Select struct{}

// Back returns to the previous view; a no-op when there is none.
type Back struct{}

// OpenMenu jumps to the main menu from anywhere.
type OpenMenu struct{}

// OpenSearch jumps to the search view.
type OpenSearch struct{}

// SwitchVersion opens the version picker from the reader.
type SwitchVersion struct{}

// ScrollLine scrolls the reader viewport by Delta whole slots.
type ScrollLine struct{ Delta int }

// MovePoem moves the reader to the next or previous poem.
type MovePoem struct{ Delta int }

// SetQuery replaces the search query and recomputes results.
type SetQuery struct{ Query string }

// Resize records a new terminal size; the reader offset is reclamped.
type Resize struct{ Width, Height int }

// Quit marks the session as done.
type Quit struct{}

func (MoveSelection) isEvent() {}
func (Select) isEvent()        {}
func (Back) isEvent()          {}
func (OpenMenu) isEvent()      {}
func (OpenSearch) isEvent()    {}
func (SwitchVersion) isEvent() {}
func (ScrollLine) isEvent()    {}
func (MovePoem) isEvent()      {}
func (SetQuery) isEvent()      {}
func (Resize) isEvent()        {}
func (Quit) isEvent()          {}

// readerChrome is the number of terminal rows the reader frame spends on
// chrome: the title bar, the poem heading, one blank line, and the status
// bar.
const readerChrome = 4

// Machine is the navigation state machine. It exclusively owns the active
// poem/version/viewport state; the library it indexes is read-only.
type Machine struct {
	lib *poem.Library

	view    ViewKind
	history []ViewKind

	menuSel     int
	authorSel   int
	langSel     int
	titleSel    int
	filteredSel int
	searchSel   int
	pickerSel   int

	filtered      []poem.Ref
	filteredTitle string
	filterAuthor  string
	filterLang    string
	filteredPos   int // reader's position in filtered, -1 when unfiltered

	query   string
	results []poem.Ref

	poemIdx    int
	versionKey string // "" means canonical
	offset     int

	width, height int
	done          bool

	randInt func(n int) int
}

// New creates a machine showing the main menu.
func New(lib *poem.Library) *Machine {
	return &Machine{
		lib:         lib,
		view:        ViewMenu,
		filteredPos: -1,
		width:       80,
		height:      24,
		randInt:     rand.IntN,
	}
}

// SetLibrary swaps in a freshly loaded library, reconciling every index
// that might now dangle. Active filters are recomputed against the new
// contents.
func (m *Machine) SetLibrary(lib *poem.Library) {
	m.lib = lib
	if lib.Len() == 0 {
		m.view = ViewMenu
		m.history = nil
		m.filtered = nil
		m.filteredPos = -1
		m.poemIdx = 0
		m.versionKey = ""
		m.offset = 0
		return
	}
	if m.poemIdx >= lib.Len() {
		m.poemIdx = lib.Len() - 1
		m.versionKey = ""
		m.offset = 0
	}
	if m.versionKey != "" {
		// The active version may have vanished from the reloaded file.
		if _, ok := lib.Poems[m.poemIdx].Versions[m.versionKey]; !ok {
			m.versionKey = ""
			m.offset = 0
		}
	}
	switch {
	case m.filterAuthor != "":
		m.filtered = lib.ByAuthor(m.filterAuthor)
	case m.filterLang != "":
		m.filtered = lib.ByLanguage(m.filterLang)
	}
	if len(m.filtered) == 0 {
		m.filtered = nil
		m.filteredPos = -1
	}
	m.results = lib.Search(m.query)
	m.clampSelections()
	m.offset = layout.Clamp(m.offset, m.Layout().ScrollExtent, m.ViewportLen())
}

func (m *Machine) clampSelections() {
	clamp := func(sel, n int) int {
		if n == 0 {
			return 0
		}
		if sel >= n {
			return n - 1
		}
		return sel
	}
	m.authorSel = clamp(m.authorSel, len(m.lib.SortedAuthors()))
	m.langSel = clamp(m.langSel, len(m.lib.SortedLanguages()))
	m.titleSel = clamp(m.titleSel, m.lib.Len())
	m.filteredSel = clamp(m.filteredSel, len(m.filtered))
	m.filteredPos = clamp(m.filteredPos, len(m.filtered))
	m.searchSel = clamp(m.searchSel, len(m.results))
	if m.filtered == nil {
		m.filteredPos = -1
	}
}

// Apply advances the machine by one event.
func (m *Machine) Apply(e Event) {
	switch e := e.(type) {
	case Quit:
		m.done = true
	case Resize:
		m.width, m.height = e.Width, e.Height
		m.offset = layout.Clamp(m.offset, m.Layout().ScrollExtent, m.ViewportLen())
	case OpenMenu:
		if m.view != ViewMenu {
			m.push()
			m.view = ViewMenu
		}
	case OpenSearch:
		if m.view != ViewSearch {
			m.push()
			m.view = ViewSearch
		}
	case Back:
		m.back()
	case MoveSelection:
		m.moveSelection(e.Delta)
	case Select:
		m.selectCurrent()
	case SwitchVersion:
		m.openPicker()
	case ScrollLine:
		if m.view == ViewReader {
			m.offset = layout.Clamp(m.offset+e.Delta, m.Layout().ScrollExtent, m.ViewportLen())
		}
	case MovePoem:
		m.movePoem(e.Delta)
	case SetQuery:
		if m.view == ViewSearch {
			m.query = e.Query
			m.results = m.lib.Search(e.Query)
			m.searchSel = 0
		}
	}
}

// push records the current view for Back.
func (m *Machine) push() {
	m.history = append(m.history, m.view)
}

func (m *Machine) back() {
	if len(m.history) == 0 {
		return
	}
	m.view = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
}

// wrap moves sel by delta modulo n.
func wrap(sel, delta, n int) int {
	if n == 0 {
		return 0
	}
	sel = (sel + delta) % n
	if sel < 0 {
		sel += n
	}
	return sel
}

func (m *Machine) moveSelection(delta int) {
	switch m.view {
	case ViewMenu:
		m.menuSel = wrap(m.menuSel, delta, menuCount)
	case ViewAuthors:
		m.authorSel = wrap(m.authorSel, delta, len(m.lib.SortedAuthors()))
	case ViewLanguages:
		m.langSel = wrap(m.langSel, delta, len(m.lib.SortedLanguages()))
	case ViewTitles:
		m.titleSel = wrap(m.titleSel, delta, m.lib.Len())
	case ViewFiltered:
		m.filteredSel = wrap(m.filteredSel, delta, len(m.filtered))
	case ViewSearch:
		m.searchSel = wrap(m.searchSel, delta, len(m.results))
	case ViewPicker:
		if p := m.CurrentPoem(); p != nil {
			m.pickerSel = wrap(m.pickerSel, delta, len(p.AllKeys()))
		}
	}
}

func (m *Machine) selectCurrent() {
	switch m.view {
	case ViewMenu:
		m.selectMenuItem()
	case ViewAuthors:
		authors := m.lib.SortedAuthors()
		if m.authorSel >= len(authors) {
			return
		}
		author := authors[m.authorSel]
		refs := m.lib.ByAuthor(author)
		if len(refs) == 0 {
			return
		}
		m.filtered = refs
		m.filteredTitle = "Poems by " + author
		m.filterAuthor, m.filterLang = author, ""
		m.filteredSel = 0
		m.push()
		m.view = ViewFiltered
	case ViewLanguages:
		langs := m.lib.SortedLanguages()
		if m.langSel >= len(langs) {
			return
		}
		lang := langs[m.langSel]
		refs := m.lib.ByLanguage(lang)
		if len(refs) == 0 {
			return
		}
		m.filtered = refs
		m.filteredTitle = "Poems in " + poem.LanguageName(lang)
		m.filterAuthor, m.filterLang = "", lang
		m.filteredSel = 0
		m.push()
		m.view = ViewFiltered
	case ViewTitles:
		titles := m.lib.SortedTitles()
		if m.titleSel >= len(titles) {
			return
		}
		m.clearFilter()
		m.openReader(poem.Ref{Poem: titles[m.titleSel].Poem}, -1)
	case ViewFiltered:
		if m.filteredSel >= len(m.filtered) {
			return
		}
		m.openReader(m.filtered[m.filteredSel], m.filteredSel)
	case ViewSearch:
		if m.searchSel >= len(m.results) {
			return
		}
		m.clearFilter()
		m.openReader(m.results[m.searchSel], -1)
	case ViewPicker:
		p := m.CurrentPoem()
		if p == nil {
			return
		}
		keys := p.AllKeys()
		if m.pickerSel >= len(keys) {
			return
		}
		key := keys[m.pickerSel]
		if key == poem.CanonicalKey {
			key = ""
		}
		// Switching versions never preserves scroll position.
		m.versionKey = key
		m.offset = 0
		m.back()
	}
}

func (m *Machine) selectMenuItem() {
	switch m.menuSel {
	case menuAuthors:
		m.push()
		m.view = ViewAuthors
	case menuLanguages:
		m.push()
		m.view = ViewLanguages
	case menuTitles:
		m.push()
		m.view = ViewTitles
	case menuRandom:
		if m.lib.Len() == 0 {
			return
		}
		m.clearFilter()
		m.openReader(poem.Ref{Poem: m.randInt(m.lib.Len())}, -1)
	}
}

func (m *Machine) clearFilter() {
	m.filtered = nil
	m.filteredTitle = ""
	m.filterAuthor, m.filterLang = "", ""
	m.filteredPos = -1
}

// openReader shows ref in the reader, resetting the viewport.
func (m *Machine) openReader(ref poem.Ref, filteredPos int) {
	m.push()
	m.view = ViewReader
	m.poemIdx = ref.Poem
	m.versionKey = ref.Key
	m.offset = 0
	m.filteredPos = filteredPos
}

func (m *Machine) openPicker() {
	if m.view != ViewReader {
		return
	}
	p := m.CurrentPoem()
	if p == nil || !p.HasVersions() {
		return
	}
	m.pickerSel = 0
	key := m.versionKey
	if key == "" {
		key = poem.CanonicalKey
	}
	for i, k := range p.AllKeys() {
		if k == key {
			m.pickerSel = i
			break
		}
	}
	m.push()
	m.view = ViewPicker
}

func (m *Machine) movePoem(delta int) {
	if m.view != ViewReader || m.lib.Len() == 0 {
		return
	}
	if m.filteredPos >= 0 && len(m.filtered) > 0 {
		m.filteredPos = wrap(m.filteredPos, delta, len(m.filtered))
		ref := m.filtered[m.filteredPos]
		m.poemIdx = ref.Poem
		m.versionKey = ref.Key
	} else {
		m.poemIdx = wrap(m.poemIdx, delta, m.lib.Len())
		m.versionKey = ""
	}
	m.offset = 0
}

// --- Accessors ---

// Done reports whether a Quit event was applied.
func (m *Machine) Done() bool { return m.done }

// View returns the active view.
func (m *Machine) View() ViewKind { return m.view }

// Size returns the last recorded terminal size.
func (m *Machine) Size() (w, h int) { return m.width, m.height }

// MenuItems returns the main menu entries with their counts.
func (m *Machine) MenuItems() []string {
	return []string{
		fmt.Sprintf("Browse by author (%d)", len(m.lib.AuthorCounts())),
		fmt.Sprintf("Browse by language (%d)", len(m.lib.LanguageCounts())),
		fmt.Sprintf("Browse by title (%d)", m.lib.Len()),
		"Random poem",
	}
}

// Selection returns the selection index for the active list view.
func (m *Machine) Selection() int {
	switch m.view {
	case ViewMenu:
		return m.menuSel
	case ViewAuthors:
		return m.authorSel
	case ViewLanguages:
		return m.langSel
	case ViewTitles:
		return m.titleSel
	case ViewFiltered:
		return m.filteredSel
	case ViewSearch:
		return m.searchSel
	case ViewPicker:
		return m.pickerSel
	}
	return 0
}

// Filtered returns the active filter result, or nil.
func (m *Machine) Filtered() []poem.Ref { return m.filtered }

// FilteredTitle returns the heading for the filtered list.
func (m *Machine) FilteredTitle() string {
	if m.filteredTitle == "" {
		return "Filtered Poems"
	}
	return m.filteredTitle
}

// FilterLanguage returns the language filter, or "" when none is active.
func (m *Machine) FilterLanguage() string { return m.filterLang }

// Query returns the current search query.
func (m *Machine) Query() string { return m.query }

// Results returns the current search results.
func (m *Machine) Results() []poem.Ref { return m.results }

// CurrentPoem returns the reader's poem, or nil when the library is empty.
func (m *Machine) CurrentPoem() *poem.Poem {
	if m.lib.Len() == 0 || m.poemIdx >= m.lib.Len() {
		return nil
	}
	return &m.lib.Poems[m.poemIdx]
}

// CurrentVersion returns the reader's active version.
func (m *Machine) CurrentVersion() poem.Version {
	p := m.CurrentPoem()
	if p == nil {
		return poem.Version{}
	}
	return p.Version(m.versionKey)
}

// VersionKey returns the active version key ("" for canonical).
func (m *Machine) VersionKey() string { return m.versionKey }

// Layout computes the grid for the reader's active version. Poems are short
// enough that recomputing per frame is fine.
func (m *Machine) Layout() layout.Layout {
	return layout.Compute(m.CurrentVersion())
}

// ViewportLen returns the reader viewport length for the current terminal
// size, never below 1. An epigraph takes a row out of the viewport.
func (m *Machine) ViewportLen() int {
	n := m.height - readerChrome
	if m.CurrentVersion().Epigraph != "" {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ScrollOffset returns the reader scroll offset, reclamped against the
// current layout and viewport length.
func (m *Machine) ScrollOffset() int {
	return layout.Clamp(m.offset, m.Layout().ScrollExtent, m.ViewportLen())
}
