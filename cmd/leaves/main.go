// leaves is a terminal reader for a personal poetry collection.
//
// It loads .poem files (YAML, one canonical version plus any number of
// translations or transliterations) from a directory, lays each version out
// according to its script (left-to-right, right-to-left, or vertical) and
// presents it in a scrollable reader with browse-by-author/language/title
// menus. The directory is watched so edits show up without restarting.
//
// Usage:
//
//	leaves                      # Read poems from $LEAVES_DIR, config, or ~/Documents/poetry
//	leaves --dir <path>         # Use a specific poems directory
//	leaves --config <path>      # Use a specific config file
//	leaves --json               # Dump the library index as JSON and exit
//	leaves --version            # Print version and exit
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"leaves/internal/config"
	"leaves/internal/layout"
	"leaves/internal/nav"
	"leaves/internal/poem"
)

// Version is set via ldflags at build time (e.g. -X main.Version=v0.1.0).
var Version = "dev"

// jsonOutput is the structure for --json mode.
type jsonOutput struct {
	Poems []jsonPoem `json:"poems"`
	Stats jsonStats  `json:"stats"`
}

type jsonPoem struct {
	File     string   `json:"file"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Language string   `json:"language"`
	Versions []string `json:"versions"`
	Lines    int      `json:"lines"`
	RTL      bool     `json:"rtl,omitempty"`
	Vertical bool     `json:"vertical,omitempty"`
}

type jsonStats struct {
	Poems     int `json:"poems"`
	Authors   int `json:"authors"`
	Languages int `json:"languages"`
	Versions  int `json:"versions"`
}

func main() {
	dirFlag := flag.String("dir", "", "poems directory (default: auto-discover)")
	configFlag := flag.String("config", "", "config file path (default: ~/.config/leaves/config.toml)")
	jsonMode := flag.Bool("json", false, "dump the library index as JSON and exit (no TUI)")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("leaves %s\n", Version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leaves: %v\n", err)
		os.Exit(1)
	}

	if *dirFlag != "" {
		cfg.Dir = *dirFlag
	}
	dir, err := poem.Discover(cfg.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leaves: %v\n", err)
		os.Exit(1)
	}

	lib, warnings, err := poem.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leaves: %v\n", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "leaves: skipping %s\n", w)
	}

	// --json mode: print the index, exit.
	if *jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(buildJSONOutput(lib)); err != nil {
			fmt.Fprintf(os.Stderr, "leaves: json: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	w, err := poem.NewWatcher(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leaves: watch: %v\n", err)
		os.Exit(1)
	}

	m := newModel(lib, w, dir, cfg.Theme)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Feed directory change events into the TUI.
	go func() {
		for range w.Changes() {
			p.Send(libraryChangedMsg{})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "leaves: %v\n", err)
		os.Exit(1)
	}
}

// buildJSONOutput converts a library into the JSON output structure.
func buildJSONOutput(lib *poem.Library) jsonOutput {
	poems := make([]jsonPoem, lib.Len())
	totalVersions := 0
	for i, p := range lib.Poems {
		poems[i] = jsonPoem{
			File:     p.ID,
			Title:    p.Canonical.Title,
			Author:   p.Canonical.Author,
			Language: p.Canonical.Language,
			Versions: p.VersionKeys,
			Lines:    len(p.Canonical.Lines),
			RTL:      p.Canonical.RTL,
			Vertical: p.Canonical.Vertical,
		}
		totalVersions += 1 + len(p.VersionKeys)
	}
	return jsonOutput{
		Poems: poems,
		Stats: jsonStats{
			Poems:     lib.Len(),
			Authors:   len(lib.AuthorCounts()),
			Languages: len(lib.LanguageCounts()),
			Versions:  totalVersions,
		},
	}
}

// --- Messages ---

type libraryChangedMsg struct{}

type libraryReadyMsg struct {
	lib *poem.Library
	err error
}

// --- Key bindings ---

type keyMap struct {
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Back    key.Binding
	Menu    key.Binding
	Search  key.Binding
	Switch  key.Binding
	Edit    key.Binding
	Help    key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous poem")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next poem")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	Back:   key.NewBinding(key.WithKeys("backspace", "esc"), key.WithHelp("backspace", "back")),
	Menu:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Switch: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "switch version")),
	Edit:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Back, k.Menu, k.Search},
		{k.Switch, k.Edit, k.Help, k.Quit},
	}
}

// --- Model ---

type uiModel struct {
	lib     *poem.Library
	machine *nav.Machine
	watcher *poem.Watcher
	dir     string

	width  int
	height int

	search   textinput.Model
	help     help.Model
	showHelp bool

	theme  config.Theme
	styles styleSet
}

// styleSet holds the theme-derived styles.
type styleSet struct {
	accent    lipgloss.Style
	highlight lipgloss.Style
	text      lipgloss.Style
	dim       lipgloss.Style
	bold      lipgloss.Style
	italic    lipgloss.Style
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CBA6F7")).
			Background(lipgloss.Color("#1E1E2E")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")).
			Background(lipgloss.Color("#1E1E2E"))
)

func newModel(lib *poem.Library, w *poem.Watcher, dir string, theme config.Theme) uiModel {
	ti := textinput.New()
	ti.Placeholder = "title or author"
	ti.Prompt = "search: "
	ti.CharLimit = 80

	return uiModel{
		lib:     lib,
		machine: nav.New(lib),
		watcher: w,
		dir:     dir,
		width:   80,
		height:  24,
		search:  ti,
		help:    help.New(),
		theme:   theme,
		styles: styleSet{
			accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)),
			highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight)),
			text:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text)),
			dim:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Dim)),
			bold:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Text)),
			italic:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(theme.Text)),
		},
	}
}

func (m uiModel) Init() tea.Cmd {
	return nil
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.machine.Apply(nav.Resize{Width: msg.Width, Height: msg.Height})
		return m, nil

	case libraryChangedMsg:
		return m, m.reloadLibrary()

	case libraryReadyMsg:
		if msg.err == nil && msg.lib != nil {
			m.lib = msg.lib
			m.machine.SetLibrary(msg.lib)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m uiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search view owns most keystrokes while the query is being typed.
	if m.machine.View() == nav.ViewSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.machine.Apply(nav.Quit{})
		m.watcher.Close()
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, keys.Menu):
		m.machine.Apply(nav.OpenMenu{})

	case key.Matches(msg, keys.Search):
		m.search.SetValue("")
		m.search.Focus()
		m.machine.Apply(nav.OpenSearch{})
		m.machine.Apply(nav.SetQuery{Query: ""})

	case key.Matches(msg, keys.Back):
		m.machine.Apply(nav.Back{})

	case key.Matches(msg, keys.Select):
		m.machine.Apply(nav.Select{})

	case key.Matches(msg, keys.Up):
		if m.machine.View() == nav.ViewReader {
			m.machine.Apply(nav.ScrollLine{Delta: -1})
		} else {
			m.machine.Apply(nav.MoveSelection{Delta: -1})
		}

	case key.Matches(msg, keys.Down):
		if m.machine.View() == nav.ViewReader {
			m.machine.Apply(nav.ScrollLine{Delta: 1})
		} else {
			m.machine.Apply(nav.MoveSelection{Delta: 1})
		}

	case key.Matches(msg, keys.Left):
		m.machine.Apply(nav.MovePoem{Delta: -1})

	case key.Matches(msg, keys.Right):
		m.machine.Apply(nav.MovePoem{Delta: 1})

	case key.Matches(msg, keys.Switch):
		m.machine.Apply(nav.SwitchVersion{})

	case key.Matches(msg, keys.Edit):
		if m.machine.View() == nav.ViewReader {
			if p := m.machine.CurrentPoem(); p != nil {
				openInEditor(p.Path)
			}
		}
	}

	// Back can land on the search view with its input blurred.
	if m.machine.View() == nav.ViewSearch && !m.search.Focused() {
		m.search.Focus()
	}

	return m, nil
}

func (m uiModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.machine.Apply(nav.Quit{})
		m.watcher.Close()
		return m, tea.Quit
	case tea.KeyEsc:
		m.search.Blur()
		m.machine.Apply(nav.Back{})
		return m, nil
	case tea.KeyEnter:
		m.search.Blur()
		m.machine.Apply(nav.Select{})
		return m, nil
	case tea.KeyUp:
		m.machine.Apply(nav.MoveSelection{Delta: -1})
		return m, nil
	case tea.KeyDown:
		m.machine.Apply(nav.MoveSelection{Delta: 1})
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.machine.Apply(nav.SetQuery{Query: m.search.Value()})
	return m, cmd
}

func (m uiModel) reloadLibrary() tea.Cmd {
	dir := m.dir
	return func() tea.Msg {
		lib, _, err := poem.Load(dir)
		return libraryReadyMsg{lib: lib, err: err}
	}
}

// openInEditor hands a poem file to the OS default opener.
func openInEditor(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/C", "start", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	_ = cmd.Start()
}

// --- View rendering ---

func (m uiModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTitleBar())
	b.WriteRune('\n')

	var content string
	switch m.machine.View() {
	case nav.ViewMenu:
		content = m.renderMenu()
	case nav.ViewAuthors:
		content = m.renderAuthors()
	case nav.ViewLanguages:
		content = m.renderLanguages()
	case nav.ViewTitles:
		content = m.renderTitles()
	case nav.ViewFiltered:
		content = m.renderFiltered()
	case nav.ViewSearch:
		content = m.renderSearch()
	case nav.ViewReader:
		content = m.renderReader()
	case nav.ViewPicker:
		content = m.renderPicker()
	}

	// Truncate each line to terminal width so content doesn't wrap
	// on resize. Uses ANSI-aware width measurement.
	content = truncateLines(content, m.width)
	b.WriteString(content)

	// Pad to fill the screen.
	rendered := strings.Count(b.String(), "\n")
	for rendered < m.height-2 {
		b.WriteRune('\n')
		rendered++
	}

	if m.showHelp {
		b.WriteString(m.help.View(keys))
	} else {
		b.WriteString(m.renderStatusBar())
	}

	return b.String()
}

func (m uiModel) renderTitleBar() string {
	title := titleStyle.Render("leaves")
	stats := m.styles.dim.Render(fmt.Sprintf(
		"%d poems | %d authors | %d languages",
		m.lib.Len(),
		len(m.lib.AuthorCounts()),
		len(m.lib.LanguageCounts()),
	))
	gap := strings.Repeat(" ", max(0, m.width-lipgloss.Width(title)-lipgloss.Width(stats)-2))
	return title + gap + stats
}

func (m uiModel) renderStatusBar() string {
	left := " " + m.contextHelp()
	gap := strings.Repeat(" ", max(0, m.width-lipgloss.Width(left)-1))
	return statusBarStyle.Render(left + gap)
}

// contextHelp builds the status-bar hint line for the current view.
func (m uiModel) contextHelp() string {
	hint := func(k, desc string) string {
		return m.styles.accent.Render(k) + ": " + desc
	}
	var items []string
	switch m.machine.View() {
	case nav.ViewMenu:
		items = []string{hint("↑/↓", "select"), hint("enter", "choose"), hint("/", "search"), hint("q", "quit")}
	case nav.ViewAuthors, nav.ViewLanguages, nav.ViewTitles, nav.ViewFiltered:
		items = []string{hint("↑/↓", "select"), hint("enter", "choose"), hint("backspace", "back")}
	case nav.ViewSearch:
		items = []string{hint("type", "to search"), hint("enter", "open"), hint("esc", "back")}
	case nav.ViewReader:
		items = []string{hint("m", "menu"), hint("←/→", "navigate poems")}
		if m.machine.Layout().Overflows(m.machine.ViewportLen()) {
			items = append(items, hint("↑/↓", "scroll"))
		}
		if p := m.machine.CurrentPoem(); p != nil && p.HasVersions() {
			items = append(items, hint("s", "switch version"))
		}
		items = append(items, hint("ctrl+e", "edit"), hint("backspace", "back"))
	case nav.ViewPicker:
		items = []string{hint("↑/↓", "select"), hint("enter", "choose"), hint("backspace", "cancel")}
	}
	return strings.Join(items, " | ")
}

// renderList renders items with a cursor marker on the selection.
func (m uiModel) renderList(heading string, items []string, selected int) string {
	var b strings.Builder
	b.WriteString(m.styles.highlight.Render(heading))
	b.WriteRune('\n')
	b.WriteRune('\n')
	for i, item := range items {
		if i == selected {
			b.WriteString(m.styles.accent.Render("> " + item))
		} else {
			b.WriteString(m.styles.text.Render("  " + item))
		}
		b.WriteRune('\n')
	}
	if len(items) == 0 {
		b.WriteString(m.styles.dim.Render("  (nothing here)"))
		b.WriteRune('\n')
	}
	return b.String()
}

func (m uiModel) renderMenu() string {
	return m.renderList("Menu", m.machine.MenuItems(), m.machine.Selection())
}

func (m uiModel) renderAuthors() string {
	counts := m.lib.AuthorCounts()
	authors := m.lib.SortedAuthors()
	items := make([]string, len(authors))
	for i, a := range authors {
		items[i] = fmt.Sprintf("%s (%d)", a, counts[a])
	}
	return m.renderList("Authors", items, m.machine.Selection())
}

func (m uiModel) renderLanguages() string {
	counts := m.lib.LanguageCounts()
	langs := m.lib.SortedLanguages()
	items := make([]string, len(langs))
	for i, l := range langs {
		items[i] = fmt.Sprintf("%s (%d)", poem.LanguageName(l), counts[l])
	}
	return m.renderList("Languages", items, m.machine.Selection())
}

func (m uiModel) renderTitles() string {
	titles := m.lib.SortedTitles()
	items := make([]string, len(titles))
	for i, t := range titles {
		items[i] = t.Title
	}
	return m.renderList("Titles", items, m.machine.Selection())
}

func (m uiModel) renderFiltered() string {
	refs := m.machine.Filtered()
	items := make([]string, len(refs))
	for i, ref := range refs {
		v := m.lib.Poems[ref.Poem].Version(ref.Key)
		if m.machine.FilterLanguage() != "" {
			items[i] = fmt.Sprintf("%s - %s", v.Author, v.Title)
		} else {
			items[i] = v.Title
		}
	}
	return m.renderList(m.machine.FilteredTitle(), items, m.machine.Selection())
}

func (m uiModel) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.styles.highlight.Render("Search"))
	b.WriteRune('\n')
	b.WriteRune('\n')
	b.WriteString(m.search.View())
	b.WriteRune('\n')
	b.WriteRune('\n')

	results := m.machine.Results()
	if len(results) == 0 {
		if m.machine.Query() != "" {
			b.WriteString(m.styles.dim.Render("  (no matches)"))
			b.WriteRune('\n')
		}
		return b.String()
	}
	for i, ref := range results {
		v := m.lib.Poems[ref.Poem].Canonical
		line := fmt.Sprintf("%s - %s", v.Author, v.Title)
		if i == m.machine.Selection() {
			b.WriteString(m.styles.accent.Render("> " + line))
		} else {
			b.WriteString(m.styles.text.Render("  " + line))
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func (m uiModel) renderPicker() string {
	p := m.machine.CurrentPoem()
	if p == nil {
		return m.styles.dim.Render("  (no poem)")
	}
	versionKeys := p.AllKeys()
	items := make([]string, len(versionKeys))
	for i, k := range versionKeys {
		v := p.Version(k)
		items[i] = fmt.Sprintf("%-16s %s — %s", k, poem.LanguageName(v.Language), v.Title)
	}
	return m.renderList("Versions", items, m.machine.Selection())
}

// --- Reader ---

func (m uiModel) renderReader() string {
	p := m.machine.CurrentPoem()
	if p == nil {
		return m.styles.dim.Render("  (no poems found — add .poem files to " + m.dir + ")")
	}
	v := m.machine.CurrentVersion()

	var b strings.Builder

	heading := m.styles.accent.Render(v.Author) +
		m.styles.dim.Render(" - ") +
		m.styles.accent.Render(v.Title)
	if k := m.machine.VersionKey(); k != "" {
		heading += m.styles.dim.Render(" [" + k + "]")
	}
	b.WriteString(heading)
	b.WriteRune('\n')

	if v.Epigraph != "" {
		b.WriteString(m.styles.dim.Render("  " + v.Epigraph))
		b.WriteRune('\n')
	}
	b.WriteRune('\n')

	full := m.machine.Layout()
	viewLen := m.machine.ViewportLen()
	offset := m.machine.ScrollOffset()
	slice := full.Slice(offset, viewLen)

	lines := renderSlice(slice, m.styles.bold, m.styles.italic)

	// Right-align RTL blocks; the mirrored grid already hugs the right
	// edge of its own cross extent.
	contentWidth := m.width - 2
	if full.RTL && !full.Vertical {
		for i, line := range lines {
			if pad := contentWidth - lipgloss.Width(line); pad > 0 {
				lines[i] = strings.Repeat(" ", pad) + line
			}
		}
	}

	overflow := full.Overflows(viewLen)
	for i, line := range lines {
		b.WriteString(m.styles.text.Render(line))
		if overflow {
			pad := contentWidth - lipgloss.Width(line)
			if pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(" ")
			b.WriteString(m.styles.dim.Render(scrollbarRune(i, viewLen, offset, full.ScrollExtent)))
		}
		b.WriteRune('\n')
	}

	return b.String()
}

// scrollbarRune returns the gutter glyph for visible row i: a thumb where
// the viewport sits within the full scroll extent, a track elsewhere.
func scrollbarRune(i, viewLen, offset, extent int) string {
	if extent <= viewLen {
		return " "
	}
	thumbLen := viewLen * viewLen / extent
	if thumbLen < 1 {
		thumbLen = 1
	}
	maxOffset := extent - viewLen
	thumbStart := offset * (viewLen - thumbLen) / maxOffset
	if i >= thumbStart && i < thumbStart+thumbLen {
		return "▐"
	}
	return "│"
}

// renderSlice paints a layout slice into one string per scroll-axis slot,
// applying the given styles to emphasized cells.
//
// Horizontal slots are source lines; glyphs land at their logical columns
// and empty slots become single spaces. Vertical slots are grid rows read
// across the column slots right to left (first line rightmost); every
// vertical slot is padded to a uniform two terminal cells with full-width
// spaces so the columns stay aligned.
func renderSlice(l layout.Layout, bold, italic lipgloss.Style) []string {
	grid := make(map[[2]int]layout.Cell, len(l.Cells))
	for _, c := range l.Cells {
		grid[[2]int{c.Row, c.Col}] = c
	}

	lines := make([]string, l.ScrollExtent)
	for row := 0; row < l.ScrollExtent; row++ {
		var sb strings.Builder
		if l.Vertical {
			for col := l.CrossExtent - 1; col >= 0; col-- {
				c, ok := grid[[2]int{row, col}]
				if !ok {
					sb.WriteString("　")
					continue
				}
				sb.WriteString(styleCell(c, bold, italic))
				if runewidth.StringWidth(c.Grapheme) < 2 {
					sb.WriteString(" ")
				}
			}
		} else {
			// Trailing empty slots are dropped so horizontal rows don't
			// carry invisible padding.
			last := -1
			for col := 0; col < l.CrossExtent; col++ {
				if _, ok := grid[[2]int{row, col}]; ok {
					last = col
				}
			}
			for col := 0; col <= last; col++ {
				c, ok := grid[[2]int{row, col}]
				if !ok {
					sb.WriteString(" ")
					continue
				}
				sb.WriteString(styleCell(c, bold, italic))
			}
		}
		lines[row] = sb.String()
	}
	return lines
}

// styleCell wraps one grapheme in its emphasis style, if any.
func styleCell(c layout.Cell, bold, italic lipgloss.Style) string {
	switch {
	case c.Bold && c.Italic:
		return bold.Italic(true).Render(c.Grapheme)
	case c.Bold:
		return bold.Render(c.Grapheme)
	case c.Italic:
		return italic.Render(c.Grapheme)
	}
	return c.Grapheme
}

// --- Helpers ---

// truncateLines truncates each line in content to at most width visible
// characters, preserving ANSI escape codes. This prevents terminal line
// wrapping when the window is resized narrower.
func truncateLines(content string, width int) string {
	if width <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
