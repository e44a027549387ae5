// Package display provides the terminal recipe browser using Bubble Tea.
//
// The [UI] type is the engine's renderer: the engine draws the list and the
// detail into it synchronously, and the Bubble Tea model reads the result
// in View. Every engine call happens inside Update, so the engine and the
// view share a single goroutine.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipebrowser/internal/command"
	"github.com/hammamikhairi/recipebrowser/internal/domain"
	"github.com/hammamikhairi/recipebrowser/internal/logger"
	"github.com/hammamikhairi/recipebrowser/internal/tagmeta"
)

// EmptyListText is shown when no recipe passes the filters.
const EmptyListText = "🔍 沒有找到符合條件的食譜"

// Browser is the engine surface the UI drives.
type Browser interface {
	Refresh()
	OnSearchInput(text string)
	OnTagToggle(category, value string)
	OnClear()
	OnItemActivate(id int)
	State() domain.FilterState
}

// Compile-time interface check.
var _ domain.Renderer = (*UI)(nil)

// UI manages the terminal through Bubble Tea.
//
// Pass the UI to the engine as its renderer, then call [UI.Run] (blocking).
type UI struct {
	screen *screen
	parser *command.Parser
	log    *logger.Logger
}

// NewUI creates the display. text renders instruction markup in the detail
// pane; nil falls back to plain text.
func NewUI(parser *command.Parser, text InstructionRenderer, log *logger.Logger) *UI {
	return &UI{
		screen: newScreen(text, log),
		parser: parser,
		log:    log,
	}
}

// RenderList implements domain.Renderer.
func (u *UI) RenderList(v domain.ListView) { u.screen.RenderList(v) }

// RenderDetail implements domain.Renderer.
func (u *UI) RenderDetail(d domain.Detail) { u.screen.RenderDetail(d) }

// ResetScroll implements domain.Renderer.
func (u *UI) ResetScroll() { u.screen.ResetScroll() }

// Run draws the initial list and starts the Bubble Tea event loop. Blocks
// until quit.
func (u *UI) Run(b Browser) error {
	b.Refresh()
	p := tea.NewProgram(newModel(b, u.screen, u.parser), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type focus int

const (
	focusSearch focus = iota
	focusTags
	focusList
	focusCount
)

type tagChoice struct {
	category domain.Category
	value    domain.TagValue
	meta     domain.TagMeta
}

type model struct {
	browser Browser
	screen  *screen
	parser  *command.Parser
	input   textinput.Model
	tags    []tagChoice

	focus      focus
	tagCursor  int
	listCursor int
	status     string
	urgent     bool
	width      int
	height     int
}

func newModel(b Browser, s *screen, parser *command.Parser) model {
	ti := textinput.New()
	// Plain-text prompt so the textinput width math stays correct.
	ti.Prompt = "搜尋> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = inputStyle
	ti.Placeholder = "name or tag, :help for commands"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60 // updated on first WindowSizeMsg

	var tags []tagChoice
	for _, c := range domain.Categories() {
		for _, v := range tagmeta.Values(c) {
			meta, _ := tagmeta.Lookup(c, v)
			tags = append(tags, tagChoice{category: c, value: v, meta: meta})
		}
	}

	return model{
		browser: b,
		screen:  s,
		parser:  parser,
		input:   ti,
		tags:    tags,
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle("Recipes"))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, m.setFocus(focusSearch)
		case "tab":
			return m, m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "pgdown":
			m.screen.scrollBy(m.detailHeight())
			return m, nil
		case "pgup":
			m.screen.scrollBy(-m.detailHeight())
			return m, nil
		case "ctrl+r":
			m.clear()
			return m, nil
		}

		switch m.focus {
		case focusTags:
			m.updateTags(msg)
			return m, nil
		case focusList:
			m.updateList(msg)
			return m, nil
		}
		return m.updateSearch(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - lipgloss.Width(m.input.Prompt) - 1; w > 0 {
			m.input.Width = w
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) setFocus(f focus) tea.Cmd {
	m.focus = f
	if f == focusSearch {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// updateSearch feeds keys to the text input. Plain text searches as it is
// typed; command lines run on enter. A bare id is not a search term, so
// editing the box down to digits drops the query.
func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.runLine(m.input.Value())
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		switch a := m.parser.Parse(v); {
		case a.Type == domain.ActionSearch:
			m.browser.OnSearchInput(a.Query)
			m.clampList()
		case a.Type == domain.ActionSelect && !strings.HasPrefix(strings.TrimSpace(v), command.Prefix):
			m.browser.OnSearchInput("")
			m.clampList()
		}
	}
	return m, cmd
}

func (m model) runLine(line string) (tea.Model, tea.Cmd) {
	m.status, m.urgent = "", false

	a := m.parser.Parse(line)
	switch a.Type {
	case domain.ActionSearch:
		m.browser.OnSearchInput(a.Query)
	case domain.ActionToggleTag:
		m.browser.OnTagToggle(a.Category.String(), string(a.Value))
	case domain.ActionClear:
		m.clear()
	case domain.ActionSelect:
		m.browser.OnItemActivate(a.ID)
		if id, ok := m.browser.State().SelectedID(); !ok || id != a.ID {
			m.setStatus(fmt.Sprintf("no recipe #%d", a.ID), true)
		}
	case domain.ActionHelp:
		m.setStatus(strings.Join(command.Help(), "\n"), false)
	case domain.ActionQuit:
		return m, tea.Quit
	default:
		m.setStatus(fmt.Sprintf("unknown command %q, try :help", a.Payload), true)
	}

	if a.Type != domain.ActionSearch {
		m.input.SetValue(m.browser.State().Query())
		m.input.CursorEnd()
	}
	m.clampList()
	return m, nil
}

func (m *model) updateTags(msg tea.KeyMsg) {
	if len(m.tags) == 0 {
		return
	}
	switch msg.String() {
	case "left", "up", "h", "k":
		m.tagCursor = (m.tagCursor + len(m.tags) - 1) % len(m.tags)
	case "right", "down", "l", "j":
		m.tagCursor = (m.tagCursor + 1) % len(m.tags)
	case " ", "enter":
		t := m.tags[m.tagCursor]
		m.browser.OnTagToggle(t.category.String(), string(t.value))
		m.clampList()
	}
}

func (m *model) updateList(msg tea.KeyMsg) {
	items := m.screen.list.Items
	switch msg.String() {
	case "up", "k":
		if m.listCursor > 0 {
			m.listCursor--
		}
	case "down", "j":
		if m.listCursor < len(items)-1 {
			m.listCursor++
		}
	case " ", "enter":
		if m.listCursor < len(items) {
			m.browser.OnItemActivate(items[m.listCursor].ID)
		}
	}
}

func (m *model) clear() {
	m.browser.OnClear()
	m.input.SetValue("")
	m.clampList()
	m.setStatus("filters cleared", false)
}

func (m *model) setStatus(text string, urgent bool) {
	m.status, m.urgent = text, urgent
}

func (m *model) clampList() {
	if n := len(m.screen.list.Items); m.listCursor >= n {
		m.listCursor = n - 1
	}
	if m.listCursor < 0 {
		m.listCursor = 0
	}
}

// ── View ─────────────────────────────────────────────────────────

const listWidth = 28

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewTags())
	b.WriteByte('\n')

	list := m.pane(m.viewList(), listWidth, m.focus == focusList)
	detail := m.pane(m.viewDetail(), m.detailWidth(), false)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))
	b.WriteByte('\n')

	if m.status != "" {
		style := secondaryStyle
		if m.urgent {
			style = urgentStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(secondaryStyle.Render("tab focus · space toggle · enter open · pgup/pgdn scroll · ctrl+r clear · esc search · ctrl+c quit"))
	return b.String()
}

func (m model) viewTags() string {
	state := m.browser.State()

	var b strings.Builder
	i := 0
	for _, c := range domain.Categories() {
		b.WriteString(labelStyle.Render(c.String()))
		for ; i < len(m.tags) && m.tags[i].category == c; i++ {
			t := m.tags[i]
			label := t.meta.Glyph + " " + string(t.value)
			cursor := m.focus == focusTags && i == m.tagCursor
			b.WriteString(chip(label, t.meta.Class, state.Has(t.category, t.value), cursor))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m model) viewList() string {
	view := m.screen.list
	if len(view.Items) == 0 {
		return secondaryStyle.Render(EmptyListText)
	}

	height := m.detailHeight()
	start := 0
	if m.listCursor >= height {
		start = m.listCursor - height + 1
	}

	lines := make([]string, 0, height)
	for i := start; i < len(view.Items) && len(lines) < height; i++ {
		r := view.Items[i]
		line := fmt.Sprintf("%s %s", r.Icon, r.Name)
		style := primaryStyle
		if view.IsSelected(r.ID) {
			line = "▸ " + line
			style = selectedStyle
		} else {
			line = "  " + line
		}
		if m.focus == focusList && i == m.listCursor {
			style = style.Inherit(cursorStyle)
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

func (m model) viewDetail() string {
	if !m.screen.hasDetail {
		return RenderBanner(m.detailWidth()) + "\n" + secondaryStyle.Render("select a recipe to see how to make it")
	}
	return strings.Join(m.screen.detailLines(m.detailHeight()), "\n")
}

func (m model) pane(content string, width int, focused bool) string {
	style := paneStyle
	if focused {
		style = focusedPaneStyle
	}
	return style.Width(width).Height(m.detailHeight()).Render(content)
}

// detailHeight is the number of content rows in the list and detail panes.
func (m model) detailHeight() int {
	// input, blank, four tag rows, blank, pane borders, footer, status
	const chrome = 11
	if h := m.height - chrome; h > 3 {
		return h
	}
	return 3
}

func (m model) detailWidth() int {
	// list pane plus both pane borders and paddings
	if w := m.width - listWidth - 8; w > 20 {
		return w
	}
	return 20
}
