// Package bubbletea provides a terminal UI for previewing themes using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/tint"
)

// Model is the Bubble Tea model for previewing a theme.
type Model struct {
	theme  *tint.Theme
	attrs  []tint.Attribute
	source string

	tokenizer tint.Tokenizer
	clipboard tint.Clipboard

	// UI state
	viewport   viewport.Model
	keymap     KeyMap
	styles     tint.ChromeStyles
	renderer   *lipgloss.Renderer
	width      int
	ready      bool
	pendingKey string
	showSource bool
	selected   int
	statusMsg  string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer  *lipgloss.Renderer
	chrome    tint.Chrome
	tokenizer tint.Tokenizer
	clipboard tint.Clipboard
	source    string
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithChrome sets the chrome that styles the preview UI.
func WithChrome(c tint.Chrome) ModelOption {
	return func(cfg *modelConfig) {
		cfg.chrome = c
	}
}

// WithTokenizer sets the tokenizer for source view highlighting.
func WithTokenizer(t tint.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithClipboard sets the clipboard used for yanking attribute values.
func WithClipboard(c tint.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithSource sets the raw theme source shown in the source view.
func WithSource(source string) ModelOption {
	return func(cfg *modelConfig) {
		cfg.source = source
	}
}

// NewModel creates a new Model for the given theme.
func NewModel(theme *tint.Theme, opts ...ModelOption) Model {
	cfg := &modelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var styles tint.ChromeStyles
	if cfg.chrome != nil {
		styles = cfg.chrome.Styles()
	}

	var attrs []tint.Attribute
	if theme != nil {
		attrs = theme.Attributes()
	}

	return Model{
		theme:     theme,
		attrs:     attrs,
		source:    cfg.source,
		tokenizer: cfg.tokenizer,
		clipboard: cfg.clipboard,
		keymap:    DefaultKeyMap(),
		styles:    styles,
		renderer:  cfg.renderer,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Any key clears a transient status message
		m.statusMsg = ""

		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.gotoTop()
			m.pendingKey = ""
			return m, nil
		}

		// Check for start of multi-key sequence
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}

		// Clear pending key on any other key press
		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.gotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.halfPage(-1)
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.halfPage(1)
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keymap.ToggleSource):
			m.toggleSource()
			return m, nil
		case key.Matches(msg, m.keymap.Yank):
			m.yankSelected()
			return m, nil
		}
	case tea.WindowSizeMsg:
		chromeHeight := 2 // title bar + status bar
		widthChanged := m.width != msg.Width
		m.width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.viewport.SetContent(m.renderContent())
			m.ready = true
		} else if widthChanged {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
			m.viewport.SetContent(m.renderContent())
		} else {
			m.viewport.Height = msg.Height - chromeHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.titleBarView(), m.viewport.View(), m.statusBarView())
}

// renderConfig collects the model state the render functions need.
func (m Model) renderConfig() renderConfig {
	return renderConfig{
		attrs:     m.attrs,
		source:    m.source,
		styles:    m.styles,
		renderer:  m.renderer,
		tokenizer: m.tokenizer,
		width:     m.width,
		selected:  m.selected,
	}
}

// renderContent renders the active view into viewport content.
func (m Model) renderContent() string {
	if m.showSource {
		return renderSource(m.renderConfig())
	}
	return renderAttributes(m.renderConfig())
}

// refresh re-renders the viewport content in place.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderContent())
}

// gotoTop moves the selection (or the source view) to the top.
func (m *Model) gotoTop() {
	if m.showSource {
		m.viewport.GotoTop()
		return
	}
	m.selected = 0
	m.refresh()
	m.viewport.GotoTop()
}

// gotoBottom moves the selection (or the source view) to the bottom.
func (m *Model) gotoBottom() {
	if m.showSource {
		m.viewport.GotoBottom()
		return
	}
	if len(m.attrs) > 0 {
		m.selected = len(m.attrs) - 1
	}
	m.refresh()
	m.viewport.GotoBottom()
}

// move shifts the selection by delta rows, scrolling the source view
// instead when it is active.
func (m *Model) move(delta int) {
	if m.showSource {
		if delta < 0 {
			m.viewport.LineUp(-delta)
		} else {
			m.viewport.LineDown(delta)
		}
		return
	}
	if len(m.attrs) == 0 {
		return
	}

	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected > len(m.attrs)-1 {
		m.selected = len(m.attrs) - 1
	}
	m.refresh()
	m.scrollToSelected()
}

// halfPage moves by half the viewport height in the given direction.
func (m *Model) halfPage(direction int) {
	if m.showSource {
		if direction < 0 {
			m.viewport.HalfViewUp()
		} else {
			m.viewport.HalfViewDown()
		}
		return
	}

	step := m.viewport.Height / 2
	if step < 1 {
		step = 1
	}
	m.move(direction * step)
}

// scrollToSelected keeps the selected row inside the visible window.
// Each attribute renders as exactly one line, so the row index is the
// content line number.
func (m *Model) scrollToSelected() {
	if m.selected < m.viewport.YOffset {
		m.viewport.SetYOffset(m.selected)
	} else if m.selected >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.selected - m.viewport.Height + 1)
	}
}

// toggleSource switches between the attribute list and the source view.
func (m *Model) toggleSource() {
	m.showSource = !m.showSource
	m.refresh()
	m.viewport.GotoTop()
}

// yankSelected copies the selected attribute value to the clipboard.
func (m *Model) yankSelected() {
	if len(m.attrs) == 0 {
		return
	}
	if m.clipboard == nil {
		m.statusMsg = "clipboard unavailable"
		return
	}

	attr := m.attrs[m.selected]
	if err := m.clipboard.Copy(attr.Value); err != nil {
		m.statusMsg = "yank failed"
		return
	}
	m.statusMsg = fmt.Sprintf("yanked %s", attr.Name)
}

// titleBarView renders the header with the theme path and attribute count.
func (m Model) titleBarView() string {
	titleStyle := styleFromColorPair(m.styles.Title, m.renderer)

	name := "(no theme)"
	if m.theme != nil && m.theme.Path != "" {
		name = m.theme.Path
	}

	label := fmt.Sprintf(" %s │ %d attributes ", name, len(m.attrs))
	if m.showSource {
		label = fmt.Sprintf(" %s │ source ", name)
	}
	return titleStyle.Render(padLine(label, m.width))
}

// statusBarView renders the status bar with position info and key help.
func (m Model) statusBarView() string {
	barStyle := styleFromColorPair(m.styles.Status, m.renderer)

	total := len(m.attrs)
	w := digitWidth(total)
	attrPos := fmt.Sprintf("attr %*d/%-*d", w, m.selected+1, w, total)
	if total == 0 {
		attrPos = fmt.Sprintf("attr %*d/%-*d", w, 0, w, 0)
	}

	help := "j/k:move  s:source  y:yank  q:quit"
	if m.showSource {
		help = "j/k:scroll  s:attributes  y:yank  q:quit"
	}

	sep := barStyle.Render(" │ ")
	content := ""
	if m.statusMsg != "" {
		content += barStyle.Render(m.statusMsg) + sep
	}
	content += barStyle.Render(attrPos) + sep +
		barStyle.Render(m.scrollPosition()) + sep +
		barStyle.Render(help) +
		barStyle.Render("  ")

	// Right-align by padding the left side with background
	contentWidth := lipgloss.Width(content)
	if m.width > contentWidth {
		padding := barStyle.Render(strings.Repeat(" ", m.width-contentWidth))
		content = padding + content
	}

	return content
}

// scrollPosition returns a string indicating the scroll position.
func (m Model) scrollPosition() string {
	if m.viewport.AtTop() {
		return "Top"
	}
	if m.viewport.AtBottom() {
		return "Bot"
	}
	percent := int(m.viewport.ScrollPercent() * 100)
	return fmt.Sprintf("%2d%%", percent)
}

// Compile-time interface verification.
var _ tint.Previewer = (*Previewer)(nil)

// Previewer implements tint.Previewer using a Bubble Tea TUI.
type Previewer struct {
	chrome      tint.Chrome
	tokenizer   tint.Tokenizer
	clipboard   tint.Clipboard
	renderer    *lipgloss.Renderer
	programOpts []tea.ProgramOption
}

// PreviewerOption configures a Previewer.
type PreviewerOption func(*Previewer)

// WithPreviewTokenizer sets the tokenizer for source view highlighting.
func WithPreviewTokenizer(t tint.Tokenizer) PreviewerOption {
	return func(p *Previewer) {
		p.tokenizer = t
	}
}

// WithPreviewClipboard sets the clipboard used for yanking values.
func WithPreviewClipboard(c tint.Clipboard) PreviewerOption {
	return func(p *Previewer) {
		p.clipboard = c
	}
}

// WithPreviewRenderer sets a custom lipgloss renderer for the preview.
func WithPreviewRenderer(r *lipgloss.Renderer) PreviewerOption {
	return func(p *Previewer) {
		p.renderer = r
	}
}

// WithProgramOptions appends Bubble Tea program options, which lets
// tests swap the program's input and output.
func WithProgramOptions(opts ...tea.ProgramOption) PreviewerOption {
	return func(p *Previewer) {
		p.programOpts = append(p.programOpts, opts...)
	}
}

// NewPreviewer creates a new Previewer styled by the given chrome.
func NewPreviewer(chrome tint.Chrome, opts ...PreviewerOption) *Previewer {
	p := &Previewer{chrome: chrome}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Preview displays the theme and blocks until the user exits or ctx is
// cancelled. The theme source is re-read from the theme's path for the
// source view; when that fails the view falls back to a placeholder.
func (p *Previewer) Preview(ctx context.Context, theme *tint.Theme) error {
	var source string
	if theme != nil && theme.Path != "" {
		if data, err := os.ReadFile(theme.Path); err == nil {
			source = string(data)
		}
	}

	m := NewModel(theme,
		WithChrome(p.chrome),
		WithTokenizer(p.tokenizer),
		WithClipboard(p.clipboard),
		WithRenderer(p.renderer),
		WithSource(source),
	)

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, p.programOpts...)

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
