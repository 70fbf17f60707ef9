package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fluxoryn/vibe-fuse/internal/preset"
	"github.com/fluxoryn/vibe-fuse/internal/session"
	"github.com/fluxoryn/vibe-fuse/internal/tui/components"
	"github.com/fluxoryn/vibe-fuse/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// studioFrameInterval paces the animated preview.
	studioFrameInterval = 80 * time.Millisecond

	// studioPreviewHeight is the number of rows in the main preview.
	studioPreviewHeight = 7

	// presetSwatchWidth is the width of the swatch beside each preset.
	presetSwatchWidth = 6
)

type studioFocus int

const (
	focusMood studioFocus = iota
	focusPresets
)

// --- Messages ---

type studioFrameMsg struct {
	at time.Time
}

// --- Confirmation ---

// inlineAnswer carries a yes/no answer from the studio's own prompt to the
// session's Confirmer. The answer is consumed by the next Confirm call.
type inlineAnswer struct {
	approved bool
}

func (a *inlineAnswer) Confirm(context.Context, string) (bool, error) {
	ok := a.approved
	a.approved = false
	return ok, nil
}

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingOverwrite
	pendingRemove
)

type pending struct {
	kind   pendingKind
	prompt string
	index  int
}

// --- Studio model ---

// StudioOptions configure RunStudio.
type StudioOptions struct {
	// Clipboard receives copied CSS.
	Clipboard session.Clipboard
	// Recorder receives completed actions.
	Recorder session.Recorder
	// Animated is the initial animation flag.
	Animated bool
	// PreviewWidth caps the preview width in cells. Zero fills the window.
	PreviewWidth int
	// Backend is shown in the header.
	Backend string
}

type studioModel struct {
	sess   *session.Session
	answer *inlineAnswer
	clock  func() time.Time

	input   textinput.Model
	focus   studioFocus
	presets []preset.Preset
	cursor  int

	pending pending

	animStart time.Time
	now       time.Time

	previewWidth int
	backend      string

	width  int
	height int

	status  string
	isError bool
}

// RunStudio starts the interactive studio over store.
func RunStudio(store *preset.Store, opts StudioOptions) error {
	m := newStudioModel(store, opts, time.Now)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newStudioModel(store *preset.Store, opts StudioOptions, clock func() time.Time) studioModel {
	ti := textinput.New()
	ti.Placeholder = "describe a mood (calm ocean, late night...)"
	ti.Prompt = "mood › "
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()

	answer := &inlineAnswer{}
	m := studioModel{
		answer:       answer,
		clock:        clock,
		input:        ti,
		focus:        focusMood,
		previewWidth: opts.PreviewWidth,
		backend:      opts.Backend,
	}

	sessOpts := []session.Option{
		session.WithConfirmer(answer),
		session.WithAnimated(opts.Animated),
	}
	if opts.Clipboard != nil {
		sessOpts = append(sessOpts, session.WithClipboard(opts.Clipboard))
	}
	if opts.Recorder != nil {
		sessOpts = append(sessOpts, session.WithRecorder(opts.Recorder))
	}
	m.sess = session.New(store, sessOpts...)

	// The studio opens on the neutral palette.
	m.sess.Generate("")
	m.now = clock()
	m.animStart = m.now
	m.presets = m.sess.Presets()
	return m
}

func (m studioModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.frameCmd())
}

func (m studioModel) frameCmd() tea.Cmd {
	return tea.Tick(studioFrameInterval, func(t time.Time) tea.Msg {
		return studioFrameMsg{at: t}
	})
}

func (m studioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case studioFrameMsg:
		m.now = msg.at
		return m, m.frameCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusMood {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m studioModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pending.kind != pendingNone {
		return m.handleConfirmKey(msg)
	}

	// Global bindings.
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		m.switchFocus()
		return m, nil
	case "ctrl+a":
		m.toggleAnimate()
		return m, nil
	case "ctrl+s":
		m.save()
		return m, nil
	case "ctrl+y":
		m.copyCSS()
		return m, nil
	}

	if m.focus == focusMood {
		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "enter":
			m.generate()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter":
		m.apply()
	case "d", "x", "delete":
		m.askRemove()
	case "a":
		m.toggleAnimate()
	case "s":
		m.save()
	case "c":
		m.copyCSS()
	}
	return m, nil
}

func (m studioModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.pending
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		m.pending = pending{}
		m.answer.approved = true
		switch p.kind {
		case pendingOverwrite:
			m.commitSave()
		case pendingRemove:
			m.commitRemove(p.index)
		}
		// The session only consults the answer when it still needs one.
		m.answer.approved = false
	case "n", "esc":
		m.pending = pending{}
		m.setStatus("Cancelled", false)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// --- Actions ---

func (m *studioModel) switchFocus() {
	if m.focus == focusMood {
		m.focus = focusPresets
		m.input.Blur()
		return
	}
	m.focus = focusMood
	m.input.Focus()
}

func (m *studioModel) generate() {
	m.sess.Generate(m.input.Value())
	m.restartAnimation()
	m.setStatus("", false)
}

func (m *studioModel) toggleAnimate() {
	if m.sess.ToggleAnimate() {
		m.restartAnimation()
		m.setStatus("Animation on", false)
		return
	}
	m.setStatus("Animation off", false)
}

func (m *studioModel) apply() {
	if len(m.presets) == 0 {
		return
	}
	p := m.presets[m.cursor]
	m.sess.ApplyPreset(p)
	m.input.SetValue(p.Mood)
	m.restartAnimation()
	m.setStatus(fmt.Sprintf("Applied %s", p.Label(m.cursor)), false)
}

func (m *studioModel) save() {
	cur, ok := m.sess.Current()
	if !ok {
		m.setStatus(session.ErrNoCurrentVibe.Error(), true)
		return
	}
	if _, _, exists := m.sess.Store().Find(cur.Mood); exists {
		m.pending = pending{kind: pendingOverwrite, prompt: session.OverwritePrompt}
		return
	}
	m.commitSave()
}

func (m *studioModel) commitSave() {
	p, err := m.sess.SaveCurrentAsPreset(context.Background())
	if err != nil {
		m.reportError(err)
		return
	}
	m.refreshPresets()
	m.cursor = 0
	m.setStatus(fmt.Sprintf("Saved %s", p.Label(0)), false)
}

func (m *studioModel) askRemove() {
	if len(m.presets) == 0 {
		return
	}
	p := m.presets[m.cursor]
	m.pending = pending{
		kind:   pendingRemove,
		prompt: fmt.Sprintf("Remove preset %q?", p.Label(m.cursor)),
		index:  m.cursor,
	}
}

func (m *studioModel) commitRemove(index int) {
	removed, err := m.sess.RemovePreset(context.Background(), index)
	if err != nil {
		m.reportError(err)
		return
	}
	m.refreshPresets()
	if m.cursor >= len(m.presets) {
		m.cursor = max(len(m.presets)-1, 0)
	}
	m.setStatus(fmt.Sprintf("Removed %s", removed.Label(index)), false)
}

func (m *studioModel) copyCSS() {
	if _, err := m.sess.CopyCSS(context.Background()); err != nil {
		m.reportError(err)
		return
	}
	m.setStatus("CSS copied!", false)
}

func (m *studioModel) refreshPresets() {
	m.presets = m.sess.Presets()
}

func (m *studioModel) restartAnimation() {
	m.animStart = m.now
}

func (m *studioModel) reportError(err error) {
	if errors.Is(err, preset.ErrDeclined) {
		m.setStatus("Cancelled", false)
		return
	}
	m.setStatus(err.Error(), true)
}

func (m *studioModel) setStatus(msg string, isError bool) {
	m.status = msg
	m.isError = isError
}

// --- View ---

func (m studioModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "studio", m.backend)

	var bindings []components.KeyBinding
	switch {
	case m.pending.kind != pendingNone:
		bindings = []components.KeyBinding{
			{Key: "y", Desc: "confirm"},
			{Key: "n", Desc: "cancel"},
		}
	case m.focus == focusPresets:
		bindings = []components.KeyBinding{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "apply"},
			{Key: "d", Desc: "delete"},
			{Key: "a", Desc: "animate"},
			{Key: "s", Desc: "save"},
			{Key: "c", Desc: "copy css"},
			{Key: "tab", Desc: "mood"},
			{Key: "q", Desc: "quit"},
		}
	default:
		bindings = []components.KeyBinding{
			{Key: "enter", Desc: "generate"},
			{Key: "ctrl+a", Desc: "animate"},
			{Key: "ctrl+s", Desc: "save"},
			{Key: "ctrl+y", Desc: "copy css"},
			{Key: "tab", Desc: "presets"},
			{Key: "esc", Desc: "quit"},
		}
	}
	footer := components.Footer(m.width, bindings)

	statusBar := ""
	switch {
	case m.pending.kind != pendingNone:
		statusBar = components.StatusBar(m.width, styles.WarningText.Render(m.pending.prompt+" (y/n)"), false)
	case m.status != "":
		statusBar = components.StatusBar(m.width, m.status, m.isError)
	}

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := max(m.height-headerH-footerH-statusH, 1)

	sections := []string{header, m.renderContent(contentH)}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m studioModel) renderContent(height int) string {
	presetsWidth := min(max(m.width/3, 24), 40)
	mainWidth := max(m.width-presetsWidth-4, 20)

	main := m.renderMain(mainWidth)
	side := m.renderPresets(presetsWidth, height)

	body := lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", side)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Top, body)
}

func (m studioModel) renderMain(width int) string {
	previewWidth := width
	if m.previewWidth > 0 {
		previewWidth = min(previewWidth, m.previewWidth)
	}

	inputStyle := styles.InputBlurred
	if m.focus == focusMood && m.pending.kind == pendingNone {
		inputStyle = styles.InputFocused
	}
	input := inputStyle.Width(previewWidth - 2).Render(m.input.View())

	cur, ok := m.sess.Current()
	if !ok {
		return input
	}

	phase := components.Static
	if m.sess.Animated() {
		phase = components.ShiftPhase(m.now.Sub(m.animStart))
	}
	preview := components.Gradient(cur.Colors, previewWidth, studioPreviewHeight, cur.Label(), phase)

	animLabel := styles.MutedText.Render("static")
	if m.sess.Animated() {
		animLabel = styles.AccentText.Render("animated")
	}
	meta := fmt.Sprintf("%s  %s  %s",
		styles.Value.Render(cur.Colors[0].String()),
		styles.Value.Render(cur.Colors[1].String()),
		animLabel,
	)

	cssLines := strings.Split(m.sess.CSS(), "\n")
	for i, line := range cssLines {
		cssLines[i] = ansi.Truncate(line, previewWidth, "…")
	}
	css := styles.MutedText.Render(strings.Join(cssLines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		input,
		"",
		preview,
		"",
		meta,
		"",
		styles.Label.Render("CSS"),
		css,
	)
}

func (m studioModel) renderPresets(width, height int) string {
	title := styles.Title.Render(fmt.Sprintf("Presets (%d/%d)", len(m.presets), preset.MaxPresets))

	cardStyle := styles.Card
	if m.focus == focusPresets {
		cardStyle = styles.CardActive
	}
	inner := width - 6

	if len(m.presets) == 0 {
		body := styles.MutedText.Render("No presets saved yet")
		return lipgloss.JoinVertical(lipgloss.Left, title, cardStyle.Width(width).Render(body))
	}

	// Two rows of chrome for the card border, two for padding, two for the title.
	visible := max(height-6, 1)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.presets))

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := m.presets[i]
		prefix := "  "
		labelStyle := styles.MutedText
		if i == m.cursor && m.focus == focusPresets {
			prefix = styles.AccentText.Render("> ")
			labelStyle = styles.Value.Bold(true)
		}

		marker := ""
		if p.Animated {
			marker = " ~"
		}
		labelWidth := max(inner-presetSwatchWidth-3-len(marker), 1)
		label := ansi.Truncate(p.Label(i), labelWidth, "…")

		row := prefix + components.Swatch(p.Colors, presetSwatchWidth) + " " +
			labelStyle.Render(label) + styles.MutedText.Render(marker)
		rows = append(rows, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, cardStyle.Width(width).Render(strings.Join(rows, "\n")))
}
