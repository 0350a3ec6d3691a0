package bubbletea

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/foodlink-la/foodlink"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for one chat surface. All exchange state
// lives in the Exchange; the model only mutates it from Update.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	exchange *foodlink.Exchange
	surface  Surface
	theme    foodlink.Theme
	styles   Styles
	spinner  spinner.Model

	blocks []MessageBlock // one per exchange message, same order

	urgent bool
	now    func() time.Time
	ready  bool
}

// Option configures a [Model].
type Option func(*Model)

// WithUrgent marks the surface as opened urgently: the welcome and location
// shortcuts are hidden and the surface's seed message is sent on start.
func WithUrgent(urgent bool) Option {
	return func(m *Model) { m.urgent = urgent }
}

// WithClock sets the clock used to pick today's opening hours.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// New creates a Model that drives exchange through surface.
func New(exchange *foodlink.Exchange, surface Surface, theme foodlink.Theme, opts ...Option) Model {
	styles := NewStyles(theme)

	ti := textinput.New()
	ti.Placeholder = surface.Placeholder
	ti.Prompt = "> "
	ti.PromptStyle = styles.UserMsg
	ti.Focus()
	ti.CharLimit = 0

	m := Model{
		Input:    ti,
		exchange: exchange,
		surface:  surface,
		theme:    theme,
		styles:   styles,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Assistant)),
		now:      time.Now,
	}
	for _, o := range opts {
		o(&m)
	}
	m = m.syncBlocks()
	return m
}

// Awaiting reports whether a backend reply is outstanding.
func (m Model) Awaiting() bool { return m.exchange.Awaiting() }

// Exchange returns the exchange the model drives.
func (m Model) Exchange() *foodlink.Exchange { return m.exchange }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.urgent && m.surface.SeedText != "" {
		cmds = append(cmds, func() tea.Msg { return seedMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case seedMsg:
		req, ok := m.exchange.BeginSeed(m.urgent, m.surface.SeedText)
		if !ok {
			return m, nil
		}
		return m.send(req)

	case ReplyMsg:
		m.exchange.Complete(msg.Reply, msg.Err)
		m = m.refresh()
		return m, m.Input.Focus()

	case spinner.TickMsg:
		if !m.exchange.Awaiting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.Viewport.SetContent(m.renderContent())
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.exchange.Awaiting() {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	headerHeight := 1
	statusHeight := 1
	inputHeight := 1
	vpHeight := max(msg.Height-headerHeight-statusHeight-inputHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Input.Width = max(msg.Width-lipgloss.Width(m.Input.Prompt)-1, 1)
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.exchange.Awaiting() {
			return m, nil
		}
		m.exchange.SetInput(m.Input.Value())
		req, ok := m.exchange.BeginInput()
		if !ok {
			return m, nil
		}
		m.Input.SetValue("")
		return m.send(req)
	}

	if i, ok := m.quickReplyKey(msg); ok {
		return m.pickQuickReply(i)
	}

	if m.exchange.Awaiting() {
		// Scrolling still works while a reply is outstanding.
		if msg.Type != tea.KeyRunes {
			var cmd tea.Cmd
			m.Viewport, cmd = m.Viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Only forward non-character keys to the viewport so typing 'j' or 'k'
	// does not scroll.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// quickReplyKey maps Alt+1..9, or a bare digit typed into an empty input, to
// a quick reply index while quick replies are on screen.
func (m Model) quickReplyKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || !m.quickRepliesVisible() {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	if !msg.Alt && m.Input.Value() != "" {
		return 0, false
	}
	i := int(r - '1')
	if i >= len(m.surface.QuickReplies) {
		return 0, false
	}
	return i, true
}

func (m Model) pickQuickReply(i int) (tea.Model, tea.Cmd) {
	reply := m.surface.QuickReplies[i]
	var (
		req foodlink.ChatRequest
		ok  bool
	)
	if m.surface.LocationReplies {
		req, ok = m.exchange.BeginLocation(reply.Value)
	} else {
		req, ok = m.exchange.Begin(reply.Value)
	}
	if !ok {
		return m, nil
	}
	return m.send(req)
}

// send runs the backend call for an already-begun request off the update
// loop. The result comes back as a ReplyMsg.
func (m Model) send(req foodlink.ChatRequest) (Model, tea.Cmd) {
	m.Input.Blur()
	m = m.refresh()
	exchange := m.exchange
	call := func() tea.Msg {
		reply, err := exchange.Call(context.Background(), req)
		return ReplyMsg{Reply: reply, Err: err}
	}
	return m, tea.Batch(call, m.spinner.Tick)
}

// refresh brings blocks in line with the transcript and re-renders the
// viewport pinned to the bottom.
func (m Model) refresh() Model {
	m = m.syncBlocks()
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

// syncBlocks appends blocks for transcript entries added since the last
// sync. The transcript only grows, so existing blocks stay valid.
func (m Model) syncBlocks() Model {
	msgs := m.exchange.Messages()
	for _, msg := range msgs[len(m.blocks):] {
		m.blocks = append(m.blocks, newBlock(msg, m.theme, m.styles))
	}
	return m
}

func (m Model) quickRepliesVisible() bool {
	if len(m.surface.QuickReplies) == 0 || m.exchange.Awaiting() || m.exchange.HasUserMessage() {
		return false
	}
	return !m.surface.LocationReplies || !m.urgent
}

func (m Model) welcomeVisible() bool {
	return m.surface.WelcomeTitle != "" && !m.urgent && len(m.blocks) == 0
}

func (m Model) renderContent() string {
	width := m.Viewport.Width
	var sections []string

	if m.welcomeVisible() {
		sections = append(sections, m.styles.Title.Render(m.surface.WelcomeTitle)+"\n"+
			lipgloss.NewStyle().Width(width).Render(m.surface.WelcomeText))
	}

	for _, block := range m.blocks {
		sections = append(sections, block.View(width))
	}

	if m.exchange.Awaiting() {
		sections = append(sections, m.spinner.View()+" "+m.styles.Muted.Render("Thinking..."))
	}

	if m.quickRepliesVisible() {
		sections = append(sections, m.renderQuickReplies())
	}

	if results := m.renderResults(width); results != "" {
		sections = append(sections, results)
	}

	if m.surface.Footer != "" {
		sections = append(sections, m.styles.Muted.Render(m.surface.Footer))
	}
	return strings.Join(sections, "\n\n")
}

func (m Model) renderQuickReplies() string {
	var lines []string
	if m.surface.QuickReplyHeading != "" {
		lines = append(lines, m.styles.Muted.Render(m.surface.QuickReplyHeading))
	}
	for i, r := range m.surface.QuickReplies {
		lines = append(lines, m.styles.Accent.Render(fmt.Sprintf("[%d]", i+1))+" "+r.Label)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderResults(width int) string {
	var cards []string
	switch m.surface.Agent {
	case foodlink.AgentDonor:
		for _, o := range m.exchange.Organizations() {
			cards = append(cards, OrganizationCard(o, width, m.styles))
		}
	default:
		now := m.now()
		for _, r := range m.exchange.Resources() {
			cards = append(cards, ResourceCard(r, now, width, m.styles))
		}
	}
	if len(cards) == 0 {
		return ""
	}

	head := m.styles.Title.Render(m.surface.ResultsTitle)
	if m.surface.ResultsSummary != nil {
		head += "\n" + lipgloss.NewStyle().Width(width).Render(m.surface.ResultsSummary(len(cards)))
	}
	return head + "\n\n" + strings.Join(cards, "\n")
}

func (m Model) header() string {
	title := m.styles.Title.Render(m.surface.Title)
	if m.surface.Subtitle != "" {
		title += " " + m.styles.Muted.Render(m.surface.Subtitle)
	}
	return title
}

func (m Model) statusLine() string {
	if m.exchange.Awaiting() {
		return m.styles.Muted.Render("Waiting for a reply...")
	}
	if m.quickRepliesVisible() {
		return m.styles.Muted.Render("Enter to send, 1-9 for a quick reply, Esc to quit")
	}
	return m.styles.Muted.Render("Enter to send, PgUp/PgDn to scroll, Esc to quit")
}
