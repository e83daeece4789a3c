package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/tokitype/internal/align"
	"github.com/verte-zerg/tokitype/internal/dispatch"
	"github.com/verte-zerg/tokitype/internal/model"
	"github.com/verte-zerg/tokitype/internal/stats"
)

// tickMsg runs a dispatcher tick for actions emitted by the previous one.
type tickMsg struct{}

func tickCmd() tea.Msg {
	return tickMsg{}
}

// Model implements the Bubble Tea typing UI. Every key press becomes an
// action, every Update runs one dispatcher tick, and View renders a snapshot.
type Model struct {
	disp     *dispatch.Dispatcher
	criteria model.Criteria
	hints    bool
	log      zerolog.Logger

	keys        keyMap
	resultsKeys resultsKeyMap

	width  int
	height int

	snap dispatch.Snapshot

	results        stats.Results
	resultsTable   table.Model
	resultsSession string
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Underline(true)
	excessStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5D76E"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	separatorStyle   = lipgloss.NewStyle()
	hintStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8")).Italic(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Config wires a Model.
type Config struct {
	Dispatcher *dispatch.Dispatcher
	Criteria   model.Criteria
	Hints      bool
	Logger     *zerolog.Logger
}

// NewModel constructs a typing TUI model.
func NewModel(cfg Config) *Model {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	m := &Model{
		disp:        cfg.Dispatcher,
		criteria:    cfg.Criteria,
		hints:       cfg.Hints,
		log:         log,
		keys:        defaultKeyMap(),
		resultsKeys: defaultResultsKeyMap(),
	}
	m.snap = m.disp.Snapshot()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.disp.Pending() > 0 {
		return tickCmd
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeResultsTable()
		return m, nil
	case tickMsg:
		return m.tick()
	case tea.KeyMsg:
		if m.snap.Page.Page == model.PageResults {
			return m.updateResults(msg)
		}
		m.updateGame(msg)
		return m.tick()
	default:
		return m, nil
	}
}

func (m *Model) updateGame(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.disp.Dispatch(dispatch.RequestExit{})
	case key.Matches(msg, m.keys.Restart):
		m.disp.Dispatch(dispatch.ApplySelection{Criteria: m.criteria})
	case key.Matches(msg, m.keys.Backspace):
		m.disp.Dispatch(dispatch.BackspacePressed{})
	case key.Matches(msg, m.keys.Advance):
		m.disp.Dispatch(dispatch.CharTyped{Char: align.Separator})
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			m.disp.Dispatch(dispatch.CharTyped{Char: r})
		}
	}
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.resultsKeys.Quit):
		m.disp.Dispatch(dispatch.RequestExit{})
	case key.Matches(msg, m.resultsKeys.Again):
		m.disp.Dispatch(dispatch.ApplySelection{Criteria: m.criteria})
	default:
		var cmd tea.Cmd
		m.resultsTable, cmd = m.resultsTable.Update(msg)
		return m, cmd
	}
	return m.tick()
}

// tick runs one dispatcher tick and schedules another while stores left
// actions behind.
func (m *Model) tick() (tea.Model, tea.Cmd) {
	m.disp.Tick()
	m.snap = m.disp.Snapshot()
	if m.snap.Exit {
		m.log.Info().Msg("exit requested")
		return m, tea.Quit
	}
	if m.snap.Page.Page == model.PageResults && m.snap.Session.Complete && m.resultsSession != m.snap.Session.ID {
		m.buildResults()
	}
	if m.disp.Pending() > 0 {
		return m, tickCmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.snap.Page.Page == model.PageResults {
		return m.viewResults()
	}
	return m.viewGame()
}

func (m *Model) viewGame() string {
	sess := m.snap.Session
	if !sess.Ready {
		return ""
	}
	if len(sess.Words) == 0 {
		return m.place(pendingStyle.Render("No words match the selection. Press esc to quit."), "")
	}

	segs := align.Collect(sess.Targets, sess.Input)
	at := caret{word: sess.Cursor}
	if cur, ok := sess.Current(); ok {
		at.offset = utf8.RuneCountInString(cur.Input)
	}
	styled := buildStyledRunes(segs, at)

	contentWidth := int(float64(m.width) * 0.70)
	if m.width == 0 || m.height == 0 {
		contentWidth = 0
	}
	text := wrapStyledRunes(styled, contentWidth)
	if hint := m.renderHint(); hint != "" {
		text = hint + "\n\n" + text
	}
	if contentWidth > 0 {
		text = lipgloss.NewStyle().Width(contentWidth).Render(text)
	}
	return m.place(text, m.renderFooter())
}

func (m *Model) renderHint() string {
	if !m.hints {
		return ""
	}
	cur, ok := m.snap.Session.Current()
	if !ok || cur.Definition == "" {
		return ""
	}
	return hintStyle.Render(fmt.Sprintf("%s: %s", cur.Tier, cur.Definition))
}

func (m *Model) renderFooter() string {
	sess := m.snap.Session
	total := len(sess.Words)
	if total == 0 {
		return ""
	}
	done := min(sess.Cursor, total)
	var active time.Duration
	for _, w := range sess.Words {
		active += w.Duration
	}
	progress := int(float64(done) / float64(total) * 100)
	segments := []string{
		fmt.Sprintf("Word %d/%d", min(done+1, total), total),
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("Active %.1fs", active.Seconds()),
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) place(content, footer string) string {
	if m.width == 0 || m.height == 0 {
		if footer == "" {
			return content
		}
		return content + "\n" + footer
	}
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}
