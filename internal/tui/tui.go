package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/mastermind/internal/game"
	"github.com/lox/mastermind/internal/solver"
	"github.com/lox/mastermind/internal/statistics"
)

const helpText = "Guess with names or letters (red blue green yellow, rbgy) • new • hint • reveal • quit"

// Options configures a TUIModel
type Options struct {
	GameOptions []game.Option
	Initials    bool // show color letters next to pegs
	TestMode    bool // capture log lines instead of rendering them
}

// TUIModel is the Bubble Tea model for a Mastermind session. It owns the
// game and drives it directly from typed commands.
type TUIModel struct {
	game      *game.Game
	bus       *game.SimpleEventBus
	formatter game.EventFormatter
	stats     statistics.Statistics
	logger    *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog     []string
	revealed    bool // player gave up this round
	quitting    bool
	focusedPane int // 0 = log, 1 = input
	initials    bool

	// Dimensions
	width  int
	height int

	// Test mode
	testMode    bool
	capturedLog []string
}

// NewTUIModel creates a model and starts the first game
func NewTUIModel(logger *log.Logger, opts Options) *TUIModel {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Enter a guess (e.g. red blue green yellow or rbgy)"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &TUIModel{
		bus:         game.NewEventBus(),
		formatter:   game.EventFormatter{ShowInitials: opts.Initials},
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
		gameLog:     []string{},
		focusedPane: 1,
		initials:    opts.Initials,
		testMode:    opts.TestMode,
		capturedLog: []string{},
	}
	m.bus.Subscribe(m)

	gameOpts := append([]game.Option{game.WithLogger(logger), game.WithEventBus(m.bus)}, opts.GameOptions...)
	m.game = game.New(gameOpts...)
	return m
}

// Game returns the game being played
func (m *TUIModel) Game() *game.Game { return m.game }

// Stats returns the session statistics
func (m *TUIModel) Stats() *statistics.Statistics { return &m.stats }

// OnEvent renders game events into the log and records finished games
func (m *TUIModel) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.GameStartEvent:
		m.AddLogEntry(m.formatter.Format(e))
	case game.GuessEvent:
		m.AddLogEntry(m.formatter.Format(e))
	case game.GameEndEvent:
		if e.Outcome == game.Won {
			m.AddLogEntry(SuccessStyle.Render(m.formatter.Format(e)))
		} else {
			m.AddLogEntry(ErrorStyle.Render(m.formatter.Format(e)))
		}
		m.stats.Add(statistics.GameResult{
			Won:      e.Outcome == game.Won,
			Attempts: e.Attempts,
			Duration: e.Duration,
		})
		m.AddLogEntry(InfoStyle.Render("Play again? Type 'new', or 'quit' to exit"))
	}
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				input := m.actionInput.Value()
				m.actionInput.SetValue("")
				if cmd := m.HandleInput(input); cmd != nil {
					return m, cmd
				}
			}
		}
	}

	var cmd tea.Cmd
	_, isKey := msg.(tea.KeyMsg)

	// Keys go to whichever pane has focus
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	if !isKey || m.focusedPane == 0 {
		m.logViewport, cmd = m.logViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// HandleInput executes one typed command. It returns tea.Quit when the
// player asks to leave.
func (m *TUIModel) HandleInput(input string) tea.Cmd {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "":
		return nil
	case "quit", "exit", "q":
		m.quitting = true
		return tea.Quit
	case "new", "n":
		m.revealed = false
		m.game.Restart()
		return nil
	case "hint", "h":
		m.hint()
		return nil
	case "reveal", "giveup", "give up":
		m.reveal()
		return nil
	case "help", "?":
		m.AddLogEntry(InfoStyle.Render(helpText))
		return nil
	}

	m.guess(input)
	return nil
}

func (m *TUIModel) guess(input string) {
	if m.revealed {
		m.AddLogEntry(WarningStyle.Render("You gave up on this game. Type 'new' to play again"))
		return
	}

	code, err := game.ParseCode(input, m.game.CodeLength(), m.game.Palette())
	if err != nil {
		m.AddLogEntry(ErrorStyle.Render(fmt.Sprintf("Invalid guess: %v", err)))
		return
	}

	if _, _, err := m.game.Submit(code); err != nil {
		if errors.Is(err, game.ErrInvalidOperation) {
			m.AddLogEntry(WarningStyle.Render("This game is over. Type 'new' to play again"))
			return
		}
		m.logger.Error("Guess rejected", "guess", code, "error", err)
		m.AddLogEntry(ErrorStyle.Render(err.Error()))
	}
}

func (m *TUIModel) hint() {
	if m.game.Outcome().Terminal() || m.revealed {
		m.AddLogEntry(WarningStyle.Render("No game in progress. Type 'new' to play again"))
		return
	}

	s, err := solver.New(m.game.Palette(), m.game.CodeLength(), nil, m.logger)
	if err != nil {
		m.AddLogEntry(ErrorStyle.Render(fmt.Sprintf("No hint available: %v", err)))
		return
	}
	if err := s.Replay(m.game.History()); err != nil {
		m.AddLogEntry(ErrorStyle.Render(fmt.Sprintf("No hint available: %v", err)))
		return
	}
	next, err := s.Next()
	if err != nil {
		m.AddLogEntry(ErrorStyle.Render(fmt.Sprintf("No hint available: %v", err)))
		return
	}
	m.AddLogEntry(InfoStyle.Render(fmt.Sprintf("Hint: %d codes still fit, try %s", s.Remaining(), m.formatter.FormatCode(next))))
}

func (m *TUIModel) reveal() {
	if m.game.Outcome().Terminal() {
		m.AddLogEntry(InfoStyle.Render(fmt.Sprintf("The secret was %s", m.formatter.FormatCode(m.game.Reveal()))))
		return
	}
	if !m.revealed {
		m.revealed = true
		m.stats.Add(statistics.GameResult{Won: false, Attempts: m.game.Attempts(), Duration: m.game.Elapsed()})
	}
	m.AddLogEntry(ErrorStyle.Render(fmt.Sprintf("You gave up. The secret was %s", m.formatter.FormatCode(m.game.Reveal()))))
	m.AddLogEntry(InfoStyle.Render("Play again? Type 'new', or 'quit' to exit"))
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render(fmt.Sprintf("Mastermind • Game %d", m.game.Round()))

	board := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#B98D67")).
		Padding(0, 1).
		Render(renderBoard(m.game, m.revealed, m.initials))

	sidebar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Padding(0, 1).
		Width(max(m.width-lipgloss.Width(board)-2, 20)).
		Height(lipgloss.Height(board) - 2).
		Render(m.renderSidebarPane())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, board, sidebar)

	actionContent := m.renderActionPane()
	actionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(max(m.width-2, 1))
	if m.focusedPane == 1 {
		actionStyle = actionStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	actionPane := actionStyle.Render(actionContent)

	logHeight := m.height - lipgloss.Height(header) - lipgloss.Height(topRow) - lipgloss.Height(actionPane) - 2
	m.logViewport.Width = max(m.width-2, 1)
	m.logViewport.Height = max(logHeight, 1)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262"))
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, topRow, logPane, actionPane)
}

// renderSidebarPane shows the round status and session statistics
func (m *TUIModel) renderSidebarPane() string {
	var content strings.Builder

	status := m.game.Outcome().String()
	if m.revealed {
		status = "given up"
	}
	content.WriteString(StatusStyle.Render(fmt.Sprintf("Status: %s", status)))
	content.WriteString("\n")
	content.WriteString(WarningStyle.Render(fmt.Sprintf("Attempts left: %d/%d", m.game.Remaining(), m.game.MaxAttempts())))
	content.WriteString("\n\n")

	content.WriteString(InfoStyle.Render("Session:"))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("  Played: %d  Won: %d  Lost: %d\n", m.stats.Games, m.stats.Wins, m.stats.Losses))
	if m.stats.Wins > 0 {
		content.WriteString(fmt.Sprintf("  Best: %d  Avg: %.1f guesses\n", m.stats.BestAttempts, m.stats.Mean()))
	}

	content.WriteString("\n")
	content.WriteString(InfoStyle.Render("Colors:"))
	content.WriteString("\n")
	for _, c := range m.game.Palette().Colors() {
		content.WriteString(fmt.Sprintf("  %s %s (%s)\n", renderPeg(c), c, c.Initial()))
	}

	return strings.TrimRight(content.String(), "\n")
}

// renderActionPane renders the input field and help line
func (m *TUIModel) renderActionPane() string {
	var content strings.Builder

	if m.game.Outcome().Terminal() || m.revealed {
		m.actionInput.Placeholder = "Type 'new' to play again, 'quit' to exit"
	} else {
		m.actionInput.Placeholder = "Enter a guess (e.g. red blue green yellow or rbgy)"
	}

	content.WriteString(m.actionInput.View())
	content.WriteString("\n")
	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render(helpText + " • Tab to scroll log"))
	}
	return content.String()
}

// AddLogEntry adds an entry to the game log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}

// Run starts the full-screen program and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, m *TUIModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
