package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// helpHeight is the number of rows reserved under the board for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model for a snake session.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	shotDir  string
	width    int
	height   int
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for UI events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithScreenshotDir sets where ctrl+s writes text screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// NewModel creates a model for game sized to a width x height terminal.
func NewModel(game *snake.Game, width, height int, opts ...ModelOption) Model {
	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: log.New(io.Discard),
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = width
	m.screen = core.NewScreen(width, max(height-helpHeight, 0))
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Direction changes apply on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.SetDirection(action) {
		// The loop stopped at game over; a reset starts it again.
		return m, tickCmd(m.game.TickInterval())
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	return m, nil
}

// handleTick advances the simulation and re-arms the timer while the round lasts.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Advance()
	if res.Status.GameOver {
		return m, nil
	}
	return m, tickCmd(m.game.TickInterval())
}

// fits reports whether the terminal can show the whole board and help bar.
func (m Model) fits() bool {
	w, h := m.game.MinScreen()
	return m.width >= w && m.height >= h+helpHeight
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", m.shotDir, "error", err)
		return
	}
	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.fits() {
		w, h := m.game.MinScreen()
		msg := fmt.Sprintf("Terminal too small: %dx%d\nNeed at least %dx%d\n\nq to quit",
			m.width, m.height, w, h+helpHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
func Run(game *snake.Game, width, height int, opts ...ModelOption) error {
	model := NewModel(game, width, height, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
