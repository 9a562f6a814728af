package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newTestModel(t *testing.T, cfg config.Config) (Model, *snake.Game) {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	game := snake.New(cfg, snake.WithSeed(7))
	return NewModel(game, 80, 40), game
}

// edgeConfig starts the snake on the last column facing the right wall.
func edgeConfig() config.Config {
	cfg := config.Default()
	cfg.Game.StartX = cfg.Board.Columns() - 1
	return cfg
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelInitStartsTicking(t *testing.T) {
	m, _ := newTestModel(t, config.Default())
	if m.Init() == nil {
		t.Error("Init() should return a tick command")
	}
}

func TestModelTickAdvances(t *testing.T) {
	m, game := newTestModel(t, config.Default())

	_, cmd := update(t, m, TickMsg{})

	snap := game.Snapshot()
	if snap.Tick != 1 {
		t.Fatalf("Tick = %d after one TickMsg, expected 1", snap.Tick)
	}
	if snap.GameOver {
		if cmd != nil {
			t.Error("tick loop should stop at game over")
		}
		return
	}
	if cmd == nil {
		t.Error("tick loop should be re-armed while playing")
	}
	if snap.Head != (core.Point{X: 6, Y: 5}) {
		t.Errorf("Head = %v, expected (6, 5)", snap.Head)
	}
}

func TestModelStopsTickingAtGameOver(t *testing.T) {
	m, game := newTestModel(t, edgeConfig())

	m, cmd := update(t, m, TickMsg{})
	if !game.State().GameOver {
		t.Fatal("moving into the right wall should end the game")
	}
	if cmd != nil {
		t.Error("no tick should be scheduled after game over")
	}

	// Stray ticks while over do nothing.
	_, cmd = update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("no tick should be scheduled while game over")
	}
	if game.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d, expected the game to be frozen at 1", game.Snapshot().Tick)
	}
}

func TestModelAnyKeyRestarts(t *testing.T) {
	m, game := newTestModel(t, edgeConfig())
	m, _ = update(t, m, TickMsg{})

	_, cmd := update(t, m, runeKey("x"))
	if game.State().GameOver {
		t.Fatal("any key after game over should start a new round")
	}
	if cmd == nil {
		t.Error("restart should re-arm the tick loop")
	}
	if game.Snapshot().Round != 2 {
		t.Errorf("Round = %d, expected 2", game.Snapshot().Round)
	}
}

func TestModelDirectionKeys(t *testing.T) {
	m, game := newTestModel(t, config.Default())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if cmd != nil {
		t.Error("direction keys should not schedule commands while playing")
	}
	if v := game.Snapshot().Velocity; v != (core.Point{X: 0, Y: -1}) {
		t.Errorf("Velocity = %v after up, expected (0, -1)", v)
	}

	// Down reverses the pending direction and is ignored.
	update(t, m, runeKey("s"))
	if v := game.Snapshot().Velocity; v != (core.Point{X: 0, Y: -1}) {
		t.Errorf("Velocity = %v after reversal, expected (0, -1)", v)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, config.Default())

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("View() missing HUD:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() missing help bar")
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m, game := newTestModel(t, config.Default())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("View() should ask for a bigger terminal")
	}

	// Resizing doesn't reset the round.
	if game.Snapshot().Round != 1 {
		t.Errorf("Round = %d after resize, expected 1", game.Snapshot().Round)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	if strings.Contains(m.View(), "Terminal too small") {
		t.Error("View() should show the board once the terminal is big enough")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	game := snake.New(config.Default(), snake.WithSeed(7))
	m := NewModel(game, 80, 40, WithScreenshotDir(dir))

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "snake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("screenshot should contain the HUD")
	}
}
