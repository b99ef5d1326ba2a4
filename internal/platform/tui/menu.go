package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/registry"
)

// MaxMenuStage is the highest stage the menu offers as a starting point.
const MaxMenuStage = 8

// menuDifficulties are the presets the menu cycles through. Empty keeps the
// config file's setting.
var menuDifficulties = []string{"", "easy", "normal", "hard", "fixed"}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	menuSettingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// menu rows after the mode list
const (
	rowStage = iota
	rowDifficulty
	settingRows
)

// MenuModel is the Bubble Tea model for the title menu. It picks the mode,
// the starting stage and the difficulty.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	stage          int // 1 based
	difficulty     int // index into menuDifficulties
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	return MenuModel{
		items:     items,
		stage:     1,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) rows() int {
	return len(m.items) + settingRows
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.rows()-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionSelect:
		if m.cursor < len(m.items) {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
		m.adjust(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// adjust changes the setting under the cursor, wrapping around.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor - len(m.items) {
	case rowStage:
		m.stage = (m.stage-1+delta+MaxMenuStage)%MaxMenuStage + 1
	case rowDifficulty:
		n := len(menuDifficulties)
		m.difficulty = (m.difficulty + delta + n) % n
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("G A L A G A"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuSubtitleStyle.Render("Select a mode"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		b.WriteString(centerText(m.cursorMark(i)+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	difficulty := menuDifficulties[m.difficulty]
	if difficulty == "" {
		difficulty = "config"
	}
	settings := []string{
		fmt.Sprintf("Start stage  < %d >", m.stage),
		fmt.Sprintf("Difficulty   < %s >", difficulty),
	}
	for i, s := range settings {
		b.WriteString(centerText(m.cursorMark(len(m.items)+i)+menuSettingStyle.Render(s), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) cursorMark(row int) string {
	if row == m.cursor {
		return menuCursorStyle.Render("> ")
	}
	return "  "
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Stage           int    // 1 based
	Difficulty      string // empty keeps the config's preset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes what the user picked.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{
		Stage:      m.stage,
		Difficulty: menuDifficulties[m.difficulty],
		Config:     m.config,
	}

	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.selected != nil:
		result.GameID = m.selected.GameID
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
