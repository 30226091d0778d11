package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/cave-miner/internal/engine"
	"github.com/tatianab/cave-miner/internal/models"
	"github.com/tatianab/cave-miner/internal/narrator"
)

// maxFrameDelta caps the simulated time of one frame after a stall.
const maxFrameDelta = 0.25

type model struct {
	engine   *engine.Engine
	narrator *narrator.Narrator
	frame    time.Duration
	last     time.Time

	textInput textinput.Model
	viewport  viewport.Model
	prompting bool
	paused    bool
	quitting  bool

	notes  []string
	width  int
	height int
}

type tickMsg time.Time

type narrationMsg struct {
	text string
}

// NewModel builds the program model. nar may be nil.
func NewModel(eng *engine.Engine, nar *narrator.Narrator, frame time.Duration) model {
	ti := textinput.New()
	ti.Placeholder = "build sawmill, upgrade base, new, help..."
	ti.Prompt = "/"
	ti.CharLimit = 64
	ti.Width = 40

	return model{
		engine:    eng,
		narrator:  nar,
		frame:     frame,
		textInput: ti,
		viewport:  viewport.New(60, logHeight),
		notes:     []string{"Welcome! Gather wood and stone, find a cave, hunt for blueprints."},
	}
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(20, msg.Width-2)
		m.refreshLog()

	case tickMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.last.IsZero() {
			dt = min(now.Sub(m.last).Seconds(), maxFrameDelta)
		}
		m.last = now
		if !m.paused {
			m.engine.Update(dt)
		}
		cmds := m.collectEvents()
		cmds = append(cmds, m.tick())
		return m, tea.Batch(cmds...)

	case narrationMsg:
		m.note("~ " + msg.text)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	eng := m.engine
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "w":
		eng.MovePlayer(0, -1)
	case "down", "s":
		eng.MovePlayer(0, 1)
	case "left", "a":
		eng.MovePlayer(-1, 0)
	case "right", "d":
		eng.MovePlayer(1, 0)
	case "e", " ":
		if !eng.StopMining() && !eng.StartMining() {
			m.note("Nothing to mine here.")
		}
	case "f":
		eng.Attack()
	case "c":
		if !eng.TryEnterCave() {
			m.note("Stand on a cave entrance to descend.")
		}
	case "x":
		if !eng.ExitCave() {
			m.note("You are already on the surface.")
		}
	case "b":
		m.upgradeBase()
	case "1", "2", "3":
		m.buildOrUpgrade(models.BuildingKinds[msg.Runes[0]-'1'])
	case "p":
		m.paused = !m.paused
	case "/", ":":
		m.prompting = true
		m.textInput.Reset()
		cmd := m.textInput.Focus()
		return m, cmd
	}
	cmds := m.collectEvents()
	return m, tea.Batch(cmds...)
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.prompting = false
		m.textInput.Blur()
		return m, nil
	case tea.KeyEnter:
		line := m.textInput.Value()
		m.prompting = false
		m.textInput.Blur()
		m.textInput.Reset()
		if quit := m.runCommand(line); quit {
			m.quitting = true
			return m, tea.Quit
		}
		cmds := m.collectEvents()
		return m, tea.Batch(cmds...)
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// runCommand executes a prompt line and reports whether the game should quit.
func (m *model) runCommand(line string) bool {
	fields := strings.Fields(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(line), "/")))
	if len(fields) == 0 {
		return false
	}
	arg := ""
	if len(fields) > 1 {
		arg = strings.Join(fields[1:], "")
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "new":
		m.engine.NewGame()
	case "regen":
		m.engine.Regenerate()
	case "cave":
		if !m.engine.TryEnterCave() {
			m.note("Stand on a cave entrance to descend.")
		}
	case "surface":
		if !m.engine.ExitCave() {
			m.note("You are already on the surface.")
		}
	case "build":
		k, ok := parseBuilding(arg)
		if !ok {
			m.note(fmt.Sprintf("Unknown building %q.", arg))
			return false
		}
		if !m.engine.Build(k) {
			m.note(fmt.Sprintf("Cannot build a %s.", k))
		}
	case "upgrade":
		if arg == "base" {
			m.upgradeBase()
			return false
		}
		k, ok := parseBuilding(arg)
		if !ok {
			m.note(fmt.Sprintf("Unknown building %q.", arg))
			return false
		}
		if !m.engine.UpgradeBuilding(k) {
			m.note(fmt.Sprintf("Cannot upgrade the %s.", k))
		}
	case "pause":
		m.paused = !m.paused
	case "help":
		m.note(helpText)
	default:
		m.note(fmt.Sprintf("Unknown command %q. Try /help.", fields[0]))
	}
	return false
}

func parseBuilding(s string) (models.BuildingKind, bool) {
	for _, k := range models.BuildingKinds {
		name := strings.ToLower(strings.ReplaceAll(k.String(), " ", ""))
		if s == name {
			return k, true
		}
	}
	return 0, false
}

func (m *model) upgradeBase() {
	b := m.engine.Base()
	switch {
	case b.MaxLevel():
		m.note("Your base is already a " + b.Tier() + ".")
	case !m.engine.UpgradeBase():
		m.note("Not enough resources to upgrade the base: need " + formatCost(b.UpgradeCost()) + ".")
	}
}

func (m *model) buildOrUpgrade(k models.BuildingKind) {
	if _, built := m.engine.Building(k); !built {
		if !m.engine.Build(k) {
			m.note(fmt.Sprintf("A %s costs %s.", k, formatCost(k.Trait().Cost)))
		}
		return
	}
	cost, ok := m.engine.BuildCost(k)
	if !ok {
		m.note(fmt.Sprintf("The %s is fully upgraded.", k))
		return
	}
	if !m.engine.UpgradeBuilding(k) {
		m.note(fmt.Sprintf("Upgrading the %s costs %s.", k, formatCost(cost)))
	}
}

// collectEvents turns queued engine events into log lines and narration requests.
func (m *model) collectEvents() []tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range m.engine.DrainEvents() {
		switch ev.Type {
		case engine.EventAttack, engine.EventHit:
			continue
		}
		m.note(eventLine(ev))
		if m.narrator != nil && narrator.Worth(ev.Type) {
			cmds = append(cmds, m.narrate(narrator.SceneOf(m.engine, ev)))
		}
	}
	return cmds
}

func (m *model) narrate(s narrator.Scene) tea.Cmd {
	n := m.narrator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		text, err := n.Narrate(ctx, s)
		if err != nil {
			log.Printf("narrator: %v", err)
			return nil
		}
		return narrationMsg{text}
	}
}

func (m *model) note(s string) {
	m.notes = append(m.notes, s)
	if len(m.notes) > 200 {
		m.notes = m.notes[len(m.notes)-200:]
	}
	m.refreshLog()
}

func (m *model) refreshLog() {
	m.viewport.SetContent(renderLog(m.notes, m.viewport.Width))
	m.viewport.GotoBottom()
}

// Run starts the interactive program and blocks until the player quits.
func Run(eng *engine.Engine, nar *narrator.Narrator, frame time.Duration) error {
	p := tea.NewProgram(NewModel(eng, nar, frame), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
