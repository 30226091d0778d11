package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/tatianab/cave-miner/internal/engine"
	"github.com/tatianab/cave-miner/internal/models"
)

const (
	logHeight   = 5
	panelWidth  = 30
	minMapCols  = 20
	minMapRows  = 8
	defaultCols = 60
	defaultRows = 20
)

const helpText = "move: arrows/wasd  mine: e/space  attack: f  cave: c  surface: x  " +
	"base: b  build/upgrade: 1 sawmill 2 quarry 3 gold mine  pause: p  command: /  quit: q"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	mapStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F5F87"))

	groundStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	playerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	swingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true)
	monsterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D75F5F"))
	hitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#FFFFFF"))
	caveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#875FAF")).Bold(true)
	baseStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#D7AF5F"))
	miningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#FFD700"))
)

// Draw hints for each kind. Glyphs come from the model trait tables.
var (
	resourceStyles = map[models.ResourceKind]lipgloss.Style{
		models.Wood:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAF5F")),
		models.Stone: lipgloss.NewStyle().Foreground(lipgloss.Color("#A8A8A8")),
		models.Gold:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	}
	buildingStyles = map[models.BuildingKind]lipgloss.Style{
		models.Sawmill:  lipgloss.NewStyle().Foreground(lipgloss.Color("#AF875F")).Bold(true),
		models.Quarry:   lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0")).Bold(true),
		models.GoldMine: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00")).Bold(true),
	}
)

type cell struct {
	r     rune
	style lipgloss.Style
}

// grid maps world pixels onto terminal cells.
type grid struct {
	cells          [][]cell
	cols, rows     int
	scaleX, scaleY float64
}

func newGrid(cols, rows int, worldW, worldH float64) *grid {
	g := &grid{
		cols:   cols,
		rows:   rows,
		scaleX: worldW / float64(cols),
		scaleY: worldH / float64(rows),
	}
	g.cells = make([][]cell, rows)
	for y := range g.cells {
		g.cells[y] = make([]cell, cols)
		for x := range g.cells[y] {
			g.cells[y][x] = cell{'.', groundStyle}
		}
	}
	return g
}

func (g *grid) cellOf(p models.Vec2) (int, int) {
	x := int(math.Floor(p.X / g.scaleX))
	y := int(math.Floor(p.Y / g.scaleY))
	return min(max(x, 0), g.cols-1), min(max(y, 0), g.rows-1)
}

// fill paints every cell a rectangle covers, and at least the cell of its centre.
func (g *grid) fill(r models.Rect, c cell) {
	x0, y0 := g.cellOf(models.Vec2{X: r.X, Y: r.Y})
	x1, y1 := g.cellOf(models.Vec2{X: r.X + r.W - 1, Y: r.Y + r.H - 1})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.cells[y][x] = c
		}
	}
}

func (g *grid) put(p models.Vec2, c cell) {
	x, y := g.cellOf(p)
	g.cells[y][x] = c
}

func (g *grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteString(c.style.Render(string(c.r)))
		}
	}
	return b.String()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	cols, rows := m.mapSize()
	mapView := mapStyle.Render(renderMap(m.engine, cols, rows))
	panel := panelStyle.Width(panelWidth).Height(rows).Render(renderPanel(m.engine, m.paused))

	bottom := helpStyle.Render(helpText)
	if m.prompting {
		bottom = m.textInput.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, mapView, panel),
		m.viewport.View(),
		bottom,
	)
}

func (m model) mapSize() (int, int) {
	if m.width == 0 || m.height == 0 {
		return defaultCols, defaultRows
	}
	cols := max(minMapCols, m.width-panelWidth-6)
	rows := max(minMapRows, m.height-logHeight-5)
	return cols, rows
}

func renderMap(eng *engine.Engine, cols, rows int) string {
	g := newGrid(cols, rows, float64(eng.Width()), float64(eng.Height()))

	if eng.IsAttacking() {
		g.fill(eng.Hitbox(), cell{':', swingStyle})
	}
	for _, c := range eng.CaveEntrances() {
		g.fill(c.Bounds(), cell{'O', caveStyle})
	}
	if eng.Location() == engine.Surface {
		b := eng.Base()
		g.fill(b.Bounds(), cell{'#', baseStyle})
		g.put(b.Bounds().Center(), cell{rune('0' + b.Level), baseStyle.Bold(true)})
		for _, bl := range eng.Buildings() {
			g.fill(bl.Bounds(), cell{bl.Kind.Trait().Glyph, buildingStyles[bl.Kind]})
		}
	}
	for _, n := range eng.ResourceNodes() {
		style := resourceStyles[n.Kind]
		if n.BeingMined {
			style = miningStyle
		}
		g.put(n.Bounds().Center(), cell{n.Kind.Trait().Glyph, style})
	}
	for _, mo := range eng.Monsters() {
		style := monsterStyle
		if mo.IsHit {
			style = hitStyle
		}
		g.put(mo.Center(), cell{monsterGlyph(mo), style})
	}

	p := eng.Player()
	if eng.IsAttacking() {
		g.put(p.Bounds().Center(), cell{'*', swingStyle})
	} else {
		g.put(p.Bounds().Center(), cell{'@', playerStyle})
	}
	return g.String()
}

func monsterGlyph(m models.Monster) rune {
	if m.Mode == models.Chasing {
		return 'M'
	}
	return 'm'
}

func renderPanel(eng *engine.Engine, paused bool) string {
	var b strings.Builder
	w := eng.Wallet()

	b.WriteString(titleStyle.Render("LOCATION") + "\n")
	b.WriteString(eng.Location().String())
	if paused {
		b.WriteString(" (paused)")
	}
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("RESOURCES") + "\n")
	for _, k := range models.ResourceKinds {
		fmt.Fprintf(&b, "%-11s %s\n", k.String()+":", humanize.Comma(int64(w.Count(k))))
	}
	fmt.Fprintf(&b, "Blueprints: %s\n\n", humanize.Comma(int64(w.Blueprints)))

	base := eng.Base()
	b.WriteString(titleStyle.Render("BASE") + "\n")
	fmt.Fprintf(&b, "%s (level %d)\n", base.Tier(), base.Level)
	if !base.MaxLevel() {
		fmt.Fprintf(&b, "next: %s\n", formatCost(base.UpgradeCost()))
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("BUILDINGS") + "\n")
	for i, k := range models.BuildingKinds {
		status := "-"
		if bl, ok := eng.Building(k); ok {
			status = fmt.Sprintf("lv %d, +%d/s", bl.Level, bl.Yield())
		}
		fmt.Fprintf(&b, "%d %s: %s\n", i+1, k, status)
		if cost, ok := eng.BuildCost(k); ok {
			fmt.Fprintf(&b, "  %s\n", formatCost(cost))
		}
	}
	b.WriteString("\n")

	if n, ok := eng.MiningTarget(); ok {
		fmt.Fprintf(&b, "Mining %s %s\n", n.Kind, progressBar(n.Fraction(), 10))
	}
	switch {
	case eng.IsAttacking():
		fmt.Fprintf(&b, "Attack %s\n", progressBar(eng.AttackProgress(), 10))
	case !eng.AttackReady():
		b.WriteString("Attack cooling down\n")
	}
	return b.String()
}

func progressBar(frac float64, width int) string {
	filled := int(math.Round(frac * float64(width)))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func formatCost(c models.Cost) string {
	var parts []string
	add := func(n int, name string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", humanize.Comma(int64(n)), name))
		}
	}
	add(c.Wood, "wood")
	add(c.Stone, "stone")
	add(c.Gold, "gold")
	add(c.Blueprints, "bp")
	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, ", ")
}

func eventLine(ev engine.Event) string {
	switch ev.Type {
	case engine.EventTheft:
		return "! " + ev.Message
	case engine.EventKill:
		return "+ " + ev.Message
	}
	return ev.Message
}

func renderLog(notes []string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(strings.Join(notes, "\n"))
}
