package client

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/loop/model"
	"github.com/tomz197/starshooter/internal/object"
)

// HUD layout, in terminal columns and rows relative to the play area.
const (
	hudWidth   = 24
	boardLeft  = 2 // Board starts one column in from the border
	boardTop   = 2
	hudGap     = 3
	feedHeader = "Events"
)

var controlLines = []string{
	"WASD/arrows  move",
	"F/space      fire",
	"P pause   Q quit",
}

// styles holds the lipgloss styles for one renderer. Cell text is rendered
// once up front since it is drawn for every object on every frame.
type styles struct {
	cells        map[object.Kind]string
	shieldedShip string
	title        lipgloss.Style
	label        lipgloss.Style
	value        lipgloss.Style
	feed         lipgloss.Style
	banner       lipgloss.Style
	dim          lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	colors := map[object.Kind]lipgloss.Color{
		object.KindShip:          "14", // bright cyan
		object.KindBullet:        "11", // bright yellow
		object.KindEnemy:         "9",  // bright red
		object.KindFastEnemy:     "13", // bright magenta
		object.KindAsteroid:      "8",  // grey
		object.KindHealthPowerUp: "10", // bright green
		object.KindShieldPowerUp: "12", // bright blue
	}

	s := styles{
		cells:  make(map[object.Kind]string, len(colors)),
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		label:  r.NewStyle().Foreground(lipgloss.Color("7")),
		value:  r.NewStyle().Bold(true),
		feed:   r.NewStyle().Foreground(lipgloss.Color("250")),
		banner: r.NewStyle().Bold(true).Reverse(true),
		dim:    r.NewStyle().Faint(true),
	}
	for kind, color := range colors {
		glyph := draw.CellText(object.GraphicFor(kind).Glyph)
		s.cells[kind] = r.NewStyle().Foreground(color).Bold(kind == object.KindShip).Render(glyph)
	}
	ship := draw.CellText(object.GraphicFor(object.KindShip).Glyph)
	s.shieldedShip = r.NewStyle().Foreground(colors[object.KindShieldPowerUp]).Bold(true).Underline(true).Render(ship)
	return s
}

// cell returns the board text for obj.
func (s styles) cell(obj object.Object) string {
	if ship, ok := obj.(*object.Ship); ok && ship.Shielded() {
		return s.shieldedShip
	}
	if text, ok := s.cells[obj.Kind()]; ok {
		return text
	}
	return draw.CellText(obj.Graphic().Glyph)
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	termW, termH, err := c.termSizeFunc()
	if err != nil {
		termW, termH = c.state.prevTermW, c.state.prevTermH
	}
	_, _, offsetCol, offsetRow := draw.ClampTermSize(termW, termH, config.MaxTermWidth, config.MaxTermHeight)

	snap := c.model.Snapshot()

	// On state or size changes, do a full clear so text from the previous
	// layout does not persist on screen.
	if !c.state.drawn || snap.State != c.state.prevGameState ||
		termW != c.state.prevTermW || termH != c.state.prevTermH {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.state.prevGameState = snap.State
		c.state.prevTermW, c.state.prevTermH = termW, termH
		c.state.drawn = true
	}

	c.chunkWriter.SetOffset(offsetCol, offsetRow)
	originCol, originRow := c.chunkWriter.Offset()
	c.board.SetOrigin(originCol+boardLeft, originRow+boardTop)
	c.board.Clear()
	for _, obj := range snap.Objects {
		x, y := obj.Position()
		c.board.Set(x, y, c.styles.cell(obj))
	}

	if err := c.board.Render(c.chunkWriter); err != nil {
		return err
	}
	if err := c.board.RenderBorder(c.chunkWriter); err != nil {
		return err
	}

	c.drawHUD(snap)
	c.drawBanner(snap)

	return c.chunkWriter.Flush()
}

// drawHUD draws the stats panel, the event feed and the controls to the
// right of the board. Every line is padded to hudWidth so shorter values
// overwrite longer ones from the previous frame.
func (c *Client) drawHUD(snap *model.Snapshot) {
	cw := c.chunkWriter
	col := boardLeft + c.board.TermWidth() + hudGap
	row := boardTop

	st := snap.Stats
	shield := "-"
	if st.Shield > 0 {
		shield = fmt.Sprintf("%d", st.Shield)
	}

	cw.WriteAt(col, row, c.styles.title.Render(draw.PadRight("STARSHOOTER", hudWidth)))
	row += 2

	fields := []struct{ label, value string }{
		{"Score", fmt.Sprintf("%d", st.Score)},
		{"Health", fmt.Sprintf("%d/%d", st.Health, st.MaxHealth)},
		{"Shield", shield},
		{"Level", fmt.Sprintf("%d", st.Level)},
		{"Spawn", fmt.Sprintf("%d%%", st.SpawnRate)},
		{"Shots", fmt.Sprintf("%d", st.Bullets)},
		{"Time", formatSurvived(st.Survived)},
		{"State", snap.State.String()},
	}
	for _, f := range fields {
		label := draw.PadRight(f.label, 8)
		value := draw.PadRight(f.value, hudWidth-8)
		cw.WriteAt(col, row, c.styles.label.Render(label)+c.styles.value.Render(value))
		row++
	}

	row++
	cw.WriteAt(col, row, c.styles.label.Render(draw.PadRight(feedHeader, hudWidth)))
	row++
	lines := c.feed.Lines()
	for i := 0; i < config.FeedLines; i++ {
		text := ""
		if i < len(lines) {
			text = lines[i]
		}
		cw.WriteAt(col, row, c.styles.feed.Render(draw.PadRight(text, hudWidth)))
		row++
	}

	row++
	for _, line := range controlLines {
		cw.WriteAt(col, row, c.styles.dim.Render(draw.PadRight(line, hudWidth)))
		row++
	}
}

// drawBanner overlays the state message on the middle of the board.
func (c *Client) drawBanner(snap *model.Snapshot) {
	var lines []string
	switch snap.State {
	case model.StateSetup:
		lines = []string{"Press ENTER", "to start"}
	case model.StatePaused:
		lines = []string{"PAUSED", "P to resume"}
	case model.StateGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score %d", snap.Stats.Score), "ENTER restart"}
	default:
		return
	}

	width := c.board.TermWidth()
	center := boardLeft + width/2
	row := boardTop + c.board.Rows()/2 - len(lines)/2
	for i, line := range lines {
		text := draw.Truncate(" "+line+" ", width)
		c.chunkWriter.WriteAt(draw.CenterCol(text, center), row+i, c.styles.banner.Render(text))
	}
}

// formatSurvived renders a duration as minutes and seconds.
func formatSurvived(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
