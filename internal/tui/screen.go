package tui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"holdem-console/internal/view"
)

const (
	canvasWidth  = 92
	canvasHeight = 22
	seatWidth    = 20
	seatHeight   = 3
)

// Screen owns the terminal area the table is drawn into. Every snapshot
// replaces the whole frame; with at most eight seats and a one second
// cadence there is nothing worth diffing.
type Screen struct {
	area *pterm.AreaPrinter
}

func NewScreen() (*Screen, error) {
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return nil, err
	}
	return &Screen{area: area}, nil
}

func (s *Screen) Render(tv view.TableView) {
	s.area.Update(Frame(tv))
}

func (s *Screen) Stop() {
	_ = s.area.Stop()
}

// Frame lays one view tree out as plain text: seats on a ring around the
// board, pot and community cards in the middle, the log tail underneath.
func Frame(tv view.TableView) string {
	g := newGrid(canvasWidth, canvasHeight)

	for _, seat := range tv.Seats {
		x := int(seat.Pos.X*canvasWidth) - seatWidth/2
		y := int(seat.Pos.Y*canvasHeight) - seatHeight/2
		g.blit(x, y, seatLines(seat))
	}

	center := []string{
		strings.TrimSpace(tv.Stage),
		tv.PotLabel,
		communityLine(tv.Community),
	}
	if tv.ShowNextRound {
		center = append(center, "(hand finished)")
	}
	for i, line := range center {
		g.blitCentered(canvasHeight/2-2+i, line)
	}

	var b strings.Builder
	b.WriteString(g.String())
	if tv.LogText != "" {
		b.WriteString("\n")
		b.WriteString(pterm.FgGray.Sprint(tv.LogText))
		b.WriteString("\n")
	}
	return b.String()
}

func seatLines(seat view.SeatView) []string {
	marker := "  "
	if seat.Active {
		marker = "▶ "
	}
	title := marker + seat.Name
	if seat.Status != "" {
		title += " [" + seat.Status + "]"
	}
	cards := make([]string, 0, len(seat.Cards))
	for _, c := range seat.Cards {
		if c.FaceDown {
			cards = append(cards, "[?]")
		} else {
			cards = append(cards, c.Label)
		}
	}
	return []string{
		title,
		fmt.Sprintf("  Chips %d  Bet %d", seat.Chips, seat.Bet),
		"  " + strings.Join(cards, " "),
	}
}

func communityLine(cards []view.CardView) string {
	if len(cards) == 0 {
		return ""
	}
	labels := make([]string, 0, len(cards))
	for _, c := range cards {
		labels = append(labels, c.Label)
	}
	return strings.Join(labels, " ")
}

type grid struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *grid {
	cells := make([][]rune, h)
	for y := range cells {
		row := make([]rune, w)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &grid{w: w, h: h, cells: cells}
}

func (g *grid) blit(x, y int, lines []string) {
	for dy, line := range lines {
		row := y + dy
		if row < 0 || row >= g.h {
			continue
		}
		col := x
		for _, r := range line {
			if col >= 0 && col < g.w {
				g.cells[row][col] = r
			}
			col++
		}
	}
}

func (g *grid) blitCentered(row int, line string) {
	if line == "" {
		return
	}
	g.blit((g.w-len([]rune(line)))/2, row, []string{line})
}

func (g *grid) String() string {
	rows := make([]string, g.h)
	for y, row := range g.cells {
		rows[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(rows, "\n")
}
