// Package term draws the board in a terminal with tcell.
package term

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"grid-snake/game/types"
	"grid-snake/ui"
)

// CellWidth is the number of terminal columns per board cell.
const CellWidth = 2

type Frontend struct {
	screen  tcell.Screen
	palette ui.Palette
	ticker  *time.Ticker
}

// New initializes screen and ticks speed times per second.
func New(screen tcell.Screen, palette ui.Palette, speed int) (*Frontend, error) {
	if speed < 1 {
		return nil, errors.Errorf("invalid speed %d", speed)
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal")
	}
	screen.HideCursor()
	screen.Clear()
	return &Frontend{
		screen:  screen,
		palette: palette,
		ticker:  time.NewTicker(time.Second / time.Duration(speed)),
	}, nil
}

// Poll drains pending events without blocking. The first arrow key wins.
func (f *Frontend) Poll() ui.Input {
	var in ui.Input
	for f.screen.HasPendingEvent() {
		switch ev := f.screen.PollEvent().(type) {
		case *tcell.EventKey:
			handleKey(ev, &in)
		case *tcell.EventResize:
			f.screen.Sync()
		}
	}
	return in
}

func handleKey(ev *tcell.EventKey, in *ui.Input) {
	dir := types.NONE
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.Quit = true
	case tcell.KeyUp:
		dir = types.UP
	case tcell.KeyRight:
		dir = types.RIGHT
	case tcell.KeyDown:
		dir = types.DOWN
	case tcell.KeyLeft:
		dir = types.LEFT
	}
	if in.Dir == types.NONE {
		in.Dir = dir
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Position maps a board cell to its left screen column and row. The board
// is offset by one cell so the wall ring fits on screen.
func Position(p types.Point) (int, int) {
	return (p.X + 1) * CellWidth, p.Y + 1
}

func (f *Frontend) glyph(kind ui.TileKind) (string, tcell.Style) {
	p := f.palette
	switch kind {
	case ui.Grass:
		return "  ", tcell.StyleDefault.Background(rgb(p.Grass))
	case ui.Wall:
		return "  ", tcell.StyleDefault.Background(rgb(p.Wall))
	case ui.Apple:
		return "()", tcell.StyleDefault.Background(rgb(p.Apple)).Foreground(rgb(p.Background))
	case ui.Head:
		return "[]", tcell.StyleDefault.Background(rgb(p.SnakeFill)).Foreground(rgb(p.HeadBorder))
	default:
		return "[]", tcell.StyleDefault.Background(rgb(p.SnakeFill)).Foreground(rgb(p.BodyBorder))
	}
}

func (f *Frontend) put(p types.Point, text string, style tcell.Style) {
	x, y := Position(p)
	for i, r := range text {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (f *Frontend) Draw(scene ui.Scene) {
	f.screen.Clear()

	bg := tcell.StyleDefault.Background(rgb(f.palette.Background))
	for y := 0; y < scene.Grid.Height; y++ {
		for x := 0; x < scene.Grid.Width; x++ {
			f.put(types.Point{X: x, Y: y}, "  ", bg)
		}
	}
	for _, t := range scene.Tiles {
		text, style := f.glyph(t.Kind)
		f.put(t.Cell, text, style)
	}

	hud := fmt.Sprintf("Score: %d  Best: %d", scene.Score, scene.Best)
	if scene.GameOver {
		hud += fmt.Sprintf("  GAME OVER (%s)", scene.Cause)
	}
	row := scene.Grid.Height + 2
	for i, r := range hud {
		f.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}

	f.screen.Show()
}

// Wait blocks until the next tick.
func (f *Frontend) Wait() {
	<-f.ticker.C
}

func (f *Frontend) Close() error {
	f.ticker.Stop()
	f.screen.Fini()
	return nil
}
