package ui

import (
	"image/color"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

type TileKind uint8

const (
	Grass TileKind = iota
	Wall
	Head
	Body
	Apple
)

func (k TileKind) String() string {
	switch k {
	case Grass:
		return "grass"
	case Wall:
		return "wall"
	case Apple:
		return "apple"
	case Head:
		return "head"
	case Body:
		return "body"
	default:
		return "unknown"
	}
}

type Tile struct {
	Cell types.Point
	Kind TileKind
}

// Scene is one frame of the board, independent of any frontend. Tiles are
// listed in draw order.
type Scene struct {
	Grid     types.Grid
	Tiles    []Tile
	Score    int
	Best     int
	GameOver bool
	Cause    manager.CollisionType
}

// Input is what a frontend collected during one frame.
type Input struct {
	Dir  types.Direction
	Quit bool
}

// Compose snapshots the game into a scene: grass, walls, snake head first,
// then the apple.
func Compose(g *game.Game) Scene {
	walls := g.Walls()
	body := g.GetSnake().Body()
	tiles := make([]Tile, 0, g.Grid.Area()/2+1+len(walls)+len(body)+1)

	for y := 0; y < g.Grid.Height; y++ {
		for x := 0; x < g.Grid.Width; x++ {
			if x%2 == y%2 {
				tiles = append(tiles, Tile{Cell: types.Point{X: x, Y: y}, Kind: Grass})
			}
		}
	}
	for _, w := range walls {
		tiles = append(tiles, Tile{Cell: w, Kind: Wall})
	}
	for i, p := range body {
		kind := Body
		if i == 0 {
			kind = Head
		}
		tiles = append(tiles, Tile{Cell: p, Kind: kind})
	}
	tiles = append(tiles, Tile{Cell: g.GetApple(), Kind: Apple})

	return Scene{
		Grid:     g.Grid,
		Tiles:    tiles,
		Score:    g.Score(),
		Best:     g.Stats().HighScore(),
		GameOver: g.IsGameOver(),
		Cause:    g.Cause(),
	}
}

type Palette struct {
	Background color.RGBA
	Grass      color.RGBA
	Wall       color.RGBA
	Apple      color.RGBA
	HeadBorder color.RGBA
	BodyBorder color.RGBA
	SnakeFill  color.RGBA
}

var DefaultPalette = Palette{
	Background: color.RGBA{R: 127, G: 215, B: 70, A: 255},
	Grass:      color.RGBA{R: 167, G: 209, B: 61, A: 255},
	Wall:       color.RGBA{R: 0, G: 0, B: 0, A: 255},
	Apple:      color.RGBA{R: 200, G: 0, B: 0, A: 255},
	HeadBorder: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	BodyBorder: color.RGBA{R: 0, G: 0, B: 255, A: 255},
	SnakeFill:  color.RGBA{R: 0, G: 100, B: 255, A: 255},
}

// Style is the pixel layout: cell edge in pixels, snake border width and
// colors.
type Style struct {
	Block   int
	Border  int
	Palette Palette
}

func NewStyle(block, border int) Style {
	return Style{Block: block, Border: border, Palette: DefaultPalette}
}

// Rect is a filled rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H int
	Color      color.RGBA
}

func (s Style) CanvasSize(grid types.Grid) (int, int) {
	return grid.Width * s.Block, grid.Height * s.Block
}

func (s Style) cell(p types.Point, c color.RGBA) Rect {
	return Rect{X: p.X * s.Block, Y: p.Y * s.Block, W: s.Block, H: s.Block, Color: c}
}

// Rects returns the rectangles for one tile. Snake cells get an outer
// border rect and an inner fill rect inset by Border pixels.
func (s Style) Rects(t Tile) []Rect {
	switch t.Kind {
	case Grass:
		return []Rect{s.cell(t.Cell, s.Palette.Grass)}
	case Wall:
		return []Rect{s.cell(t.Cell, s.Palette.Wall)}
	case Apple:
		return []Rect{s.cell(t.Cell, s.Palette.Apple)}
	}

	border := s.Palette.BodyBorder
	if t.Kind == Head {
		border = s.Palette.HeadBorder
	}
	outer := s.cell(t.Cell, border)
	inner := Rect{
		X:     outer.X + s.Border,
		Y:     outer.Y + s.Border,
		W:     s.Block - 2*s.Border,
		H:     s.Block - 2*s.Border,
		Color: s.Palette.SnakeFill,
	}
	if inner.W <= 0 || inner.H <= 0 {
		return []Rect{outer}
	}
	return []Rect{outer, inner}
}

// Layout returns every rectangle of the frame, starting with the background.
func (s Style) Layout(scene Scene) []Rect {
	w, h := s.CanvasSize(scene.Grid)
	rects := make([]Rect, 0, 1+2*len(scene.Tiles))
	rects = append(rects, Rect{W: w, H: h, Color: s.Palette.Background})
	for _, t := range scene.Tiles {
		rects = append(rects, s.Rects(t)...)
	}
	return rects
}
