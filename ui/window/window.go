// Package window draws the board in a raylib window.
package window

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grid-snake/game/types"
	"grid-snake/ui"
)

const (
	fontSize = 20
	hudPad   = 5
)

type Renderer struct {
	style        ui.Style
	screenWidth  int32
	screenHeight int32
}

// New opens a window sized to the board and caps the frame rate at speed
// frames per second, one game tick per frame.
func New(grid types.Grid, style ui.Style, speed int, title string) *Renderer {
	w, h := style.CanvasSize(grid)
	r := &Renderer{
		style:        style,
		screenWidth:  int32(w),
		screenHeight: int32(h),
	}
	rl.InitWindow(r.screenWidth, r.screenHeight, title)
	rl.SetTargetFPS(int32(speed))
	return r
}

// Poll reads the key queue of the last frame. The first arrow key wins;
// ESC and the close button quit.
func (r *Renderer) Poll() ui.Input {
	var in ui.Input
	if rl.WindowShouldClose() {
		in.Quit = true
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		dir := direction(key)
		if in.Dir == types.NONE {
			in.Dir = dir
		}
	}
	return in
}

func direction(key int32) types.Direction {
	switch key {
	case rl.KeyUp:
		return types.UP
	case rl.KeyRight:
		return types.RIGHT
	case rl.KeyDown:
		return types.DOWN
	case rl.KeyLeft:
		return types.LEFT
	}
	return types.NONE
}

func (r *Renderer) Draw(scene ui.Scene) {
	rl.BeginDrawing()
	rl.ClearBackground(r.style.Palette.Background)

	for _, rect := range r.style.Layout(scene) {
		rl.DrawRectangle(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H), rect.Color)
	}

	label := fmt.Sprintf("Score: %d  Best: %d", scene.Score, scene.Best)
	rl.DrawText(label, hudPad, hudPad, fontSize, rl.Black)

	if scene.GameOver {
		text := fmt.Sprintf("Game Over! (%s)", scene.Cause)
		textWidth := rl.MeasureText(text, fontSize)
		rl.DrawText(text,
			(r.screenWidth-textWidth)/2,
			(r.screenHeight-fontSize)/2,
			fontSize, rl.Black)
	}

	rl.EndDrawing()
}

// Wait is a no-op: EndDrawing already holds the frame to the target FPS.
func (r *Renderer) Wait() {}

func (r *Renderer) Close() error {
	rl.CloseWindow()
	return nil
}
