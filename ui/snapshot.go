package ui

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

func draw(scene Scene, style Style) *gg.Context {
	w, h := style.CanvasSize(scene.Grid)
	dc := gg.NewContext(w, h)
	for _, r := range style.Layout(scene) {
		dc.SetColor(r.Color)
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
		dc.Fill()
	}
	return dc
}

// Render draws the scene into an image using the window pixel layout.
func Render(scene Scene, style Style) image.Image {
	return draw(scene, style).Image()
}

// SavePNG writes the rendered scene to path.
func SavePNG(path string, scene Scene, style Style) error {
	if err := draw(scene, style).SavePNG(path); err != nil {
		return errors.Wrapf(err, "save snapshot %s", path)
	}
	return nil
}
