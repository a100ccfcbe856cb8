package meme

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawCaption draws the block's lines onto dst with their top-left corner at
// `at`. Each line is drawn four times in the border colour, offset
// diagonally by thickness, then once in the fill colour on top.
func DrawCaption(dst draw.Image, block TextBlock, at image.Point, face font.Face, fill, border color.Color, thickness int) {
	ascent := face.Metrics().Ascent.Ceil()

	offsets := []image.Point{
		{X: -thickness, Y: -thickness},
		{X: thickness, Y: -thickness},
		{X: -thickness, Y: thickness},
		{X: thickness, Y: thickness},
	}

	drawer := &font.Drawer{Dst: dst, Face: face}
	borderSrc := image.NewUniform(border)
	fillSrc := image.NewUniform(fill)

	y := at.Y
	for _, line := range block.Lines {
		baseline := y + ascent

		if thickness > 0 {
			drawer.Src = borderSrc
			for _, off := range offsets {
				drawer.Dot = fixed.P(at.X+off.X, baseline+off.Y)
				drawer.DrawString(line.Text)
			}
		}

		drawer.Src = fillSrc
		drawer.Dot = fixed.P(at.X, baseline)
		drawer.DrawString(line.Text)

		y += line.Height
	}
}
