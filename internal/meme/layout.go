package meme

import (
	"image"
	"math/rand"
	"strings"

	"golang.org/x/image/font"
)

// DefaultMaxCharsPerLine is the wrap width used for captions.
const DefaultMaxCharsPerLine = 40

// Line is one wrapped caption line with its rendered size in pixels.
type Line struct {
	Text   string
	Width  int
	Height int
}

// TextBlock is a measured, wrapped caption. Width is the widest line,
// Height the sum of line heights.
type TextBlock struct {
	Lines  []Line
	Width  int
	Height int
}

// Size returns the block's bounding box.
func (b TextBlock) Size() image.Point {
	return image.Pt(b.Width, b.Height)
}

// Wrap breaks text into lines of at most width characters on word
// boundaries. Words longer than width are split. Widths are counted in runes
// so multi-byte characters are never cut.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var (
		lines   []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, field := range strings.Fields(text) {
		word := []rune(field)
		for len(word) > width {
			// Fill the remainder of the current line with the head of a long word
			room := width
			if len(current) > 0 {
				room = width - len(current) - 1
				if room <= 0 {
					flush()
					continue
				}
				current = append(current, ' ')
			}
			current = append(current, word[:room]...)
			word = word[room:]
			flush()
		}

		switch {
		case len(word) == 0:
		case len(current) == 0:
			current = append(current, word...)
		case len(current)+1+len(word) <= width:
			current = append(current, ' ')
			current = append(current, word...)
		default:
			flush()
			current = append(current, word...)
		}
	}
	flush()

	return lines
}

// CaptionLines wraps the body and the "- author" attribution independently
// and returns the body lines followed by the author lines.
func CaptionLines(body, author string, maxChars int) []string {
	lines := Wrap(body, maxChars)
	return append(lines, Wrap("- "+author, maxChars)...)
}

// MeasureLines measures every line with face. A line's height is the face's
// ascent plus descent so lines stack evenly.
func MeasureLines(face font.Face, lines []string) TextBlock {
	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()

	block := TextBlock{Lines: make([]Line, 0, len(lines))}
	for _, text := range lines {
		line := Line{
			Text:   text,
			Width:  font.MeasureString(face, text).Ceil(),
			Height: lineHeight,
		}
		block.Lines = append(block.Lines, line)
		block.Height += line.Height
		if line.Width > block.Width {
			block.Width = line.Width
		}
	}
	return block
}

// PlacementRegion is the rectangle of top-left positions at which a text
// block fits inside an image. Both bounds are inclusive.
type PlacementRegion struct {
	Max image.Point
}

// Region computes where block may be placed inside an image of the given size.
// Returns a *QuoteTooLongError when less than one pixel of free space remains
// along either axis.
func Region(block TextBlock, size image.Point) (PlacementRegion, error) {
	free := size.Sub(block.Size())
	if free.X < 1 || free.Y < 1 {
		return PlacementRegion{}, &QuoteTooLongError{Text: block.Size(), Image: size}
	}
	return PlacementRegion{Max: free}, nil
}

// Inner returns the band between 10% and 90% of the region along each axis,
// the range Pick draws from.
func (r PlacementRegion) Inner() image.Rectangle {
	return image.Rect(r.Max.X/10, r.Max.Y/10, r.Max.X*9/10, r.Max.Y*9/10)
}

// Pick chooses a pseudo-random top-left position inside Inner, keeping
// captions away from the image edges.
func (r PlacementRegion) Pick(rnd *rand.Rand) image.Point {
	inner := r.Inner()
	return image.Pt(
		inner.Min.X+rnd.Intn(inner.Dx()+1),
		inner.Min.Y+rnd.Intn(inner.Dy()+1),
	)
}

// Layout wraps and measures the caption and picks its position inside an
// image of the given size.
func Layout(face font.Face, body, author string, maxChars int, size image.Point, rnd *rand.Rand) (TextBlock, image.Point, error) {
	block := MeasureLines(face, CaptionLines(body, author, maxChars))

	region, err := Region(block, size)
	if err != nil {
		return TextBlock{}, image.Point{}, err
	}

	return block, region.Pick(rnd), nil
}
