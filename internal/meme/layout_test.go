package meme

import (
	"errors"
	"image"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{name: "fits on one line", text: "Chew the toy", width: 40, expected: []string{"Chew the toy"}},
		{name: "breaks on words", text: "to bork or not to bork", width: 10, expected: []string{"to bork or", "not to", "bork"}},
		{name: "collapses whitespace", text: "  sit \n\t stay  ", width: 40, expected: []string{"sit stay"}},
		{name: "splits long words", text: "abcdefghijkl", width: 5, expected: []string{"abcde", "fghij", "kl"}},
		{name: "long word fills current line", text: "ab cdefghij", width: 5, expected: []string{"ab cd", "efghi", "j"}},
		{name: "empty", text: "   ", width: 10, expected: nil},
		{name: "counts runes not bytes", text: "über café", width: 9, expected: []string{"über café"}},
		{name: "splits long words on rune boundaries", text: "ääääääää", width: 3, expected: []string{"äää", "äää", "ää"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Wrap(tt.text, tt.width))
		})
	}
}

func TestWrap_LinesNeverExceedWidth(t *testing.T) {
	text := strings.Repeat("woof ", 30) + "supercalifragilisticexpialidocious"
	for _, line := range Wrap(text, 12) {
		assert.LessOrEqual(t, len(line), 12, "line %q", line)
	}
}

func TestWrap_KeepsMultiByteRunesIntact(t *testing.T) {
	text := "Schwanzwedelgeschwindigkeitsübermäßigkeit über alles"
	for _, line := range Wrap(text, 7) {
		assert.True(t, utf8.ValidString(line), "line %q", line)
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 7, "line %q", line)
	}
}

func TestCaptionLines(t *testing.T) {
	lines := CaptionLines("to bork or not to bork", "Bork", 10)

	assert.Equal(t, []string{"to bork or", "not to", "bork", "- Bork"}, lines)
}

func TestMeasureLines(t *testing.T) {
	face := basicfont.Face7x13

	block := MeasureLines(face, []string{"abc", "abcdef"})

	require.Len(t, block.Lines, 2)
	assert.Equal(t, 21, block.Lines[0].Width)
	assert.Equal(t, 42, block.Lines[1].Width)
	assert.Equal(t, 13, block.Lines[0].Height)
	assert.Equal(t, 42, block.Width)
	assert.Equal(t, 26, block.Height)
}

func TestRegion(t *testing.T) {
	block := TextBlock{Width: 100, Height: 40}

	t.Run("free space", func(t *testing.T) {
		region, err := Region(block, image.Pt(500, 250))

		require.NoError(t, err)
		assert.Equal(t, image.Pt(400, 210), region.Max)
		assert.Equal(t, image.Rect(40, 21, 360, 189), region.Inner())
	})

	t.Run("too wide", func(t *testing.T) {
		_, err := Region(block, image.Pt(100, 250))

		var tooLong *QuoteTooLongError
		require.ErrorAs(t, err, &tooLong)
		assert.Equal(t, image.Pt(100, 40), tooLong.Text)
		assert.Equal(t, image.Pt(100, 250), tooLong.Image)
		assert.True(t, errors.Is(err, ErrQuoteTooLong))
	})

	t.Run("too tall", func(t *testing.T) {
		_, err := Region(block, image.Pt(500, 30))

		assert.ErrorIs(t, err, ErrQuoteTooLong)
	})

	t.Run("one pixel of slack is enough", func(t *testing.T) {
		region, err := Region(block, image.Pt(101, 41))

		require.NoError(t, err)
		assert.Equal(t, image.Pt(0, 0), region.Pick(rand.New(rand.NewSource(1))))
	})
}

func TestPlacementRegion_Pick(t *testing.T) {
	region := PlacementRegion{Max: image.Pt(400, 210)}
	inner := region.Inner()
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		p := region.Pick(rnd)
		assert.GreaterOrEqual(t, p.X, inner.Min.X)
		assert.LessOrEqual(t, p.X, inner.Max.X)
		assert.GreaterOrEqual(t, p.Y, inner.Min.Y)
		assert.LessOrEqual(t, p.Y, inner.Max.Y)
	}
}

func TestPlacementRegion_PickIsDeterministicForSeed(t *testing.T) {
	region := PlacementRegion{Max: image.Pt(400, 210)}

	a := region.Pick(rand.New(rand.NewSource(7)))
	b := region.Pick(rand.New(rand.NewSource(7)))

	assert.Equal(t, a, b)
}

func TestLayout(t *testing.T) {
	face := basicfont.Face7x13

	t.Run("fits", func(t *testing.T) {
		block, at, err := Layout(face, "Chew the toy", "Rex", 40, image.Pt(500, 250), rand.New(rand.NewSource(1)))

		require.NoError(t, err)
		assert.Equal(t, []string{"Chew the toy", "- Rex"}, []string{block.Lines[0].Text, block.Lines[1].Text})
		assert.LessOrEqual(t, at.X+block.Width, 500)
		assert.LessOrEqual(t, at.Y+block.Height, 250)
	})

	t.Run("quote too long", func(t *testing.T) {
		body := strings.Repeat("bark ", 200)

		_, _, err := Layout(face, body, "Rex", 40, image.Pt(500, 250), rand.New(rand.NewSource(1)))

		assert.ErrorIs(t, err, ErrQuoteTooLong)
	})
}
