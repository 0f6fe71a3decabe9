package design

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func twoTone() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, red)
	img.Set(1, 0, red)
	img.Set(0, 1, blue)
	img.Set(1, 1, blue)
	return img
}

func TestHalfBlocks(t *testing.T) {
	cells := halfBlocks(twoTone(), 2, 1)

	require.Len(t, cells, 1)
	require.Len(t, cells[0], 2)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), cells[0][0][0])
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), cells[0][0][1])
}

func TestHalfBlocksOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))

	cells := halfBlocks(img, 1, 2)

	require.Len(t, cells, 2)
	assert.Equal(t, tcell.ColorDefault, cells[1][0][1])
}

func TestArtworkViewDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 4)

	view := NewArtworkView().SetImage(twoTone())
	view.SetRect(0, 0, 2, 1)
	view.Draw(screen)

	mainc, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, '▀', mainc)
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)
}

func TestArtworkViewPlaceholder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 3)

	view := NewArtworkView()
	view.SetRect(0, 0, 20, 3)
	view.Draw(screen)

	var row []rune
	for x := 0; x < 20; x++ {
		mainc, _, _, _ := screen.GetContent(x, 1)
		row = append(row, mainc)
	}
	assert.Contains(t, string(row), "Artwork")
}
