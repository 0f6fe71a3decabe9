package design

import (
	"image"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/nfnt/resize"
	"github.com/rivo/tview"
)

// ArtworkView draws an image with upper half blocks, two pixel rows per cell.
type ArtworkView struct {
	*tview.Box

	mu          sync.Mutex
	img         image.Image
	placeholder string
}

func NewArtworkView() *ArtworkView {
	return &ArtworkView{
		Box:         tview.NewBox(),
		placeholder: "Artwork",
	}
}

func (a *ArtworkView) SetImage(img image.Image) *ArtworkView {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.img = img
	return a
}

func (a *ArtworkView) Draw(screen tcell.Screen) {
	a.Box.DrawForSubclass(screen, a)

	a.mu.Lock()
	img := a.img
	a.mu.Unlock()

	x, y, width, height := a.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	if img == nil {
		tview.Print(screen, a.placeholder, x, y+height/2, width, tview.AlignCenter, tcell.ColorGray)
		return
	}

	cells := halfBlocks(img, width, height)
	for row := range cells {
		offset := (width - len(cells[row])) / 2
		for col, cell := range cells[row] {
			style := tcell.StyleDefault.Foreground(cell[0]).Background(cell[1])
			screen.SetContent(x+offset+col, y+row, '▀', nil, style)
		}
	}
}

// halfBlocks scales img into width x 2*height pixels and returns, per cell, the
// colours of its top and bottom pixel.
func halfBlocks(img image.Image, width, height int) [][][2]tcell.Color {
	scaled := resize.Thumbnail(uint(width), uint(height*2), img, resize.Bilinear)
	bounds := scaled.Bounds()

	rows := (bounds.Dy() + 1) / 2
	cells := make([][][2]tcell.Color, rows)
	for row := 0; row < rows; row++ {
		cells[row] = make([][2]tcell.Color, bounds.Dx())
		for col := 0; col < bounds.Dx(); col++ {
			px := bounds.Min.X + col
			top := toColor(scaled.At(px, bounds.Min.Y+row*2))

			bottom := tcell.ColorDefault
			if row*2+1 < bounds.Dy() {
				bottom = toColor(scaled.At(px, bounds.Min.Y+row*2+1))
			}

			cells[row][col] = [2]tcell.Color{top, bottom}
		}
	}

	return cells
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
