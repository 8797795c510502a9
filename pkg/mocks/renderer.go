package mocks

import (
	"image"
	"image/color"

	"github.com/user/framereel/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	RotateCCWFunc    func(img image.Image) image.Image
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return &Canvas{width: width, height: height}
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) RotateCCW(img image.Image) image.Image {
	if m.RotateCCWFunc != nil {
		return m.RotateCCWFunc(img)
	}
	b := img.Bounds()
	return image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas. Draw calls are
// recorded for verification.
type Canvas struct {
	width  int
	height int
	img    *image.RGBA

	ImageCalls []ImageCall
	TextCalls  []TextCall
}

// ImageCall records a call to DrawImage.
type ImageCall struct {
	X, Y int
}

// TextCall records a call to DrawText.
type TextCall struct {
	Text string
	X, Y int
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	m.ImageCalls = append(m.ImageCalls, ImageCall{X: x, Y: y})
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {}

func (m *Canvas) DrawRoundedRect(x, y, w, h, radius int, c color.Color) {}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.TextCalls = append(m.TextCalls, TextCall{Text: text, X: x, Y: y})
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (width, height float64) {
	return float64(len(text)) * style.FontSize * 0.6, style.FontSize
}

func (m *Canvas) ToImage() image.Image {
	if m.img != nil {
		return m.img
	}
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
