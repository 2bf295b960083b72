// Package render rasterises strokes and resampled shapes so that learned
// gestures can be inspected.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

type Options struct {
	Size       int
	Margin     float64
	LineWidth  float64
	Background color.Color
	Ink        color.Color
}

func DefaultOptions() Options {
	return Options{
		Size:       256,
		Margin:     16,
		LineWidth:  3,
		Background: color.White,
		Ink:        color.RGBA{R: 0x20, G: 0x40, B: 0xc0, A: 0xff},
	}
}

// Polyline returns the points visited by walking a shape's direction vectors
// one unit at a time from the origin.
func Polyline(s stroke.Shape) []stroke.Point {
	points := make([]stroke.Point, 0, s.Len()+1)
	p := stroke.Point{}
	points = append(points, p)
	for _, v := range s.Vectors() {
		p = stroke.Point{X: p.X + v.X, Y: p.Y + v.Y}
		points = append(points, p)
	}
	return points
}

// Strokes draws each stroke scaled to fit the image, preserving aspect ratio.
func Strokes(strokes [][]stroke.Point, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range strokes {
		for _, p := range s {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return img
	}

	avail := float64(opts.Size) - 2*opts.Margin
	extent := max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = avail / extent
	}
	offX := opts.Margin + (avail-(maxX-minX)*scale)/2
	offY := opts.Margin + (avail-(maxY-minY)*scale)/2
	project := func(p stroke.Point) (float32, float32) {
		return float32(offX + (p.X-minX)*scale), float32(offY + (p.Y-minY)*scale)
	}

	z := vector.NewRasterizer(opts.Size, opts.Size)
	half := float32(opts.LineWidth / 2)
	for _, s := range strokes {
		for i, p := range s {
			x, y := project(p)
			dot(z, x, y, half)
			if i > 0 {
				px, py := project(s[i-1])
				segment(z, px, py, x, y, half)
			}
		}
	}
	z.Draw(img, img.Bounds(), image.NewUniform(opts.Ink), image.Point{})
	return img
}

// Shape draws the polyline reconstructed from a resampled shape.
func Shape(s stroke.Shape, opts Options) *image.RGBA {
	return Strokes([][]stroke.Point{Polyline(s)}, opts)
}

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// segment adds a quad of half-width h around the line from (x0,y0) to (x1,y1).
func segment(z *vector.Rasterizer, x0, y0, x1, y1, h float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*h, dx/l*h
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// dot adds a square cap so joints between segments stay filled. It winds the
// same way as segment so overlapping coverage adds up instead of cancelling.
func dot(z *vector.Rasterizer, x, y, h float32) {
	z.MoveTo(x-h, y-h)
	z.LineTo(x-h, y+h)
	z.LineTo(x+h, y+h)
	z.LineTo(x+h, y-h)
	z.ClosePath()
}
