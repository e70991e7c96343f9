// Package annotate draws resolved workers onto images in pure Go, for use
// where OpenCV is not available.  See the render package for the GoCV
// equivalent.
package annotate

import (
	"fmt"
	"github.com/disintegration/imaging"
	"github.com/swdee/go-hardhat"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
)

// Options defines how the annotations are drawn
type Options struct {
	// LineThickness is the stroke width in pixels of worker boxes.  Head boxes
	// are drawn with half of it
	LineThickness int
	// Face is the font used for labels
	Face font.Face
	// Pad is the padding in pixels around the label text
	Pad int
}

// DefaultOptions returns default annotation settings
func DefaultOptions() Options {
	return Options{
		LineThickness: 2,
		Face:          basicfont.Face7x13,
		Pad:           2,
	}
}

// label is a box label precalculated for rendering after all boxes
type label struct {
	rect image.Rectangle
	clr  color.RGBA
	text string
	dot  fixed.Point26_6
}

// Annotate returns a copy of img with the workers drawn on it.  Each worker
// box and its head box are stroked in the color of the worker outcome, and a
// label with the outcome and confidence is placed above the worker box
func Annotate(img image.Image, workers []hardhat.Worker, opts Options) *image.NRGBA {

	dst := imaging.Clone(img)

	if opts.Face == nil {
		opts.Face = basicfont.Face7x13
	}

	if opts.LineThickness < 1 {
		opts.LineThickness = 1
	}

	headThickness := opts.LineThickness / 2

	if headThickness < 1 {
		headThickness = 1
	}

	metrics := opts.Face.Metrics()
	ascent := metrics.Ascent.Ceil()
	textHeight := ascent + metrics.Descent.Ceil()

	labels := make([]label, 0, len(workers))

	for _, w := range workers {

		clr := OutcomeColor(w.Outcome)
		rect := toRect(w.Box)

		strokeRect(dst, rect, clr, opts.LineThickness)

		if w.Head != nil {
			strokeRect(dst, toRect(w.Head.Box), clr, headThickness)
		}

		text := LabelText(w)
		textWidth := font.MeasureString(opts.Face, text).Ceil()

		// place label above the box, or inside it when at the image top
		top := rect.Min.Y - textHeight - 2*opts.Pad

		if top < dst.Bounds().Min.Y {
			top = rect.Min.Y
		}

		labels = append(labels, label{
			rect: image.Rect(rect.Min.X, top, rect.Min.X+textWidth+2*opts.Pad, top+textHeight+2*opts.Pad),
			clr:  clr,
			text: text,
			dot:  fixed.P(rect.Min.X+opts.Pad, top+opts.Pad+ascent),
		})
	}

	// draw labels last so they are not overlapped by other boxes
	for _, l := range labels {

		draw.Draw(dst, l.rect, image.NewUniform(l.clr), image.Point{}, draw.Src)

		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(White),
			Face: opts.Face,
			Dot:  l.dot,
		}
		d.DrawString(l.text)
	}

	return dst
}

// toRect converts a box into integer pixel bounds
func toRect(b hardhat.Box) image.Rectangle {
	return image.Rect(
		int(math.Round(b.BottomLeft.X)), int(math.Round(b.BottomLeft.Y)),
		int(math.Round(b.TopRight.X)), int(math.Round(b.TopRight.Y)),
	)
}

// strokeRect draws the outline of r with the given thickness, growing inwards
func strokeRect(dst draw.Image, r image.Rectangle, clr color.Color, thickness int) {

	src := image.NewUniform(clr)

	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness), // top
		image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y), // bottom
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y), // left
		image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y), // right
	}

	for _, e := range edges {
		draw.Draw(dst, e, src, image.Point{}, draw.Src)
	}
}

// formatConfidence formats a confidence score for labels
func formatConfidence(c float64) string {
	return fmt.Sprintf("%.2f", c)
}

// DecodeImage reads an image in any format supported by imaging
func DecodeImage(r io.Reader) (image.Image, error) {

	img, err := imaging.Decode(r, imaging.AutoOrientation(true))

	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	return img, nil
}

// EncodePNG writes img to w as a PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}
