package render

import (
	"github.com/swdee/go-hardhat"
	"github.com/swdee/go-hardhat/annotate"
	"gocv.io/x/gocv"
	"image"
	"image/color"
	"math"
)

// boxLabel holds the precalculated details of a label to render
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// toRect converts a worker or head box into pixel coordinates
func toRect(b hardhat.Box) image.Rectangle {
	return image.Rect(
		int(math.Round(b.BottomLeft.X)), int(math.Round(b.BottomLeft.Y)),
		int(math.Round(b.TopRight.X)), int(math.Round(b.TopRight.Y)),
	)
}

// WorkerBoxes renders the bounding box of each worker, and of its head when
// one was matched, colored by the worker outcome.  Each worker is labelled
// with its outcome and confidence
func WorkerBoxes(img *gocv.Mat, workers []hardhat.Worker, font Font,
	lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(workers))

	headThickness := lineThickness / 2

	if headThickness < 1 {
		headThickness = 1
	}

	for _, w := range workers {

		useClr := OutcomeColor(w.Outcome)

		rect := toRect(w.Box)
		gocv.Rectangle(img, rect, useClr, lineThickness)

		if w.Head != nil {
			gocv.Rectangle(img, toRect(w.Head.Box), useClr, headThickness)
		}

		text := annotate.LabelText(w)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		centerX := labelCenterX(font, rect.Min.X, rect.Max.X, textSize.X, lineThickness)

		// Adjust the label position so the text is centered horizontally
		labelPosition := image.Pt(centerX-textSize.X/2, rect.Min.Y-font.BottomPad)

		// create box for placing text on
		bRect := image.Rect(centerX-textSize.X/2-font.LeftPad,
			rect.Min.Y-textSize.Y-font.TopPad-font.BottomPad,
			centerX+textSize.X/2+font.RightPad, rect.Min.Y)

		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			clr:     useClr,
			text:    text,
			textPos: labelPosition,
		})
	}

	// draw all precalculated box labels so they are the top most layer on the
	// image and don't get overlapped by neighbouring worker boxes
	for _, box := range boxLabels {
		// draw box text gets written on
		gocv.Rectangle(img, box.rect, box.clr, -1)

		// Draw the label over box
		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
