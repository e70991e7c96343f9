package annotate

import (
	"github.com/swdee/go-hardhat"
	"image/color"
)

var (
	// Green marks a worker wearing a hard hat
	Green = color.RGBA{R: 72, G: 249, B: 10, A: 255}
	// Red marks a worker with a bare head
	Red = color.RGBA{R: 255, G: 56, B: 56, A: 255}
	// Orange marks a worker without any head found
	Orange = color.RGBA{R: 255, G: 112, B: 31, A: 255}
	// Pink marks a worker matched to an implausible head
	Pink = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	// Grey marks a worker not yet resolved
	Grey = color.RGBA{R: 96, G: 96, B: 96, A: 255}
	// White is the label text color
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// OutcomeColor returns the color used to draw a worker with the given outcome
func OutcomeColor(o hardhat.Outcome) color.RGBA {
	switch o {
	case hardhat.OutcomeHelmet:
		return Green
	case hardhat.OutcomeNoHelmet:
		return Red
	case hardhat.OutcomeNoHead:
		return Orange
	case hardhat.OutcomeImplausibleHead:
		return Pink
	default:
		return Grey
	}
}

// LabelText returns the text drawn above a worker box
func LabelText(w hardhat.Worker) string {
	return w.Outcome.String() + " " + formatConfidence(w.Confidence)
}
