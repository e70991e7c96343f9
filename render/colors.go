package render

import (
	"github.com/swdee/go-hardhat"
	"github.com/swdee/go-hardhat/annotate"
	"image/color"
)

// White is the default label text color
var White = annotate.White

// OutcomeColor returns the color for rendering a worker of the given outcome.
// It shares the palette of the annotate package so both renderers produce the
// same colors
func OutcomeColor(o hardhat.Outcome) color.RGBA {
	return annotate.OutcomeColor(o)
}
