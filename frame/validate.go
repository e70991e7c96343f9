package frame

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/swdee/go-hardhat/postprocess"
)

var validate = newValidator()

// newValidator returns a validator with the box corner rules registered
func newValidator() *validator.Validate {

	v := validator.New()
	v.RegisterStructValidation(boxStructLevel, BoxRecord{})
	v.RegisterStructValidation(rectStructLevel, postprocess.BoxRect{})

	return v
}

// boxStructLevel rejects boxes without a positive width and height
func boxStructLevel(sl validator.StructLevel) {

	b := sl.Current().Interface().(BoxRecord)

	if b.BottomLeft.X >= b.TopRight.X {
		sl.ReportError(b.TopRight.X, "top_right.x", "X", "gtx", "")
	}

	if b.BottomLeft.Y >= b.TopRight.Y {
		sl.ReportError(b.TopRight.Y, "top_right.y", "Y", "gty", "")
	}
}

// rectStructLevel rejects detector boxes without a positive width and height
func rectStructLevel(sl validator.StructLevel) {

	r := sl.Current().Interface().(postprocess.BoxRect)

	if r.Left >= r.Right {
		sl.ReportError(r.Right, "right", "Right", "gtfield", "Left")
	}

	if r.Top >= r.Bottom {
		sl.ReportError(r.Bottom, "bottom", "Bottom", "gtfield", "Top")
	}
}

// Validate checks every prediction of the frame has a label, a confidence
// between 0 and 1 and a box with positive area
func (f *Frame) Validate() error {

	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}

	return nil
}
