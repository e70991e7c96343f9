// Package frame defines the JSON wire format of a single frame of detector
// output and of the resolved workers returned for it.
package frame

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/swdee/go-hardhat"
	"io"
)

// ErrInvalidFrame is returned when a frame cannot be decoded or fails
// validation
var ErrInvalidFrame = errors.New("invalid frame")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PointRecord is the wire form of hardhat.Point
type PointRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoxRecord is the wire form of hardhat.Box
type BoxRecord struct {
	BottomLeft PointRecord `json:"bottom_left"`
	TopRight   PointRecord `json:"top_right"`
}

// PredictionRecord is a single detection as emitted by the upstream Model
type PredictionRecord struct {
	Label      string    `json:"label" validate:"required"`
	Confidence float64   `json:"confidence" validate:"gte=0,lte=1"`
	Box        BoxRecord `json:"box"`
}

// Frame is the set of predictions made for one image
type Frame struct {
	// ID identifies the frame in logs and results, one is generated when
	// the producer did not set it
	ID          string             `json:"id"`
	Predictions []PredictionRecord `json:"predictions" validate:"dive"`
}

// Decode reads a JSON frame from r and validates it
func Decode(r io.Reader) (*Frame, error) {

	var f Frame

	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: error decoding json: %v", ErrInvalidFrame, err)
	}

	if f.ID == "" {
		f.ID = uuid.NewString()
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Encode writes v to w as JSON
func Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// ToBox converts the record into a hardhat.Box
func (b BoxRecord) ToBox() hardhat.Box {
	return hardhat.NewBox(b.BottomLeft.X, b.BottomLeft.Y, b.TopRight.X, b.TopRight.Y)
}

// NewBoxRecord returns the wire form of a box
func NewBoxRecord(b hardhat.Box) BoxRecord {
	return BoxRecord{
		BottomLeft: PointRecord{X: b.BottomLeft.X, Y: b.BottomLeft.Y},
		TopRight:   PointRecord{X: b.TopRight.X, Y: b.TopRight.Y},
	}
}

// ToPredictions converts the frame records into predictions, each identified
// by its index in the frame
func (f *Frame) ToPredictions() []hardhat.Prediction {

	preds := make([]hardhat.Prediction, 0, len(f.Predictions))

	for i, rec := range f.Predictions {
		preds = append(preds, hardhat.Prediction{
			ID:         int64(i),
			Label:      hardhat.Label(rec.Label),
			Confidence: rec.Confidence,
			Box:        rec.Box.ToBox(),
		})
	}

	return preds
}
