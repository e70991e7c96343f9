package frame

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/swdee/go-hardhat"
	"github.com/swdee/go-hardhat/postprocess"
	"io"
)

// Detections is a frame of raw detector results that still carry class
// indexes instead of labels
type Detections struct {
	ID      string                     `json:"id"`
	Results []postprocess.DetectResult `json:"results" validate:"dive"`
}

// DecodeDetections reads a JSON frame of detector results from r and
// validates it
func DecodeDetections(r io.Reader) (*Detections, error) {

	var d Detections

	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: error decoding json: %v", ErrInvalidFrame, err)
	}

	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	if err := validate.Struct(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}

	return &d, nil
}

// ToPredictions maps each result class to its label.  Results with a class
// outside of labels are skipped
func (d *Detections) ToPredictions(labels []hardhat.Label) []hardhat.Prediction {
	return postprocess.DetectionsToPredictions(d.Results, labels)
}
