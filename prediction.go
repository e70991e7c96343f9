package hardhat

// Prediction is a single raw detection produced by the upstream model
type Prediction struct {
	// ID identifies the prediction within its frame, usually its input index
	ID int64
	// Label is the class of the detected object
	Label Label
	// Confidence is the model score in the range 0.0 to 1.0
	Confidence float64
	// Box is the location of the detected object
	Box Box
}

// Confident reports whether the prediction meets the acceptance threshold
func (p Prediction) Confident(threshold float64) bool {
	return p.Confidence >= threshold
}

// IsWorker reports whether the prediction is a confident worker
func (p Prediction) IsWorker(threshold float64) bool {
	return p.Label == LabelWorker && p.Confident(threshold)
}

// IsHead reports whether the prediction is a confident head, with or without
// a hard hat
func (p Prediction) IsHead(threshold float64) bool {
	return p.Label.IsHead() && p.Confident(threshold)
}

// IsHelmet reports whether the prediction is a confident head wearing a hard
// hat
func (p Prediction) IsHelmet(threshold float64) bool {
	return p.Label == LabelHeadWithHelmet && p.Confident(threshold)
}
