package postprocess

// DetectionResult is implemented by the output of YOLO style decoders, so
// their results can be resolved without copying them into a frame first
type DetectionResult interface {
	GetDetectResults() []DetectResult
}

// BoxRect is the pixel bounding box reported by a detector, with Top being the
// smaller y coordinate
type BoxRect struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// DetectResult is a single detection in the shape YOLO decoders emit it.  It
// carries a class index rather than a Label, resolved against the labels file
// the Model was trained with
type DetectResult struct {
	Class       int     `json:"class" validate:"gte=0"`
	Box         BoxRect `json:"box"`
	Probability float32 `json:"probability" validate:"gte=0,lte=1"`
	// ID is assigned by the detector and carried through to the Worker
	ID int64 `json:"id"`
}
