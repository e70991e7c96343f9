package postprocess

import "github.com/swdee/go-hardhat"

// DetectionsToPredictions takes the object detection results of the upstream
// Model and converts them into predictions for worker resolution.  The labels
// slice maps each result Class to its Label, results with a Class outside of
// the labels are skipped.
func DetectionsToPredictions(dets []DetectResult, labels []hardhat.Label) []hardhat.Prediction {

	preds := make([]hardhat.Prediction, 0, len(dets))

	for _, det := range dets {

		if det.Class < 0 || det.Class >= len(labels) {
			continue
		}

		preds = append(preds, hardhat.Prediction{
			ID:         det.ID,
			Label:      labels[det.Class],
			Confidence: float64(det.Probability),
			Box: hardhat.NewBox(float64(det.Box.Left), float64(det.Box.Top),
				float64(det.Box.Right), float64(det.Box.Bottom)),
		})
	}

	return preds
}

// FromDetectionResult converts the results of any post processor implementing
// DetectionResult
func FromDetectionResult(res DetectionResult, labels []hardhat.Label) []hardhat.Prediction {
	return DetectionsToPredictions(res.GetDetectResults(), labels)
}
