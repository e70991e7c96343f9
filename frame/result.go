package frame

import "github.com/swdee/go-hardhat"

// HeadRecord is the wire form of a matched head
type HeadRecord struct {
	Box        BoxRecord `json:"box"`
	Confidence float64   `json:"confidence"`
	HasHelmet  bool      `json:"has_helmet"`
}

// WorkerRecord is the wire form of a resolved worker
type WorkerRecord struct {
	// ID is the index of the worker prediction within the frame
	ID         int64       `json:"id"`
	Box        BoxRecord   `json:"box"`
	Confidence float64     `json:"confidence"`
	Outcome    string      `json:"outcome"`
	Head       *HeadRecord `json:"head"`
}

// Result holds the resolved workers of a frame
type Result struct {
	FrameID string         `json:"frame_id"`
	Workers []WorkerRecord `json:"workers"`
}

// NewResult returns the wire form of the resolved workers of a frame
func NewResult(frameID string, workers []hardhat.Worker) Result {

	res := Result{
		FrameID: frameID,
		Workers: make([]WorkerRecord, 0, len(workers)),
	}

	for _, w := range workers {

		rec := WorkerRecord{
			ID:         w.ID,
			Box:        NewBoxRecord(w.Box),
			Confidence: w.Confidence,
			Outcome:    w.Outcome.String(),
		}

		if w.Head != nil {
			rec.Head = &HeadRecord{
				Box:        NewBoxRecord(w.Head.Box),
				Confidence: w.Head.Confidence,
				HasHelmet:  w.Head.HasHelmet,
			}
		}

		res.Workers = append(res.Workers, rec)
	}

	return res
}
