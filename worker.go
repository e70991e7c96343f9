package hardhat

import "math"

// Outcome records how a Worker was resolved against the available heads
type Outcome int

const (
	// OutcomePending means no head has been evaluated for the worker yet
	OutcomePending Outcome = iota
	// OutcomeHelmet means a head wearing a hard hat was matched
	OutcomeHelmet
	// OutcomeNoHelmet means a bare head was matched
	OutcomeNoHelmet
	// OutcomeNoHead means no head fitted the worker
	OutcomeNoHead
	// OutcomeImplausibleHead means the matched head is far too small for the
	// worker box and is most likely detector noise
	OutcomeImplausibleHead
)

// String returns the wire name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeHelmet:
		return "helmet"
	case OutcomeNoHelmet:
		return "no_helmet"
	case OutcomeNoHead:
		return "no_head"
	case OutcomeImplausibleHead:
		return "implausible_head"
	default:
		return "pending"
	}
}

// Head is a resolved head candidate
type Head struct {
	Box        Box
	Confidence float64
	// HasHelmet is true when the source prediction was labeled head_in_hh
	HasHelmet bool
}

// NewHead returns the Head for a head prediction
func NewHead(p Prediction) Head {
	return Head{
		Box:        p.Box,
		Confidence: p.Confidence,
		HasHelmet:  p.Label == LabelHeadWithHelmet,
	}
}

// Worker is a resolved person on site, optionally paired with a head
type Worker struct {
	// ID is the ID of the worker Prediction the box came from
	ID         int64
	Box        Box
	Confidence float64
	// Head is the matched head, nil if none was found or not yet evaluated
	Head    *Head
	Outcome Outcome
}

// NewWorker wraps a worker prediction as a Worker with no head evaluated yet
func NewWorker(p Prediction) Worker {
	return Worker{
		ID:         p.ID,
		Box:        p.Box,
		Confidence: p.Confidence,
		Outcome:    OutcomePending,
	}
}

// Confident reports whether the worker meets the acceptance threshold
func (w Worker) Confident(threshold float64) bool {
	return w.Confidence >= threshold
}

// HeadFound returns a copy of the worker paired with the given head and its
// confidence adjusted by the helmet evidence.  A worker that has already been
// resolved is returned unchanged.
func (w Worker) HeadFound(h Head, p Params) Worker {

	if w.Outcome != OutcomePending {
		return w
	}

	head := h
	w.Head = &head

	ratio := 0.0

	if area := w.Box.Area(); area > 0 {
		ratio = h.Box.Area() / area
	}

	switch {
	case ratio < p.MinHeadAreaRatio:
		w.Outcome = OutcomeImplausibleHead
		w.Confidence *= ratio

	case h.HasHelmet:
		w.Outcome = OutcomeHelmet
		w.Confidence *= 1 + p.ConfidenceFactor

	default:
		w.Outcome = OutcomeNoHelmet
		w.Confidence *= 1 - p.ConfidenceFactor
	}

	w.Confidence = clampConfidence(w.Confidence)

	return w
}

// HeadNotFound returns a copy of the worker marked as having no head with its
// confidence reduced.  A worker that has already been resolved is returned
// unchanged.
func (w Worker) HeadNotFound(p Params) Worker {

	if w.Outcome != OutcomePending {
		return w
	}

	w.Head = nil
	w.Outcome = OutcomeNoHead
	w.Confidence = clampConfidence(w.Confidence * (1 - p.ConfidenceFactor))

	return w
}

// clampConfidence restricts the confidence to the range 0.0 to 1.0
func clampConfidence(c float64) float64 {
	return math.Max(0, math.Min(1, c))
}
