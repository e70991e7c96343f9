package hardhat

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned when Params hold values outside their range
var ErrInvalidParams = errors.New("invalid params")

// Params defines the thresholds and factors used when resolving workers
type Params struct {
	// AcceptanceThreshold is the minimum confidence a Prediction needs to be
	// considered, and the minimum confidence a resolved Worker needs to be
	// returned
	AcceptanceThreshold float64 `mapstructure:"acceptance_threshold"`
	// OverlapThreshold is the minimum OverlapRatio for two worker boxes to be
	// treated as the same person, and for a head box to fit a worker
	OverlapThreshold float64 `mapstructure:"overlap_threshold"`
	// ConfidenceFactor is the relative amount a worker confidence is boosted
	// when a hard hat is found, or reduced when it is not
	ConfidenceFactor float64 `mapstructure:"confidence_factor"`
	// MinHeadAreaRatio is the smallest head area to worker area ratio that
	// is physically plausible.  Matched heads below it are treated as noise
	MinHeadAreaRatio float64 `mapstructure:"min_head_area_ratio"`
}

// DefaultParams returns an instance of Params configured with default values
// for the hard hat detection model featuring:
// - Acceptance Threshold: 0.9
// - Overlap Threshold: 0.8
// - Confidence Factor: 0.09 (+/- 9%)
// - Min Head Area Ratio: 0.05
func DefaultParams() Params {
	return Params{
		AcceptanceThreshold: 0.9,
		OverlapThreshold:    0.8,
		ConfidenceFactor:    0.09,
		MinHeadAreaRatio:    0.05,
	}
}

// Validate checks all values are within their allowed ranges
func (p Params) Validate() error {

	if p.AcceptanceThreshold < 0 || p.AcceptanceThreshold > 1 {
		return fmt.Errorf("%w: acceptance threshold %g not in [0,1]",
			ErrInvalidParams, p.AcceptanceThreshold)
	}

	if p.OverlapThreshold <= 0 || p.OverlapThreshold > 1 {
		return fmt.Errorf("%w: overlap threshold %g not in (0,1]",
			ErrInvalidParams, p.OverlapThreshold)
	}

	if p.ConfidenceFactor < 0 || p.ConfidenceFactor >= 1 {
		return fmt.Errorf("%w: confidence factor %g not in [0,1)",
			ErrInvalidParams, p.ConfidenceFactor)
	}

	if p.MinHeadAreaRatio < 0 || p.MinHeadAreaRatio >= 1 {
		return fmt.Errorf("%w: min head area ratio %g not in [0,1)",
			ErrInvalidParams, p.MinHeadAreaRatio)
	}

	return nil
}
