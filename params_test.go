package hardhat

import (
	"errors"
	"testing"
)

func TestParamsValidate(t *testing.T) {

	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("Default params failed validation: %v", err)
	}

	tests := []struct {
		name   string
		modify func(p *Params)
	}{
		{"acceptance above one", func(p *Params) { p.AcceptanceThreshold = 1.2 }},
		{"negative acceptance", func(p *Params) { p.AcceptanceThreshold = -0.1 }},
		{"zero overlap", func(p *Params) { p.OverlapThreshold = 0 }},
		{"factor of one", func(p *Params) { p.ConfidenceFactor = 1 }},
		{"negative head ratio", func(p *Params) { p.MinHeadAreaRatio = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			p := DefaultParams()
			tc.modify(&p)

			if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Expected ErrInvalidParams, got %v", err)
			}
		})
	}
}
