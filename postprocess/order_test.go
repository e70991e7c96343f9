package postprocess

import (
	"github.com/swdee/go-hardhat"
	"testing"
)

func TestBefore(t *testing.T) {

	tests := []struct {
		name string
		a, b hardhat.Worker
		want bool
	}{
		{
			name: "larger area first",
			a:    hardhat.Worker{Box: hardhat.NewBox(0, 0, 10, 10), Confidence: 0.5},
			b:    hardhat.Worker{Box: hardhat.NewBox(0, 0, 5, 5), Confidence: 0.99},
			want: true,
		},
		{
			name: "higher confidence on equal area",
			a:    hardhat.Worker{Box: hardhat.NewBox(0, 0, 10, 10), Confidence: 0.9},
			b:    hardhat.Worker{Box: hardhat.NewBox(0, 0, 10, 10), Confidence: 0.95},
			want: false,
		},
		{
			name: "right edge breaks tie",
			a:    hardhat.Worker{Box: hardhat.NewBox(5, 0, 15, 10), Confidence: 0.9},
			b:    hardhat.Worker{Box: hardhat.NewBox(0, 0, 10, 10), Confidence: 0.9},
			want: true,
		},
		{
			name: "identical is not before",
			a:    hardhat.Worker{Box: hardhat.NewBox(0, 0, 10, 10), Confidence: 0.9},
			b:    hardhat.Worker{Box: hardhat.NewBox(0, 0, 10, 10), Confidence: 0.9},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Before(tc.a, tc.b); got != tc.want {
				t.Errorf("Before = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSortWorkers(t *testing.T) {

	workers := []hardhat.Worker{
		{ID: 1, Box: hardhat.NewBox(0, 0, 5, 5), Confidence: 0.9},
		{ID: 2, Box: hardhat.NewBox(0, 0, 10, 10), Confidence: 0.9},
		{ID: 3, Box: hardhat.NewBox(3, 0, 13, 10), Confidence: 0.9},
		{ID: 4, Box: hardhat.NewBox(0, 0, 10, 10), Confidence: 0.99},
	}

	SortWorkers(workers)

	want := []int64{4, 3, 2, 1}

	for i, id := range want {
		if workers[i].ID != id {
			t.Errorf("Expected ID %d at position %d, got %d", id, i, workers[i].ID)
		}
	}
}
