package postprocess

import (
	"github.com/swdee/go-hardhat"
	"sort"
)

// Before reports whether worker a ranks ahead of worker b.  Workers are ordered
// by area descending, then confidence descending, then the right edge x
// coordinate descending.  Remaining exact ties fall back to the other corner
// coordinates so the order does not depend on input order
func Before(a, b hardhat.Worker) bool {

	if areaA, areaB := a.Box.Area(), b.Box.Area(); areaA != areaB {
		return areaA > areaB
	}

	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}

	if a.Box.TopRight.X != b.Box.TopRight.X {
		return a.Box.TopRight.X > b.Box.TopRight.X
	}

	if a.Box.TopRight.Y != b.Box.TopRight.Y {
		return a.Box.TopRight.Y > b.Box.TopRight.Y
	}

	if a.Box.BottomLeft.X != b.Box.BottomLeft.X {
		return a.Box.BottomLeft.X > b.Box.BottomLeft.X
	}

	return a.Box.BottomLeft.Y > b.Box.BottomLeft.Y
}

// SortWorkers sorts the workers in place using the Before ordering
func SortWorkers(workers []hardhat.Worker) {
	sort.SliceStable(workers, func(i, j int) bool {
		return Before(workers[i], workers[j])
	})
}

// sortedCopy returns a sorted copy of the workers leaving the input untouched
func sortedCopy(workers []hardhat.Worker) []hardhat.Worker {

	sorted := make([]hardhat.Worker, len(workers))
	copy(sorted, workers)
	SortWorkers(sorted)

	return sorted
}
