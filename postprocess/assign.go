package postprocess

import (
	"github.com/swdee/go-hardhat"
	"go.uber.org/zap"
	"sort"
)

// headPool holds the distinct head candidates of a frame.  Heads are
// referenced by their index and consumed at most once
type headPool struct {
	heads    []hardhat.Head
	consumed []bool
}

// headFit is an unconsumed head that fits a worker
type headFit struct {
	index int
	ratio float64
}

// newHeadPool returns a pool with none of the heads consumed.  Heads equal by
// value are pooled once, and the pool is ordered with headBefore so indices do
// not depend on the input order
func newHeadPool(heads []hardhat.Head) *headPool {

	seen := make(map[hardhat.Head]bool, len(heads))
	unique := make([]hardhat.Head, 0, len(heads))

	for _, h := range heads {

		if seen[h] {
			continue
		}

		seen[h] = true
		unique = append(unique, h)
	}

	sort.Slice(unique, func(i, j int) bool {
		return headBefore(unique[i], unique[j])
	})

	return &headPool{
		heads:    unique,
		consumed: make([]bool, len(unique)),
	}
}

// headBefore is a total order over distinct heads: confidence descending,
// heads with a hard hat first, then corner coordinates ascending
func headBefore(a, b hardhat.Head) bool {

	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}

	if a.HasHelmet != b.HasHelmet {
		return a.HasHelmet
	}

	if a.Box.BottomLeft.X != b.Box.BottomLeft.X {
		return a.Box.BottomLeft.X < b.Box.BottomLeft.X
	}

	if a.Box.BottomLeft.Y != b.Box.BottomLeft.Y {
		return a.Box.BottomLeft.Y < b.Box.BottomLeft.Y
	}

	if a.Box.TopRight.X != b.Box.TopRight.X {
		return a.Box.TopRight.X < b.Box.TopRight.X
	}

	return a.Box.TopRight.Y < b.Box.TopRight.Y
}

// fits returns the unconsumed heads whose overlap ratio with the worker box
// meets the threshold.  Fits are ordered by overlap ratio descending, then
// by headBefore
func (hp *headPool) fits(w hardhat.Worker, threshold float64) []headFit {

	var fits []headFit

	for i, h := range hp.heads {

		if hp.consumed[i] {
			continue
		}

		if ratio := h.Box.OverlapRatio(w.Box); ratio >= threshold {
			fits = append(fits, headFit{index: i, ratio: ratio})
		}
	}

	sort.SliceStable(fits, func(i, j int) bool {

		if fits[i].ratio != fits[j].ratio {
			return fits[i].ratio > fits[j].ratio
		}

		return fits[i].index < fits[j].index
	})

	return fits
}

// take marks the head at index i as consumed and returns it
func (hp *headPool) take(i int) hardhat.Head {
	hp.consumed[i] = true
	return hp.heads[i]
}

// remaining returns the number of unconsumed heads
func (hp *headPool) remaining() int {

	n := 0

	for _, c := range hp.consumed {
		if !c {
			n++
		}
	}

	return n
}

// AssignHeads pairs each worker with at most one head and finalizes the worker
// confidence.  Workers are visited in Before order in two passes over a shared
// pool of heads:
//
//   - the first pass resolves every worker with exactly one fitting head,
//     consuming that head, and every worker with no fitting head.  Workers with
//     several fitting heads are deferred.
//   - the second pass gives each deferred worker the best of its fitting heads
//     still left in the pool, or no head when all were consumed.
//
// The returned workers are in Before order.
func (f *WorkerFactory) AssignHeads(workers []hardhat.Worker, heads []hardhat.Head) []hardhat.Worker {

	sorted := sortedCopy(workers)
	pool := newHeadPool(heads)
	threshold := f.Params.OverlapThreshold

	resolved := make([]hardhat.Worker, len(sorted))
	var deferred []int

	for i, w := range sorted {

		fits := pool.fits(w, threshold)

		switch len(fits) {
		case 0:
			resolved[i] = w.HeadNotFound(f.Params)

		case 1:
			resolved[i] = w.HeadFound(pool.take(fits[0].index), f.Params)

		default:
			deferred = append(deferred, i)
		}
	}

	for _, i := range deferred {

		w := sorted[i]
		fits := pool.fits(w, threshold)

		if len(fits) == 0 {
			resolved[i] = w.HeadNotFound(f.Params)
			continue
		}

		resolved[i] = w.HeadFound(pool.take(fits[0].index), f.Params)
	}

	f.log.Debug("assigned heads",
		zap.Int("workers", len(sorted)),
		zap.Int("heads", len(pool.heads)),
		zap.Int("deferred", len(deferred)),
		zap.Int("unassigned_heads", pool.remaining()),
	)

	return resolved
}
