package postprocess

import (
	"github.com/swdee/go-hardhat"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"sort"
)

// Deduplicate groups worker candidates whose boxes overlap into clusters and
// reduces each cluster to a single canonical worker.  Overlap is transitive, a
// chain of boxes each overlapping the next forms one cluster even when the
// ends of the chain do not overlap.  The canonical worker of a cluster is the
// member with the largest area, ties going to the higher confidence.
//
// Returned workers are sorted with Before and have no head evaluated.
func (f *WorkerFactory) Deduplicate(candidates []hardhat.Worker) []hardhat.Worker {

	sorted := sortedCopy(candidates)
	members := f.clusters(sorted)

	processed := make([]bool, len(sorted))
	workers := make([]hardhat.Worker, 0, len(sorted))

	// seed clusters in ranking order so the result does not depend on the
	// order components are reported in
	for i := range sorted {

		if processed[i] {
			continue
		}

		cluster := members[i]
		canonical := sorted[cluster[0]]

		for _, m := range cluster[1:] {
			canonical = largerWorker(canonical, sorted[m])
		}

		for _, m := range cluster {
			processed[m] = true
		}

		if len(cluster) > 1 {
			f.log.Debug("merged worker cluster",
				zap.Int("size", len(cluster)),
				zap.Int64("worker_id", canonical.ID),
				zap.Stringer("box", canonical.Box),
			)
		}

		workers = append(workers, canonical)
	}

	SortWorkers(workers)

	return workers
}

// clusters returns for each worker the indices of all workers in its
// connected component, in ascending index order.  Workers are the nodes of an
// undirected graph with an edge between every pair whose boxes overlap by at
// least the OverlapThreshold
func (f *WorkerFactory) clusters(workers []hardhat.Worker) [][]int {

	g := simple.NewUndirectedGraph()

	for i := range workers {
		g.AddNode(simple.Node(i))
	}

	for i := 0; i < len(workers); i++ {
		for j := i + 1; j < len(workers); j++ {
			if workers[i].Box.OverlapRatio(workers[j].Box) >= f.Params.OverlapThreshold {
				g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}

	members := make([][]int, len(workers))

	for _, component := range topo.ConnectedComponents(g) {

		ids := make([]int, 0, len(component))

		for _, n := range component {
			ids = append(ids, int(n.ID()))
		}

		sort.Ints(ids)

		for _, id := range ids {
			members[id] = ids
		}
	}

	return members
}

// largerWorker returns the worker with the larger box.  On equal area the
// worker with the higher confidence is kept, w1 winning an exact tie
func largerWorker(w1, w2 hardhat.Worker) hardhat.Worker {

	a1, a2 := w1.Box.Area(), w2.Box.Area()

	if a1 > a2 {
		return w1
	}

	if a1 == a2 && w1.Confidence >= w2.Confidence {
		return w1
	}

	return w2
}
