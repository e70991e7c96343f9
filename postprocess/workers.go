package postprocess

import (
	"github.com/swdee/go-hardhat"
	"go.uber.org/zap"
)

// WorkerFactory resolves the predictions of a single frame into workers.  It
// holds no per frame state and is safe for concurrent use
type WorkerFactory struct {
	// Params are the thresholds and factors used for resolution
	Params hardhat.Params
	log    *zap.Logger
}

// Option configures a WorkerFactory
type Option func(*WorkerFactory)

// WithLogger sets the logger used for debug output
func WithLogger(log *zap.Logger) Option {
	return func(f *WorkerFactory) {
		if log != nil {
			f.log = log
		}
	}
}

// NewWorkerFactory returns an instance of the worker resolver
func NewWorkerFactory(p hardhat.Params, opts ...Option) *WorkerFactory {

	f := &WorkerFactory{
		Params: p,
		log:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Workers takes the raw predictions of a frame and returns the resolved
// workers.  Confident worker predictions are deduplicated, paired with the
// confident head predictions and any worker whose adjusted confidence falls
// below the acceptance threshold is dropped.  The result is sorted with Before
// and is never nil.
func (f *WorkerFactory) Workers(predictions []hardhat.Prediction) []hardhat.Worker {

	threshold := f.Params.AcceptanceThreshold

	var candidates []hardhat.Worker
	var heads []hardhat.Head

	for _, p := range predictions {
		switch {
		case p.IsWorker(threshold):
			candidates = append(candidates, hardhat.NewWorker(p))

		case p.IsHead(threshold):
			heads = append(heads, hardhat.NewHead(p))
		}
	}

	canonical := f.Deduplicate(candidates)
	assigned := f.AssignHeads(canonical, heads)

	workers := make([]hardhat.Worker, 0, len(assigned))

	for _, w := range assigned {
		if w.Confident(threshold) {
			workers = append(workers, w)
		}
	}

	SortWorkers(workers)

	f.log.Debug("resolved workers",
		zap.Int("predictions", len(predictions)),
		zap.Int("candidates", len(candidates)),
		zap.Int("clusters", len(canonical)),
		zap.Int("workers", len(workers)),
	)

	return workers
}
