package search

import (
	"lintang/routesearch/pkg/concurrent"
	"lintang/routesearch/pkg/engine/heuristics"

	"github.com/google/uuid"
)

type compareOutcome struct {
	index int
	res   *Result
}

// Compare runs several strategies over the same problem on a worker pool. every run gets
// its own heuristic closure from hf (nil means zero heuristic). results keep the order of names.
func Compare(p Problem, names []string, hf heuristics.Factory, workers int) ([]*Result, error) {
	for _, name := range names {
		if _, err := New(name, nil); err != nil {
			return nil, err
		}
	}
	if len(names) == 0 {
		return []*Result{}, nil
	}
	if workers > len(names) {
		workers = len(names)
	}

	wp := concurrent.NewWorkerPool[concurrent.SearchJob, compareOutcome](workers, len(names))
	for i, name := range names {
		wp.AddJob(concurrent.SearchJob{Index: i, Strategy: name, RunID: uuid.NewString()})
	}
	wp.Close()

	wp.Start(func(job concurrent.SearchJob) compareOutcome {
		var h heuristics.Heuristic
		if hf != nil {
			h = hf(p.Goal())
		}
		strategy, _ := New(job.Strategy, h)
		res := strategy.Search(p)
		res.RunID = job.RunID
		return compareOutcome{index: job.Index, res: res}
	})
	wp.Wait()

	results := make([]*Result, len(names))
	for out := range wp.CollectResults() {
		results[out.index] = out.res
	}
	return results, nil
}
