package localsearch

import (
	"math"

	"lintang/routesearch/pkg/concurrent"
	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/graph"
)

type travelTimeRow struct {
	index int
	times []float64
}

// networkTravelTimes satu uniform cost sweep per candidate, dijalankan paralel di worker pool.
func networkTravelTimes(g *graph.RouteGraph, candidates []Candidate, costFn graph.CostFunction, workers int) [][]float64 {
	wp := concurrent.NewWorkerPool[concurrent.TravelTimeJob, travelTimeRow](workers, len(candidates))
	for i, c := range candidates {
		wp.AddJob(concurrent.TravelTimeJob{Index: i, Source: c.ID})
	}
	wp.Close()

	wp.Start(func(job concurrent.TravelTimeJob) travelTimeRow {
		dist := sweep(g, job.Source, costFn)
		times := make([]float64, len(candidates))
		for j, c := range candidates {
			if d, ok := dist[c.ID]; ok {
				times[j] = d
			} else {
				times[j] = math.Inf(1)
			}
		}
		return travelTimeRow{index: job.Index, times: times}
	})
	wp.Wait()

	travel := make([][]float64, len(candidates))
	for row := range wp.CollectResults() {
		travel[row.index] = row.times
	}
	return travel
}

// sweep one-to-all shortest path cost dari source.
func sweep(g *graph.RouteGraph, source int64, costFn graph.CostFunction) map[int64]float64 {
	dist := map[int64]float64{source: 0}
	settled := make(map[int64]bool)
	pq := datastructure.NewMinHeap[int64]()
	pq.Insert(datastructure.PriorityQueueNode[int64]{Rank: 0, Item: source})

	for pq.Size() > 0 {
		smallest, _ := pq.ExtractMin()
		u := smallest.Item
		settled[u] = true

		for _, seg := range g.OutSegments(u) {
			v := seg.Destination
			if settled[v] {
				continue
			}
			newDist := dist[u] + costFn(seg)
			if d, ok := dist[v]; !ok || newDist < d {
				dist[v] = newDist
				pq.InsertOrDecrease(datastructure.PriorityQueueNode[int64]{Rank: newDist, Item: v})
			}
		}
	}
	return dist
}
