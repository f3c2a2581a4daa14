package concurrent_test

import (
	"sort"
	"testing"

	"lintang/routesearch/pkg/concurrent"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	t.Run("success process every job", func(t *testing.T) {
		n := 50
		wp := concurrent.NewWorkerPool[concurrent.TravelTimeJob, int64](4, n)
		for i := 0; i < n; i++ {
			wp.AddJob(concurrent.TravelTimeJob{Index: i, Source: int64(i)})
		}
		wp.Close()
		wp.Start(func(job concurrent.TravelTimeJob) int64 {
			return job.Source * 2
		})
		wp.Wait()

		got := []int{}
		for r := range wp.CollectResults() {
			got = append(got, int(r))
		}
		sort.Ints(got)
		assert.Len(t, got, n)
		assert.Equal(t, 0, got[0])
		assert.Equal(t, 98, got[n-1])
	})

	t.Run("zero workers falls back to one", func(t *testing.T) {
		wp := concurrent.NewWorkerPool[concurrent.SearchJob, string](0, 1)
		wp.AddJob(concurrent.SearchJob{Strategy: "bfs"})
		wp.Close()
		wp.Start(func(job concurrent.SearchJob) string { return job.Strategy })
		wp.Wait()
		res := []string{}
		for r := range wp.CollectResults() {
			res = append(res, r)
		}
		assert.Equal(t, []string{"bfs"}, res)
	})
}
