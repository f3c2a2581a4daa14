package concurrent

// SearchJob one strategy run of a comparison. RunID correlates log lines of a single run.
type SearchJob struct {
	Index    int
	Strategy string
	RunID    string
}

// TravelTimeJob one row of a network travel time matrix.
type TravelTimeJob struct {
	Index  int
	Source int64
}

type JobI interface {
	SearchJob | TravelTimeJob
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}

type JobFunc[T JobI, G any] func(job T) G
