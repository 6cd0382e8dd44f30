package render

import (
	"runtime"
	"sync"

	"github.com/draftcad/draftcad/pkg/geom"
)

// TessellateAll tessellates independent arcs across worker goroutines, one
// arc per task. geom.Tessellate is a pure function, so workers share no
// mutable state and result i always corresponds to arcs[i] regardless of
// completion order. Small batches are done inline; the goroutine overhead
// only pays off when a whole scene of arcs is rebuilt at once.
func TessellateAll(arcs []geom.Arc, segments int) [][]geom.Point {
	results := make([][]geom.Point, len(arcs))

	workers := runtime.GOMAXPROCS(0)
	if len(arcs) < 2*workers {
		for i, arc := range arcs {
			results[i] = geom.Tessellate(arc, segments)
		}
		return results
	}

	var wg sync.WaitGroup
	tasks := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				results[i] = geom.Tessellate(arcs[i], segments)
			}
		}()
	}
	for i := range arcs {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	return results
}
