package laplacian

import (
	"fmt"
	"sync"
	"time"
)

// DefaultWorkers is the default number of row-band workers per image.
const DefaultWorkers = 4

// workBand describes a contiguous run of image rows owned by one worker.
type workBand struct {
	start int
	rows  int
}

// splitRows divides height rows into at most workers contiguous bands. The
// effective worker count is capped at height so no band is empty, and is
// never less than one. All bands but the last hold height/workers rows; the
// last absorbs the remainder, so the bands cover [0, height) exactly.
func splitRows(height, workers int) []workBand {
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}
	bands := make([]workBand, workers)
	size := height / workers
	for i := 0; i < workers-1; i++ {
		bands[i] = workBand{start: i * size, rows: size}
	}
	last := (workers - 1) * size
	bands[workers-1] = workBand{start: last, rows: height - last}
	return bands
}

// ApplyLaplacian filters src with the Laplacian kernel, dispatching one
// goroutine per row band. It returns the filtered image and the wall-clock
// seconds spanning dispatch to completion of all bands.
//
// The output is fully determined by the input regardless of band scheduling
// order: bands write disjoint regions and read only immutable data.
func ApplyLaplacian(src *Image, workers int) (*Image, float64, error) {
	if !src.valid() {
		return nil, 0, fmt.Errorf("%w: inconsistent image buffer", ErrScheduling)
	}

	dst := NewImage(src.Width, src.Height)

	start := time.Now()
	var wg sync.WaitGroup
	for _, band := range splitRows(src.Height, workers) {
		wg.Add(1)
		go func(b workBand) {
			defer wg.Done()
			filterBand(src, dst, b)
		}(band)
	}
	wg.Wait()

	return dst, time.Since(start).Seconds(), nil
}
