package laplacian

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// Options control file processing.
type Options struct {
	// Workers is the row-band worker count per image.
	Workers int
	// Scale, when > 1, downscales the decoded image by that integer factor
	// before filtering.
	Scale int
	// Log receives per-file diagnostics and summary lines. Defaults to
	// os.Stderr.
	Log io.Writer
}

func defaultOptions() Options {
	return Options{
		Workers: DefaultWorkers,
		Log:     os.Stderr,
	}
}

// Job pairs an input image path with its derived output path.
type Job struct {
	In  string
	Out string
}

// lockedWriter serializes writes from concurrent file tasks to the shared
// log writer.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// elapsedTotal accumulates filtering seconds across concurrent file tasks.
// All mutation goes through add; total is read once after the tasks join.
type elapsedTotal struct {
	mu  sync.Mutex
	sec float64
}

func (e *elapsedTotal) add(sec float64) {
	e.mu.Lock()
	e.sec += sec
	e.mu.Unlock()
}

func (e *elapsedTotal) total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sec
}

// ProcessFile decodes in, filters it and encodes the result to out. It
// returns the wall-clock seconds spent in the filtering pass.
//
// A decode failure produces no output file and contributes zero seconds. A
// short payload write on encode is logged and does not fail the file;
// elapsed time is reported either way.
func ProcessFile(in, out string, opts ...func(o *Options)) (float64, error) {
	opt := defaultOptions()
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	return processFile(in, out, &opt)
}

func processFile(in, out string, opt *Options) (float64, error) {
	img, err := DecodeFile(in)
	if err != nil {
		return 0, err
	}
	if opt.Scale > 1 {
		img = downscale(img, opt.Scale)
	}

	result, elapsed, err := ApplyLaplacian(img, opt.Workers)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", in, err)
	}

	if err := EncodeFile(out, result); err != nil {
		if !errors.Is(err, ErrPartialWrite) {
			return elapsed, err
		}
		fmt.Fprintf(opt.Log, "error: %v\n", err)
	}
	return elapsed, nil
}

// ProcessFiles filters every job concurrently, one goroutine per input file.
// Failures are isolated: a broken input is logged and skipped without
// affecting the other files. It returns the summed filtering seconds across
// all files and the number of files that failed.
func ProcessFiles(jobs []Job, opts ...func(o *Options)) (float64, int) {
	opt := defaultOptions()
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	opt.Log = &lockedWriter{w: opt.Log}

	var (
		total  elapsedTotal
		failMu sync.Mutex
		failed int
		wg     sync.WaitGroup
	)
	for _, job := range jobs {
		wg.Add(1)
		go func(j Job) {
			defer wg.Done()
			elapsed, err := processFile(j.In, j.Out, &opt)
			total.add(elapsed)
			if err != nil {
				failMu.Lock()
				failed++
				failMu.Unlock()
				fmt.Fprintf(opt.Log, "error: %v\n", err)
				return
			}
			fmt.Fprintf(opt.Log, "Input image: %s, Output image: %s, Elapsed time: %f\n", j.In, j.Out, elapsed)
		}(job)
	}
	wg.Wait()

	return total.total(), failed
}
