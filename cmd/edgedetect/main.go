package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vearutop/laplacian"
)

func main() {
	workers := flag.Int("workers", laplacian.DefaultWorkers, "row-band workers per image")
	scale := flag.Int("scale", 1, "integer downscale factor applied before filtering")
	flag.Usage = usage
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		usage()
		os.Exit(2)
	}

	fmt.Printf("LAPLACIAN THREADS: %d\n", *workers)

	jobs := make([]laplacian.Job, len(files))
	for i, in := range files {
		jobs[i] = laplacian.Job{In: in, Out: fmt.Sprintf("laplacian%d.ppm", i+1)}
	}

	total, _ := laplacian.ProcessFiles(jobs, func(o *laplacian.Options) {
		o.Workers = *workers
		o.Scale = *scale
	})

	fmt.Printf("Total elapsed time: %.4f\n", total)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: edgedetect [-workers N] [-scale S] file1.ppm [file2.ppm ...]")
	flag.PrintDefaults()
}
