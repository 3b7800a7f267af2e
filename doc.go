// Package laplacian applies a fixed 3x3 Laplacian edge detection filter to
// raw binary (P6) PPM images.
//
// Multiple image files are processed concurrently, and within each image the
// rows are split into contiguous bands filtered by parallel workers. Neighbor
// lookups wrap around both image edges, so border pixels need no special
// casing or padding.
//
// Filtering a single file:
//
//	elapsed, err := laplacian.ProcessFile("in.ppm", "out.ppm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Working with decoded images directly:
//
//	img, err := laplacian.DecodeFile("in.ppm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, elapsed, err := laplacian.ApplyLaplacian(img, 4)
package laplacian
