package laplacian

// laplacianKernel is the fixed 3x3 edge detection kernel. It is shared
// read-only by all filter workers and never mutated.
var laplacianKernel = [3][3]int{
	{-1, -1, -1},
	{-1, 8, -1},
	{-1, -1, -1},
}

// filterBand convolves the rows of src described by band into dst. Neighbor
// lookups wrap toroidally across both image edges. Only the band's rows of
// dst are written, so disjoint bands can run concurrently without locking.
//
// Per-channel sums stay within [-2040, 2040] before clamping, well inside
// int range.
func filterBand(src, dst *Image, band workBand) {
	w, h := src.Width, src.Height
	for y := band.start; y < band.start+band.rows; y++ {
		for x := 0; x < w; x++ {
			var r, g, b int
			for fy := 0; fy < 3; fy++ {
				sy := (y - 1 + fy + h) % h
				for fx := 0; fx < 3; fx++ {
					sx := (x - 1 + fx + w) % w
					p := src.Pix[sy*w+sx]
					k := laplacianKernel[fy][fx]
					r += int(p.R) * k
					g += int(p.G) * k
					b += int(p.B) * k
				}
			}
			dst.Pix[y*w+x] = Pixel{R: clampByte(r), G: clampByte(g), B: clampByte(b)}
		}
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > maxColor {
		return maxColor
	}
	return uint8(v)
}
