package laplacian

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// toRGBA copies img into a stdlib RGBA image so it can be resampled.
func toRGBA(img *Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.Pix[y*img.Width+x]
			off := y*out.Stride + x*4
			out.Pix[off] = p.R
			out.Pix[off+1] = p.G
			out.Pix[off+2] = p.B
			out.Pix[off+3] = 0xFF
		}
	}
	return out
}

func fromRGBA(src *image.RGBA) *Image {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := src.PixOffset(src.Rect.Min.X+x, src.Rect.Min.Y+y)
			out.Pix[y*w+x] = Pixel{R: src.Pix[off], G: src.Pix[off+1], B: src.Pix[off+2]}
		}
	}
	return out
}

// downscale shrinks img by an integer factor, clamping the result to at
// least 1x1. Factors <= 1 return img unchanged.
func downscale(img *Image, factor int) *Image {
	if factor <= 1 {
		return img
	}
	w := img.Width / factor
	if w < 1 {
		w = 1
	}
	h := img.Height / factor
	if h < 1 {
		h = 1
	}

	small := resize.Resize(uint(w), uint(h), toRGBA(img), resize.Lanczos3)
	rgba, ok := small.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(small.Bounds())
		draw.Draw(rgba, rgba.Bounds(), small, small.Bounds().Min, draw.Src)
	}
	return fromRGBA(rgba)
}
