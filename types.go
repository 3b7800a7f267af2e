package laplacian

// Pixel is one 8-bit RGB sample. The P6 format carries no alpha.
type Pixel struct {
	R, G, B uint8
}

// Image stores an 8-bit RGB image as a flat row-major buffer, top row first.
// Pix holds exactly Width*Height pixels; the pixel at (x, y) lives at index
// y*Width+x.
type Image struct {
	Width  int
	Height int
	Pix    []Pixel
}

// NewImage allocates a zeroed image of the given dimensions.
func NewImage(w, h int) *Image {
	return &Image{
		Width:  w,
		Height: h,
		Pix:    make([]Pixel, w*h),
	}
}

// At returns the pixel at (x, y).
func (m *Image) At(x, y int) Pixel {
	return m.Pix[y*m.Width+x]
}

// Set stores the pixel at (x, y).
func (m *Image) Set(x, y int, p Pixel) {
	m.Pix[y*m.Width+x] = p
}

// valid reports whether the buffer is consistent with the declared dimensions.
func (m *Image) valid() bool {
	return m != nil && m.Width > 0 && m.Height > 0 && len(m.Pix) == m.Width*m.Height
}
