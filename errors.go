package laplacian

import "errors"

var (
	ErrInvalidFormat         = errors.New("laplacian: magic number does not match P6")
	ErrInvalidHeader         = errors.New("laplacian: invalid header")
	ErrUnsupportedColorDepth = errors.New("laplacian: maximum rgb color value must be 255")
	ErrTruncatedData         = errors.New("laplacian: truncated pixel data")
	ErrPartialWrite          = errors.New("laplacian: short pixel data write")
	ErrScheduling            = errors.New("laplacian: cannot schedule filter workers")
)
