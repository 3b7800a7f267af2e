package laplacian

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

const (
	ppmMagic = "P6"
	maxColor = 255
)

// headerComment is written as the comment line of every encoded header.
const headerComment = "filtered by github.com/vearutop/laplacian"

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// nextToken reads the next whitespace-delimited header token. A token
// beginning with '#' starts a comment: the rest of the line is discarded and
// tokenizing resumes. The single whitespace byte terminating the token is
// consumed, so binary payload may follow immediately after the last token.
func nextToken(r *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		if isSpace(c) {
			if len(tok) > 0 {
				return string(tok), nil
			}
			continue
		}
		if c == '#' && len(tok) == 0 {
			if err := skipLine(r); err != nil {
				return "", err
			}
			continue
		}
		tok = append(tok, c)
	}
}

func skipLine(r *bufio.Reader) error {
	for {
		c, err := r.ReadByte()
		if err != nil {
			return err
		}
		if c == '\n' {
			return nil
		}
	}
}

func headerInt(r *bufio.Reader, field string) (int, error) {
	tok, err := nextToken(r)
	if err == io.EOF {
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidHeader, field)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: no digits found for %s", ErrInvalidHeader, field)
	}
	return v, nil
}

// Decode parses a P6 PPM stream and returns the fully materialized image.
//
// The header consists of the magic tag, width, height and the max channel
// value (which must be 255), separated by whitespace, with '#' comment lines
// permitted anywhere inside the header. Exactly one whitespace byte separates
// the max value from the binary payload of Width*Height 3-byte RGB records.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := nextToken(br)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if magic != ppmMagic {
		return nil, ErrInvalidFormat
	}
	width, err := headerInt(br, "width")
	if err != nil {
		return nil, err
	}
	height, err := headerInt(br, "height")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimensions %dx%d", ErrInvalidHeader, width, height)
	}
	// Reject dimensions whose payload size would overflow int.
	if width > math.MaxInt/3/height {
		return nil, fmt.Errorf("%w: image dimensions %dx%d too large", ErrInvalidHeader, width, height)
	}
	depth, err := headerInt(br, "max rgb color value")
	if err != nil {
		return nil, err
	}
	if depth != maxColor {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedColorDepth, depth)
	}

	raw := make([]byte, width*height*3)
	if n, err := io.ReadFull(br, raw); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: expected %d pixels, read %d", ErrTruncatedData, width*height, n/3)
		}
		return nil, err
	}

	img := NewImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = Pixel{R: raw[3*i], G: raw[3*i+1], B: raw[3*i+2]}
	}
	return img, nil
}

// DecodeFile opens and decodes a P6 PPM file.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Encode writes img as a P6 PPM stream: a textual header including one
// comment line, then the raw pixel payload in row-major order.
//
// A short payload write is reported as ErrPartialWrite. The output is left
// as-is; callers treat this as a logged, non-fatal condition.
func Encode(w io.Writer, img *Image) error {
	if _, err := fmt.Fprintf(w, "%s\n# %s\n%d %d\n%d\n", ppmMagic, headerComment, img.Width, img.Height, maxColor); err != nil {
		return err
	}

	raw := make([]byte, len(img.Pix)*3)
	for i, p := range img.Pix {
		raw[3*i] = p.R
		raw[3*i+1] = p.G
		raw[3*i+2] = p.B
	}
	n, err := w.Write(raw)
	if err != nil || n < len(raw) {
		return fmt.Errorf("%w: wrote %d of %d pixels", ErrPartialWrite, n/3, len(img.Pix))
	}
	return nil
}

// EncodeFile creates (or truncates) path and encodes img into it.
func EncodeFile(path string, img *Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	err = Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
