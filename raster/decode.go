package raster

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

var (
	// ErrDecode reports malformed or truncated image data.
	ErrDecode = errors.New("malformed image data")
	// ErrUnsupported reports an image format or pixel layout that cannot be
	// converted to RGBA pixels.
	ErrUnsupported = errors.New("unsupported image format")
)

// Layout is the channel layout of a Raw pixel buffer.
type Layout uint8

const (
	Gray8 Layout = iota + 1
	GrayAlpha8
	RGB8
	RGBA8
	Gray16
	GrayAlpha16
	RGB16
	RGBA16
	RGB32F
	RGBA32F
)

var layoutNames = map[Layout]string{
	Gray8:       "gray8",
	GrayAlpha8:  "grayalpha8",
	RGB8:        "rgb8",
	RGBA8:       "rgba8",
	Gray16:      "gray16",
	GrayAlpha16: "grayalpha16",
	RGB16:       "rgb16",
	RGBA16:      "rgba16",
	RGB32F:      "rgb32f",
	RGBA32F:     "rgba32f",
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// channels is the number of samples per pixel, 0 for unknown layouts.
func (l Layout) channels() int {
	switch l {
	case Gray8, Gray16:
		return 1
	case GrayAlpha8, GrayAlpha16:
		return 2
	case RGB8, RGB16, RGB32F:
		return 3
	case RGBA8, RGBA16, RGBA32F:
		return 4
	}
	return 0
}

// sampleSize is the number of bytes per sample in Raw.Pix; float layouts
// store their samples in Raw.Float instead and report 0.
func (l Layout) sampleSize() int {
	switch l {
	case Gray8, GrayAlpha8, RGB8, RGBA8:
		return 1
	case Gray16, GrayAlpha16, RGB16, RGBA16:
		return 2
	}
	return 0
}

// Raw is a decoded pixel buffer in one of the supported layouts. Samples
// are stored row by row without padding. 16-bit samples are big-endian in
// Pix; float samples are in Float and nominally range over [0, 1].
type Raw struct {
	Width  int
	Height int
	Layout Layout
	Pix    []byte
	Float  []float32
}

// FromRaw converts a raw pixel buffer into an Image. 16-bit samples keep
// their high byte and float samples are scaled to [0, 255] and clamped.
func FromRaw(raw Raw) (*Image, error) {
	channels := raw.Layout.channels()
	if channels == 0 {
		return nil, fmt.Errorf("%w: pixel layout %v", ErrUnsupported, raw.Layout)
	}
	if raw.Width < 0 || raw.Height < 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrDecode, raw.Width, raw.Height)
	}

	n := raw.Width * raw.Height
	var sample func(i int) uint8
	switch size := raw.Layout.sampleSize(); size {
	case 0:
		if len(raw.Float) != n*channels {
			return nil, fmt.Errorf("%w: %v buffer has %d samples, want %d",
				ErrDecode, raw.Layout, len(raw.Float), n*channels)
		}
		sample = func(i int) uint8 { return floatToU8(raw.Float[i]) }
	default:
		if len(raw.Pix) != n*channels*size {
			return nil, fmt.Errorf("%w: %v buffer has %d bytes, want %d",
				ErrDecode, raw.Layout, len(raw.Pix), n*channels*size)
		}
		// the first byte of a big-endian sample is its high byte
		sample = func(i int) uint8 { return raw.Pix[i*size] }
	}

	pixels := make([]Pixel, n)
	for i := range pixels {
		s := i * channels
		switch channels {
		case 1:
			v := sample(s)
			pixels[i] = Pixel{R: v, G: v, B: v, A: 0xff}
		case 2:
			v := sample(s)
			pixels[i] = Pixel{R: v, G: v, B: v, A: sample(s + 1)}
		case 3:
			pixels[i] = Pixel{R: sample(s), G: sample(s + 1), B: sample(s + 2), A: 0xff}
		case 4:
			pixels[i] = Pixel{R: sample(s), G: sample(s + 1), B: sample(s + 2), A: sample(s + 3)}
		}
	}

	return &Image{
		pixels: pixels,
		width:  raw.Width,
		height: raw.Height,
	}, nil
}

func floatToU8(v float32) uint8 {
	v *= 255
	switch {
	case !(v > 0): // also NaN
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// FromImage converts a decoded Go image into an Image. Only the concrete
// image types produced by the standard and x/image decoders are accepted;
// anything else fails with ErrUnsupported.
func FromImage(img image.Image) (*Image, error) {
	raw, err := rawFromImage(img)
	if err != nil {
		return nil, err
	}
	return FromRaw(raw)
}

func rawFromImage(img image.Image) (Raw, error) {
	r := img.Bounds()
	switch img := img.(type) {
	case *image.Gray:
		return rawFromRows(img.Pix, img.PixOffset, r, Gray8), nil
	case *image.Gray16:
		return rawFromRows(img.Pix, img.PixOffset, r, Gray16), nil
	case *image.NRGBA:
		return rawFromRows(img.Pix, img.PixOffset, r, RGBA8), nil
	case *image.NRGBA64:
		return rawFromRows(img.Pix, img.PixOffset, r, RGBA16), nil
	case *image.RGBA:
		return rawFromFunc(r, RGBA8, func(x, y int, dst []byte) {
			c := color.NRGBAModel.Convert(img.RGBAAt(x, y)).(color.NRGBA)
			dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, c.A
		}), nil
	case *image.RGBA64:
		return rawFromFunc(r, RGBA16, func(x, y int, dst []byte) {
			c := color.NRGBA64Model.Convert(img.RGBA64At(x, y)).(color.NRGBA64)
			binary.BigEndian.PutUint16(dst[0:], c.R)
			binary.BigEndian.PutUint16(dst[2:], c.G)
			binary.BigEndian.PutUint16(dst[4:], c.B)
			binary.BigEndian.PutUint16(dst[6:], c.A)
		}), nil
	case *image.YCbCr:
		return rawFromFunc(r, RGB8, func(x, y int, dst []byte) {
			c := img.YCbCrAt(x, y)
			dst[0], dst[1], dst[2] = color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
		}), nil
	case *image.NYCbCrA:
		return rawFromFunc(r, RGBA8, func(x, y int, dst []byte) {
			c := img.NYCbCrAAt(x, y)
			dst[0], dst[1], dst[2] = color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
			dst[3] = c.A
		}), nil
	case *image.Paletted:
		return rawFromFunc(r, RGBA8, func(x, y int, dst []byte) {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, c.A
		}), nil
	case *image.CMYK:
		return rawFromFunc(r, RGB8, func(x, y int, dst []byte) {
			c := img.CMYKAt(x, y)
			dst[0], dst[1], dst[2] = color.CMYKToRGB(c.C, c.M, c.Y, c.K)
		}), nil
	}
	return Raw{}, fmt.Errorf("%w: pixel layout %T", ErrUnsupported, img)
}

// rawFromRows copies the rows of a packed Go image buffer, dropping any
// stride padding.
func rawFromRows(pix []byte, offset func(x, y int) int, r image.Rectangle, layout Layout) Raw {
	rowLen := r.Dx() * layout.channels() * layout.sampleSize()
	out := make([]byte, 0, rowLen*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		start := offset(r.Min.X, y)
		out = append(out, pix[start:start+rowLen]...)
	}
	return Raw{Width: r.Dx(), Height: r.Dy(), Layout: layout, Pix: out}
}

func rawFromFunc(r image.Rectangle, layout Layout, at func(x, y int, dst []byte)) Raw {
	size := layout.channels() * layout.sampleSize()
	out := make([]byte, r.Dx()*r.Dy()*size)
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			at(x, y, out[i:i+size])
			i += size
		}
	}
	return Raw{Width: r.Dx(), Height: r.Dy(), Layout: layout, Pix: out}
}

// sourceReader remembers the first error returned by the underlying reader
// so it can be told apart from errors raised by the decoder itself.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF && s.err == nil {
		s.err = err
	}
	return n, err
}

// Load decodes an image, detecting its format from the content. PNG, JPEG,
// GIF (first frame), BMP, TIFF and WebP are supported.
//
// A read error from r is returned unchanged. Unknown formats fail with
// ErrUnsupported and malformed data with ErrDecode.
func Load(r io.Reader) (*Image, error) {
	src := &sourceReader{r: r}
	img, format, err := image.Decode(src)
	if err != nil {
		switch {
		case src.err != nil:
			return nil, src.err
		case errors.Is(err, image.ErrFormat):
			return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}

	out, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("could not convert %s image: %w", format, err)
	}
	return out, nil
}

// Open loads an image file from disk.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image file", "name", path, "error", closeErr)
		}
	}()

	img, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("could not load image %q: %w", path, err)
	}
	return img, nil
}
