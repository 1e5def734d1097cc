// Package imaging turns uploaded photos into a fixed-width raw RGBA buffer.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// TargetWidth is the width every image is resized to before scoring.
	TargetWidth = 256
	// MaxInputPixels caps width*height of an upload (0x3FFF squared).
	MaxInputPixels = 268402689
)

var (
	ErrEmptyImage = errors.New("image has no pixels")
	ErrTooLarge   = errors.New("image exceeds pixel limit")
)

// Normalized is a resized image with a forced alpha channel.
type Normalized struct {
	img *image.NRGBA
}

// Normalize decodes raw and resizes it to TargetWidth, keeping the aspect ratio.
// Oversized inputs are rejected from the header alone, before any pixel is decoded.
func Normalize(raw []byte) (*Normalized, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxInputPixels {
		return nil, fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, ErrTooLarge)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	w, h := TargetSize(b.Dx(), b.Dy())
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return &Normalized{img: dst}, nil
}

// TargetSize returns the output dimensions for a w x h source.
func TargetSize(w, h int) (int, int) {
	outH := int(math.Round(float64(h) * TargetWidth / float64(w)))
	if outH < 1 {
		outH = 1
	}
	return TargetWidth, outH
}

// Raw returns the tightly packed RGBA bytes, four per pixel.
func (n *Normalized) Raw() []byte {
	b := n.img.Bounds()
	rowLen := b.Dx() * 4
	if n.img.Stride == rowLen {
		return n.img.Pix[:rowLen*b.Dy()]
	}
	out := make([]byte, 0, rowLen*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		off := y * n.img.Stride
		out = append(out, n.img.Pix[off:off+rowLen]...)
	}
	return out
}

func (n *Normalized) Bounds() image.Rectangle {
	return n.img.Bounds()
}

// PNG encodes the normalized image for archiving.
func (n *Normalized) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, n.img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
