package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTargetSize(t *testing.T) {
	cases := []struct {
		w, h       int
		wantHeight int
	}{
		{512, 256, 128},
		{256, 256, 256},
		{100, 50, 128},
		{300, 200, 171},
		{1000, 1, 1},
		{10, 1000, 25600},
	}
	for _, tc := range cases {
		w, h := TargetSize(tc.w, tc.h)
		assert.Equal(t, TargetWidth, w)
		assert.Equal(t, tc.wantHeight, h, "%dx%d", tc.w, tc.h)
	}
}

func TestNormalizePNG(t *testing.T) {
	n, err := Normalize(encodePNG(t, 512, 256))
	require.NoError(t, err)

	assert.Equal(t, 256, n.Bounds().Dx())
	assert.Equal(t, 128, n.Bounds().Dy())
	assert.Len(t, n.Raw(), 256*128*4)
}

func TestNormalizeUpscalesSmallImages(t *testing.T) {
	n, err := Normalize(encodePNG(t, 4, 3))
	require.NoError(t, err)
	assert.Len(t, n.Raw(), 256*192*4)
}

func TestNormalizeForcesAlpha(t *testing.T) {
	var buf bytes.Buffer
	src := image.NewGray(image.Rect(0, 0, 64, 32))
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	n, err := Normalize(buf.Bytes())
	require.NoError(t, err)
	raw := n.Raw()
	require.Len(t, raw, 256*128*4)
	assert.Equal(t, uint8(255), raw[3], "opaque alpha")
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	assert.Error(t, err)
}

func TestPNGRoundTripsDimensions(t *testing.T) {
	n, err := Normalize(encodePNG(t, 300, 200))
	require.NoError(t, err)

	data, err := n.PNG()
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 171, cfg.Height)
}

// pngHeader returns a PNG signature and IHDR chunk for an 8-bit grayscale
// image of the given size. No pixel data follows.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:4], w)
	binary.BigEndian.PutUint32(data[4:8], h)
	data[8] = 8 // bit depth; color type, compression, filter, interlace stay 0

	chunk := append([]byte("IHDR"), data...)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(data)))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestNormalizeRejectsOversizedCanvas(t *testing.T) {
	_, err := Normalize(pngHeader(20000, 20000))
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = Normalize(pngHeader(MaxInputPixels, 2))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestNormalizeHeaderAtLimitIsNotRejectedAsTooLarge(t *testing.T) {
	// 16383x16383 is exactly the limit; with no pixel data the full decode fails instead.
	_, err := Normalize(pngHeader(16383, 16383))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTooLarge)
}
