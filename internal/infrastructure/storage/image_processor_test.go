package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, img, nil))
	return buf.Bytes()
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestNormalize_ScalesDownOversizedImage(t *testing.T) {
	p := NewImageProcessor(1200, 800, 80)

	out, err := p.Normalize(encodeJPEG(t, 2400, 1600))

	require.NoError(t, err)
	assert.LessOrEqual(t, out.Width, 1200)
	assert.LessOrEqual(t, out.Height, 800)
	assert.Equal(t, "image/jpeg", out.ContentType)
}

func TestNormalize_PreservesAspectRatio(t *testing.T) {
	p := NewImageProcessor(1200, 800, 80)

	// 3000x1000 binds on width: 1200 wide means 400 tall.
	out, err := p.Normalize(encodeJPEG(t, 3000, 1000))

	require.NoError(t, err)
	assert.Equal(t, 1200, out.Width)
	assert.Equal(t, 400, out.Height)
}

func TestNormalize_NeverUpscales(t *testing.T) {
	p := NewImageProcessor(1200, 800, 80)

	out, err := p.Normalize(encodeJPEG(t, 600, 400))

	require.NoError(t, err)
	assert.Equal(t, 600, out.Width)
	assert.Equal(t, 400, out.Height)
}

func TestNormalize_PNGStaysPNG(t *testing.T) {
	p := NewImageProcessor(1200, 800, 80)

	out, err := p.Normalize(encodePNG(t, 100, 100))

	require.NoError(t, err)
	assert.Equal(t, "image/png", out.ContentType)
	assert.Equal(t, "png", out.Ext)
}

func TestNormalize_RejectsGarbage(t *testing.T) {
	p := NewImageProcessor(1200, 800, 80)

	_, err := p.Normalize([]byte("definitely not an image"))

	assert.Error(t, err)
}

func TestVariants_BuildsBothSizes(t *testing.T) {
	p := NewImageProcessor(1200, 800, 80)

	variants, err := p.Variants(encodeJPEG(t, 1200, 800))

	require.NoError(t, err)
	require.Contains(t, variants, "medium")
	require.Contains(t, variants, "thumbnail")

	medium, _, err := image.Decode(bytes.NewReader(variants["medium"]))
	require.NoError(t, err)
	assert.LessOrEqual(t, medium.Bounds().Dx(), 600)

	thumb, _, err := image.Decode(bytes.NewReader(variants["thumbnail"]))
	require.NoError(t, err)
	assert.LessOrEqual(t, thumb.Bounds().Dx(), 300)
}
