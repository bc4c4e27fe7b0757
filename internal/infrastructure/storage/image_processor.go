package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	_ "image/gif"

	"github.com/disintegration/imaging"
)

// ImageProcessor normalizes uploads and builds display variants. The
// server-side pass is authoritative: client-supplied dimensions are never
// trusted.
type ImageProcessor struct {
	MaxWidth    int
	MaxHeight   int
	JPEGQuality int
}

func NewImageProcessor(maxWidth, maxHeight, jpegQuality int) *ImageProcessor {
	return &ImageProcessor{
		MaxWidth:    maxWidth,
		MaxHeight:   maxHeight,
		JPEGQuality: jpegQuality,
	}
}

// NormalizedImage is a re-encoded upload with its final dimensions.
type NormalizedImage struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
}

// Normalize decodes an upload, scales it down so neither dimension
// exceeds the configured bounds (aspect ratio preserved, never upscaled)
// and re-encodes it. PNG stays PNG, everything else becomes JPEG.
func (p *ImageProcessor) Normalize(data []byte) (*NormalizedImage, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.MaxWidth || bounds.Dy() > p.MaxHeight {
		img = imaging.Fit(img, p.MaxWidth, p.MaxHeight, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	out := &NormalizedImage{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}

	switch format {
	case "png":
		if err := png.Encode(buf, img); err != nil {
			return nil, fmt.Errorf("cannot encode png: %w", err)
		}
		out.ContentType = "image/png"
		out.Ext = "png"
	default:
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: p.JPEGQuality}); err != nil {
			return nil, fmt.Errorf("cannot encode jpeg: %w", err)
		}
		out.ContentType = "image/jpeg"
		out.Ext = "jpg"
	}

	out.Data = buf.Bytes()
	return out, nil
}

// Variants builds the smaller display sizes as JPEG.
func (p *ImageProcessor) Variants(data []byte) (map[string][]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	sizes := map[string]int{"medium": 600, "thumbnail": 300}
	variants := map[string][]byte{}

	for name, size := range sizes {
		resized := imaging.Fit(img, size, size, imaging.Lanczos)
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: p.JPEGQuality}); err != nil {
			return nil, fmt.Errorf("cannot encode %s: %w", name, err)
		}
		variants[name] = buf.Bytes()
	}

	return variants, nil
}
