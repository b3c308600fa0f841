package fetch

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"
)

const jpegQuality = 90

// resizeIfNeeded downscales a raster image so that neither dimension
// exceeds maxSize, preserving aspect ratio. SVG passes through, and
// any decode or encode failure falls back to the original bytes.
func (c *Client) resizeIfNeeded(data []byte, maxSize int, outputPath string) []byte {
	if strings.EqualFold(filepath.Ext(outputPath), ".svg") {
		return data
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		c.logger.Warn("Could not decode image for resize", "err", err)
		return data
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxSize && h <= maxSize {
		return data
	}

	var newW, newH int
	if w > h {
		newW = maxSize
		newH = h * maxSize / w
	} else {
		newH = maxSize
		newW = w * maxSize / h
	}
	c.logger.Info("Resizing image", "from", image.Pt(w, h), "to", image.Pt(newW, newH))

	dst := scaleNearest(src, newW, newH)

	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	case ".gif":
		err = gif.Encode(&buf, dst, nil)
	default:
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		c.logger.Warn("Could not encode resized image", "err", err)
		return data
	}
	return buf.Bytes()
}

func scaleNearest(src image.Image, w, h int) image.Image {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		sy := bounds.Min.Y + y*bounds.Dy()/h
		for x := 0; x < w; x++ {
			sx := bounds.Min.X + x*bounds.Dx()/w
			dst.Set(x, y, src.At(sx, sy))
		}
	}
	return dst
}
