package style

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/slidekit/slidekit-go/pkg/deck"
)

const (
	maxSampledImages = 5
	imageSampleGrid  = 50
	colorsPerImage   = 3
)

// dominantImageColors decodes up to a handful of slide pictures and
// returns their most frequent colors, sampled on a coarse grid. These
// feed the accent pick alongside explicit text colors.
func dominantImageColors(d *deck.Deck) []string {
	var colors []string
	sampled := 0

	for _, slide := range d.Slides {
		for _, img := range slide.Images {
			if sampled >= maxSampledImages {
				return colors
			}
			top, err := sampleImage(img.Data)
			if err != nil {
				continue
			}
			colors = append(colors, top...)
			sampled++
		}
	}
	return colors
}

func sampleImage(data []byte) ([]string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image")
	}

	counts := newCounter[string]()
	for gy := 0; gy < imageSampleGrid; gy++ {
		for gx := 0; gx < imageSampleGrid; gx++ {
			x := bounds.Min.X + gx*w/imageSampleGrid
			y := bounds.Min.Y + gy*h/imageSampleGrid
			r, g, b, _ := img.At(x, y).RGBA()
			counts.add(fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}

	var top []string
	for _, e := range counts.mostCommon(colorsPerImage) {
		top = append(top, e.value)
	}
	return top, nil
}
