package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/lucasb-eyer/go-colorful"
)

// Enhance prepares an image for OCR: grayscale conversion, contrast boost,
// and a sharpening pass.
//
// These steps improve recognition on low-contrast screenshots without
// changing image dimensions. The input image is not modified.
func Enhance(img image.Image) image.Image {
	out := effect.Grayscale(img)
	out = adjust.Contrast(out, 0.5)
	return effect.Sharpen(out)
}

// Binarize thresholds an image to pure black and white.
//
// The threshold is derived from the mean perceptual lightness of the image
// (CIE Lab L component), so dark-on-light and light-on-dark inputs both
// binarize sensibly. Useful for noisy scans; not applied by default.
func Binarize(img image.Image) image.Image {
	return segment.Threshold(img, meanLightness(img))
}

// meanLightness samples the image on a coarse grid and returns the mean
// Lab lightness scaled to 0-255.
func meanLightness(img image.Image) uint8 {
	bounds := img.Bounds()
	step := bounds.Dx() / 64
	if step < 1 {
		step = 1
	}

	var sum float64
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// Fully transparent pixel, skip.
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			n++
		}
	}
	if n == 0 {
		return 128
	}

	return uint8(sum / float64(n) * 255)
}
