package engine

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawText renders text on an image using basicfont.
func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// textImage renders lines of text on a white canvas, scaled up for better
// recognition (basicfont glyphs are 7x13 pixels).
func textImage(lines []string, scale int) image.Image {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	w := maxLen*7 + 40
	h := len(lines)*16 + 30

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	for i, line := range lines {
		drawText(small, 20, 20+i*16, line, color.Black)
	}

	if scale <= 1 {
		return small
	}

	big := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := small.At(x, y)
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					big.Set(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return big
}

// skipIfNoTesseract skips the test when the native Tesseract library is
// unavailable on this machine.
func skipIfNoTesseract(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	if strings.Contains(err.Error(), "tesseract") ||
		strings.Contains(err.Error(), "library") {
		t.Skip("Tesseract not available")
	}
	t.Fatalf("recognition failed: %v", err)
}

func TestTesseract_Recognize(t *testing.T) {
	eng, err := newTesseract(Config{})
	if err != nil {
		t.Fatalf("newTesseract failed: %v", err)
	}
	defer eng.Close()

	blocks, err := eng.Recognize(textImage([]string{"HELLO WORLD"}, 3))
	skipIfNoTesseract(t, err)

	t.Logf("recognized %d block(s)", len(blocks))
	for i, b := range blocks {
		t.Logf("  block %d: %q (confidence %.2f)", i, b.Text, b.Confidence)
	}
}

func TestTesseract_MultiLine(t *testing.T) {
	eng, err := newTesseract(Config{})
	if err != nil {
		t.Fatalf("newTesseract failed: %v", err)
	}
	defer eng.Close()

	lines := []string{"LINE ONE", "LINE TWO", "LINE THREE"}
	blocks, err := eng.Recognize(textImage(lines, 3))
	skipIfNoTesseract(t, err)

	t.Logf("multi-line image produced %d block(s)", len(blocks))
	for i, b := range blocks {
		t.Logf("  block %d: %q", i, b.Text)
	}
}

func TestTesseract_BlankImage(t *testing.T) {
	eng, err := newTesseract(Config{})
	if err != nil {
		t.Fatalf("newTesseract failed: %v", err)
	}
	defer eng.Close()

	blank := image.NewRGBA(image.Rect(0, 0, 200, 100))
	draw.Draw(blank, blank.Bounds(), image.White, image.Point{}, draw.Src)

	blocks, err := eng.Recognize(blank)
	skipIfNoTesseract(t, err)

	for _, b := range blocks {
		if strings.TrimSpace(b.Text) == "" {
			t.Error("blocks should never contain blank text")
		}
	}
}
