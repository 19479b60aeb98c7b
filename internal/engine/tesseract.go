package engine

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/snapread/ocrshot/internal/imaging"
)

// tesseract recognizes text with the system Tesseract installation through
// the gosseract bindings.
//
// Tesseract must be installed along with the language data for the
// configured language hint (e.g. tesseract-ocr-eng). A fresh client is
// created per recognition call; gosseract clients are cheap and keeping
// one alive across calls pins native memory for the process lifetime.
type tesseract struct {
	language string
}

func newTesseract(cfg Config) (Engine, error) {
	return &tesseract{language: cfg.language()}, nil
}

func (t *tesseract) Recognize(img image.Image) ([]Block, error) {
	// Tesseract takes a file path, not an in-memory image.
	tmpPath, err := imaging.SaveTemp(img, "ocrshot-tess")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpPath)

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language); err != nil {
		return nil, fmt.Errorf("failed to set language %q: %w", t.language, err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("tesseract recognition failed: %w", err)
	}

	// Line-level boxes give one block per text line in page order. If line
	// iteration fails (older Tesseract builds), fall back to splitting the
	// full text.
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return splitTextBlocks(text), nil
	}

	blocks := make([]Block, 0, len(boxes))
	for _, box := range boxes {
		line := strings.TrimSpace(box.Word)
		if line == "" {
			continue
		}
		blocks = append(blocks, Block{
			Text:       line,
			Confidence: box.Confidence / 100.0,
		})
	}

	if len(blocks) == 0 {
		return splitTextBlocks(text), nil
	}
	return blocks, nil
}

func (t *tesseract) Close() error { return nil }

// splitTextBlocks turns Tesseract full-page text into one block per
// non-empty line.
func splitTextBlocks(text string) []Block {
	var blocks []Block
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		blocks = append(blocks, Block{Text: line})
	}
	return blocks
}
