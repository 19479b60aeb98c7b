package engine

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/getcharzp/go-ocr/ddddocr"

	"github.com/snapread/ocrshot/internal/layout"
)

// easyOCR recognizes text with a standalone detector plus a CRNN line
// recognizer, both executed through the ONNX runtime.
//
// The detector returns unordered text boxes; they are grouped into rows
// and ordered for reading (top-to-bottom, left-to-right) before
// recognition, and each row becomes one block.
type easyOCR struct {
	eng *ddddocr.Engine
}

func newEasyOCR(cfg Config) (Engine, error) {
	dir := filepath.Join(cfg.modelDir(), "easyocr")
	eng, err := ddddocr.NewEngine(ddddocr.Config{
		OnnxRuntimeLibPath: cfg.runtimeLib(),
		ModelPath:          filepath.Join(dir, "rec.onnx"),
		DetModelPath:       filepath.Join(dir, "det.onnx"),
		DictPath:           filepath.Join(dir, "dict.txt"),
	})
	if err != nil {
		return nil, fmt.Errorf("easyocr init failed: %w", err)
	}
	return &easyOCR{eng: eng}, nil
}

func (e *easyOCR) Recognize(img image.Image) ([]Block, error) {
	dets, err := e.eng.Detect(img)
	if err != nil {
		return nil, fmt.Errorf("easyocr detection failed: %w", err)
	}

	boxes := make([]layout.Box, len(dets))
	scores := make(map[layout.Box]float32, len(dets))
	for i, d := range dets {
		b := layout.Box{X1: d.Box[0], Y1: d.Box[1], X2: d.Box[2], Y2: d.Box[3]}
		boxes[i] = b
		scores[b] = d.Score
	}

	var blocks []Block
	for _, row := range layout.ReadingOrder(boxes) {
		var parts []string
		var scoreSum float64
		for _, b := range row {
			crop := imaging.Crop(img, image.Rect(b.X1, b.Y1, b.X2, b.Y2))
			text, err := e.eng.Classification(crop)
			if err != nil {
				return nil, fmt.Errorf("easyocr recognition failed: %w", err)
			}
			if text = strings.TrimSpace(text); text != "" {
				parts = append(parts, text)
			}
			scoreSum += float64(scores[b])
		}
		if len(parts) == 0 {
			continue
		}
		blocks = append(blocks, Block{
			Text:       strings.Join(parts, " "),
			Confidence: scoreSum / float64(len(row)),
		})
	}
	return blocks, nil
}

func (e *easyOCR) Close() error {
	e.eng.Destroy()
	return nil
}
