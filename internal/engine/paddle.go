package engine

import (
	"fmt"
	"image"
	"log"
	"path/filepath"

	gocr "github.com/getcharzp/go-ocr"
	"github.com/up-zero/gotool/imageutil"
)

// paddle recognizes text with PaddleOCR detection and recognition models
// executed through the ONNX runtime.
//
// The backend holds two ONNX sessions for its lifetime; Close releases
// them. Box order is the detector's reported order and is passed through
// unchanged.
type paddle struct {
	recognize func(img image.Image) ([]Block, error)
	destroy   func()
}

func newPaddle(cfg Config) (Engine, error) {
	dir := filepath.Join(cfg.modelDir(), "paddle")
	eng, err := gocr.NewPaddleOcrEngine(gocr.Config{
		OnnxRuntimeLibPath: cfg.runtimeLib(),
		DetModelPath:       filepath.Join(dir, "det.onnx"),
		RecModelPath:       filepath.Join(dir, "rec.onnx"),
		DictPath:           filepath.Join(dir, "dict.txt"),
	})
	if err != nil {
		return nil, fmt.Errorf("paddleocr init failed: %w", err)
	}

	overlayPath := cfg.BoxOverlayPath
	p := &paddle{destroy: eng.Destroy}
	p.recognize = func(img image.Image) ([]Block, error) {
		boxes, err := eng.RunDetect(img)
		if err != nil {
			return nil, fmt.Errorf("paddleocr detection failed: %w", err)
		}

		if overlayPath != "" {
			overlay := gocr.DrawBoxes(img, boxes)
			if err := imageutil.Save(overlayPath, overlay, 100); err != nil {
				log.Printf("failed to save detection overlay %s: %v", overlayPath, err)
			}
		}

		blocks := make([]Block, 0, len(boxes))
		for _, box := range boxes {
			text, err := eng.RunRecognize(img, box)
			if err != nil {
				return nil, fmt.Errorf("paddleocr recognition failed: %w", err)
			}
			blocks = append(blocks, Block{Text: text})
		}
		return blocks, nil
	}
	return p, nil
}

func (p *paddle) Recognize(img image.Image) ([]Block, error) {
	return p.recognize(img)
}

func (p *paddle) Close() error {
	p.destroy()
	return nil
}
