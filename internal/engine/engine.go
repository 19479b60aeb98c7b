package engine

import (
	"fmt"
	"image"
	"strings"

	gocr "github.com/getcharzp/go-ocr"
)

// Selector identifies one of the supported OCR backends.
//
// The set is closed: selection happens through this enum, never through
// free-form strings inside the pipeline, and there is no runtime fallback
// from one backend to another.
type Selector string

const (
	EasyOCR   Selector = "easyocr"
	PaddleOCR Selector = "paddleocr"
	Tesseract Selector = "tesseract"
)

// Selectors lists the supported backend identifiers, for usage messages.
func Selectors() []string {
	return []string{string(EasyOCR), string(PaddleOCR), string(Tesseract)}
}

// UnsupportedEngineError reports an engine identifier outside the
// supported set.
type UnsupportedEngineError struct {
	// Name is the identifier as given by the caller.
	Name string
}

func (e *UnsupportedEngineError) Error() string {
	return fmt.Sprintf("unsupported engine %q (supported: %s)", e.Name, strings.Join(Selectors(), ", "))
}

// ParseSelector validates an engine identifier.
//
// Matching is case-insensitive and ignores surrounding whitespace. Unknown
// identifiers fail with *UnsupportedEngineError.
func ParseSelector(s string) (Selector, error) {
	switch Selector(strings.ToLower(strings.TrimSpace(s))) {
	case EasyOCR:
		return EasyOCR, nil
	case PaddleOCR:
		return PaddleOCR, nil
	case Tesseract:
		return Tesseract, nil
	default:
		return "", &UnsupportedEngineError{Name: s}
	}
}

// Block is one recognized text block.
//
// The text is opaque: no positional metadata is carried downstream. Order
// within a []Block is the backend's reading order, top-to-bottom.
type Block struct {
	// Text is the recognized content of the block.
	Text string `json:"text"`

	// Confidence is the backend's confidence score (0.0 to 1.0), or 0 when
	// the backend does not report one.
	Confidence float64 `json:"confidence"`
}

// Engine is the single capability all backends implement: recognize an
// image into ordered text blocks.
//
// Engines are synchronous and not safe for concurrent use. Close releases
// backend resources (ONNX sessions, native handles) and must be called
// when the engine is no longer needed.
type Engine interface {
	Recognize(img image.Image) ([]Block, error)
	Close() error
}

// Config carries backend construction parameters.
//
// All fields have usable zero-value defaults; see the field comments.
type Config struct {
	// Language is the Tesseract language hint (default "eng"). The ONNX
	// backends take their character set from their dictionary files and
	// ignore it.
	Language string

	// ModelDir is the directory holding ONNX model weights, laid out as
	// <ModelDir>/paddle/{det.onnx,rec.onnx,dict.txt} and
	// <ModelDir>/easyocr/{det.onnx,rec.onnx,dict.txt}. Default "models".
	ModelDir string

	// RuntimeLib is the path to the ONNX runtime shared library. Empty
	// selects the go-ocr per-OS default under ./lib.
	RuntimeLib string

	// BoxOverlayPath, when non-empty, makes the paddleocr backend save a
	// copy of the input with detected boxes drawn on it. Debug aid; other
	// backends ignore it.
	BoxOverlayPath string
}

func (c Config) language() string {
	if c.Language == "" {
		return "eng"
	}
	return c.Language
}

func (c Config) modelDir() string {
	if c.ModelDir == "" {
		return "models"
	}
	return c.ModelDir
}

func (c Config) runtimeLib() string {
	if c.RuntimeLib == "" {
		return gocr.DefaultLibraryPath()
	}
	return c.RuntimeLib
}

// New constructs the backend named by sel.
//
// Construction may load native libraries and model weights; failures are
// returned as-is for the caller to classify. An unknown selector fails
// with *UnsupportedEngineError.
func New(sel Selector, cfg Config) (Engine, error) {
	switch sel {
	case EasyOCR:
		return newEasyOCR(cfg)
	case PaddleOCR:
		return newPaddle(cfg)
	case Tesseract:
		return newTesseract(cfg)
	default:
		return nil, &UnsupportedEngineError{Name: string(sel)}
	}
}
