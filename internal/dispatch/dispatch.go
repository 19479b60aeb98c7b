package dispatch

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/snapread/ocrshot/internal/engine"
	"github.com/snapread/ocrshot/internal/imaging"
	"github.com/snapread/ocrshot/internal/writer"
)

// BackendError reports a failure surfaced by a delegated OCR backend:
// construction (missing native library, missing model weights) or
// recognition itself. The original cause is preserved and never retried.
type BackendError struct {
	// Engine is the backend that failed.
	Engine engine.Selector

	// Err is the backend's failure.
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s backend failed: %v", e.Engine, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Options configures a recognition run. The zero value selects the
// easyocr backend with the default chunk height, contiguous chunks, and
// enhancement enabled.
type Options struct {
	// Engine is the backend identifier: easyocr, paddleocr, or tesseract.
	// Empty defaults to easyocr.
	Engine string

	// ChunkHeight is the maximum chunk height for tall-image splitting;
	// zero uses the imaging default (2000 pixels).
	ChunkHeight int

	// Overlap is the content shared between consecutive chunks, in
	// pixels. Zero means contiguous chunks with nothing dropped during
	// the merge; negative uses the imaging default (200 pixels).
	Overlap int

	// NoEnhance disables the grayscale/contrast/sharpen preprocessing.
	NoEnhance bool

	// Binarize additionally thresholds each chunk to black and white.
	Binarize bool

	// Config carries backend construction parameters (language hint,
	// model directory, ONNX runtime library path).
	Config engine.Config

	// Stdout receives the recognized text. Defaults to os.Stdout.
	Stdout io.Writer

	// NewEngine overrides backend construction. Defaults to engine.New.
	NewEngine func(engine.Selector, engine.Config) (engine.Engine, error)
}

func (o Options) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o Options) newEngine() func(engine.Selector, engine.Config) (engine.Engine, error) {
	if o.NewEngine == nil {
		return engine.New
	}
	return o.NewEngine
}

func (o Options) overlap() int {
	if o.Overlap < 0 {
		return imaging.DefaultOverlap
	}
	return o.Overlap
}

// Result is the outcome of one successful recognition run. It is handed
// to the caller and not retained anywhere.
type Result struct {
	// Engine is the backend that produced the text.
	Engine engine.Selector `json:"engine"`

	// Lines is the number of text blocks written, one per output line.
	Lines int `json:"lines"`

	// Text is the full recognized text, NFC-normalized.
	Text string `json:"text"`
}

// DefaultOutputPath returns the output filename used when the caller does
// not name one: the image filename with its extension replaced by
// "_ocr.txt", in the same directory.
func DefaultOutputPath(imagePath string) string {
	base := filepath.Base(imagePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(imagePath), stem+"_ocr.txt")
}

// Run performs one single-shot, synchronous recognition pass: load the
// image, delegate to the selected backend, print the recognized text, and
// write it to outputPath (UTF-8, one text block per line, top-to-bottom,
// overwriting any existing file).
//
// Failure modes, all surfaced immediately and never retried:
//   - *engine.UnsupportedEngineError: unknown engine identifier; checked
//     first, so no file is written and no backend is touched.
//   - *imaging.ReadError: missing or undecodable image; raised before the
//     backend is constructed.
//   - *BackendError: any delegated failure, original cause preserved.
//
// No output file is produced on any failure path.
func Run(imagePath, outputPath string, opts Options) (*Result, error) {
	sel, err := engine.ParseSelector(opts.Engine)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Load(imagePath)
	if err != nil {
		return nil, err
	}
	if debug {
		if info, err := imaging.Describe(img, imagePath); err == nil {
			log.Printf("%s: %dx%d px, %d bytes on disk", imagePath, info.Width, info.Height, info.FileSizeBytes)
		}
	}

	eng, err := opts.newEngine()(sel, opts.Config)
	if err != nil {
		return nil, &BackendError{Engine: sel, Err: err}
	}
	defer eng.Close()

	return recognizeToFile(eng, sel, img, outputPath, opts)
}

// recognizeToFile runs the already-constructed backend over one loaded
// image and persists the result. Shared by Run and RunBatch.
func recognizeToFile(eng engine.Engine, sel engine.Selector, img image.Image, outputPath string, opts Options) (*Result, error) {
	overlap := opts.overlap()
	chunks := imaging.Split(img, opts.ChunkHeight, overlap)
	if debug {
		log.Printf("split into %d chunk(s), %d px overlap", len(chunks), overlap)
	}

	chunkLines := make([][]string, 0, len(chunks))
	for i, chunk := range chunks {
		prepared := chunk.Image
		if !opts.NoEnhance {
			prepared = imaging.Enhance(prepared)
		}
		if opts.Binarize {
			prepared = imaging.Binarize(prepared)
		}

		blocks, err := eng.Recognize(prepared)
		if err != nil {
			return nil, &BackendError{Engine: sel, Err: err}
		}
		if debug {
			log.Printf("chunk %d/%d: %d block(s)", i+1, len(chunks), len(blocks))
		}

		lines := make([]string, 0, len(blocks))
		for _, b := range blocks {
			lines = append(lines, b.Text)
		}
		chunkLines = append(chunkLines, lines)
	}

	lines := imaging.MergeLines(chunkLines, overlap)
	text := norm.NFC.String(strings.Join(lines, "\n"))

	fmt.Fprintln(opts.stdout(), text)

	if err := writer.WriteText(outputPath, text); err != nil {
		return nil, err
	}
	log.Printf("recognized %d line(s) with %s, saved to %s", len(lines), sel, outputPath)

	return &Result{Engine: sel, Lines: len(lines), Text: text}, nil
}

// debug mirrors the OCRSHOT_LOG_LEVEL environment toggle.
var debug = os.Getenv("OCRSHOT_LOG_LEVEL") == "debug"
