package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/snapread/ocrshot/internal/dispatch"
	"github.com/snapread/ocrshot/internal/engine"
	"github.com/snapread/ocrshot/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Recognized text goes to stdout; everything else to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ocrshot: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ocrshot", flag.ExitOnError)
	fs.Usage = func() { usage(fs) }

	var (
		engineName  = fs.String("engine", string(engine.EasyOCR), "OCR engine: "+strings.Join(engine.Selectors(), ", "))
		lang        = fs.String("lang", "eng", "Tesseract language hint")
		modelDir    = fs.String("models", envOr("OCRSHOT_MODELS", "models"), "ONNX model directory")
		runtimeLib  = fs.String("onnx-lib", "", "ONNX runtime shared library (default: per-OS path under ./lib)")
		chunkHeight = fs.Int("chunk-height", imaging.DefaultChunkHeight, "chunk height for tall images, in pixels")
		overlap     = fs.Int("overlap", imaging.DefaultOverlap, "overlap between chunks, in pixels (0 for contiguous chunks)")
		noEnhance   = fs.Bool("no-enhance", false, "disable contrast/sharpen preprocessing")
		binarize    = fs.Bool("binarize", false, "threshold chunks to black and white before recognition")
		batch       = fs.Bool("batch", false, "batch mode: arguments are an input directory and an output directory")
		start       = fs.Int("start", 1, "first stage index for batch output filenames")
		boxOverlay  = fs.String("boxes-debug", "", "save a detection-overlay image to this path (paddleocr only)")
		version     = fs.Bool("version", false, "print version information and exit")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Printf("ocrshot %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return nil
	}

	opts := dispatch.Options{
		Engine:      *engineName,
		ChunkHeight: *chunkHeight,
		Overlap:     *overlap,
		NoEnhance:   *noEnhance,
		Binarize:    *binarize,
		Config: engine.Config{
			Language:       *lang,
			ModelDir:       *modelDir,
			RuntimeLib:     *runtimeLib,
			BoxOverlayPath: *boxOverlay,
		},
	}

	if *batch {
		if fs.NArg() != 2 {
			usage(fs)
			return errors.New("batch mode needs an input directory and an output directory")
		}
		result, err := dispatch.RunBatch(fs.Arg(0), fs.Arg(1), *start, opts)
		if err != nil {
			return err
		}
		log.Printf("batch complete: %d processed, %d failed", result.Processed, result.Failed)
		if result.Failed > 0 {
			return fmt.Errorf("%d image(s) failed", result.Failed)
		}
		return nil
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		usage(fs)
		return errors.New("need an image path and an optional output path")
	}

	imagePath := fs.Arg(0)
	outputPath := fs.Arg(1)
	if outputPath == "" {
		outputPath = dispatch.DefaultOutputPath(imagePath)
	}

	_, err := dispatch.Run(imagePath, outputPath, opts)
	return err
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "ocrshot - extract text from images with interchangeable OCR engines")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  ocrshot [flags] <image_path> [output_path]")
	fmt.Fprintln(os.Stderr, "  ocrshot -batch [flags] <input_dir> <output_dir>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "When output_path is omitted, <image stem>_ocr.txt is written next to the image.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	fs.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  OCRSHOT_MODELS           default ONNX model directory")
	fmt.Fprintln(os.Stderr, "  OCRSHOT_LOG_LEVEL=debug  enable debug logging")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
