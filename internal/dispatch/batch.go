package dispatch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/snapread/ocrshot/internal/engine"
	"github.com/snapread/ocrshot/internal/imaging"
)

// BatchResult summarizes a directory run.
type BatchResult struct {
	// Processed is the number of images recognized successfully.
	Processed int `json:"processed"`

	// Failed is the number of images that errored and were skipped.
	Failed int `json:"failed"`

	// Outputs lists the files written, in processing order.
	Outputs []string `json:"outputs"`
}

// RunBatch recognizes every supported image in inputDir, writing one
// output file per image into outputDir as stage-<n>.txt, with <n>
// starting at startIndex and following the sorted image filename order.
//
// Images are processed strictly one at a time with a single shared
// backend instance. A failure on one image is logged and counted but does
// not stop the batch; the stage index still advances so output names stay
// aligned with the input sequence. outputDir is created if missing.
//
// Selector and backend-construction failures abort the whole batch, since
// no image could succeed.
func RunBatch(inputDir, outputDir string, startIndex int, opts Options) (*BatchResult, error) {
	sel, err := engine.ParseSelector(opts.Engine)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !imaging.IsSupportedFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		log.Printf("no supported images in %s", inputDir)
		return &BatchResult{}, nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	eng, err := opts.newEngine()(sel, opts.Config)
	if err != nil {
		return nil, &BackendError{Engine: sel, Err: err}
	}
	defer eng.Close()

	if startIndex < 1 {
		startIndex = 1
	}

	result := &BatchResult{}
	index := startIndex
	for i, name := range names {
		imagePath := filepath.Join(inputDir, name)
		outputPath := filepath.Join(outputDir, fmt.Sprintf("stage-%d.txt", index))
		index++

		log.Printf("[%d/%d] %s -> %s", i+1, len(names), name, filepath.Base(outputPath))

		img, err := imaging.Load(imagePath)
		if err != nil {
			log.Printf("skipping %s: %v", name, err)
			result.Failed++
			continue
		}
		if debug {
			if info, err := imaging.Describe(img, imagePath); err == nil {
				log.Printf("%s: %dx%d px, %d bytes on disk", name, info.Width, info.Height, info.FileSizeBytes)
			}
		}

		if _, err := recognizeToFile(eng, sel, img, outputPath, opts); err != nil {
			log.Printf("skipping %s: %v", name, err)
			result.Failed++
			continue
		}

		result.Processed++
		result.Outputs = append(result.Outputs, outputPath)
	}

	return result, nil
}
