package imaging

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
)

// Default chunking geometry for tall screenshots. A chunk is recognized as
// one unit; the overlap keeps text lines from being cut at chunk borders.
const (
	DefaultChunkHeight = 2000
	DefaultOverlap     = 200
)

// approxLineHeight is the assumed pixel height of one text line, used to
// estimate how many recognized lines fall inside a chunk overlap.
const approxLineHeight = 30

// Chunk is one horizontal slice of a tall image.
type Chunk struct {
	// Image is the cropped slice.
	Image image.Image

	// Y is the top edge of the slice in original image coordinates.
	Y int
}

// Split cuts a tall image into overlapping horizontal chunks.
//
// Parameters:
//   - img: Source image.
//   - chunkHeight: Maximum height of each chunk in pixels. Values < 1 fall
//     back to DefaultChunkHeight.
//   - overlap: Pixels shared between consecutive chunks. Zero produces
//     contiguous chunks; values < 0 fall back to DefaultOverlap. The
//     overlap must be smaller than chunkHeight.
//
// An image no taller than chunkHeight yields a single chunk containing the
// whole image. Chunks are returned top-to-bottom.
func Split(img image.Image, chunkHeight, overlap int) []Chunk {
	if chunkHeight < 1 {
		chunkHeight = DefaultChunkHeight
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	if overlap >= chunkHeight {
		overlap = chunkHeight / 2
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if height <= chunkHeight {
		return []Chunk{{Image: img, Y: 0}}
	}

	var chunks []Chunk
	y := 0
	for y < height {
		yEnd := y + chunkHeight
		if yEnd > height {
			yEnd = height
		}

		crop := imaging.Crop(img, image.Rect(bounds.Min.X, bounds.Min.Y+y, bounds.Min.X+width, bounds.Min.Y+yEnd))
		chunks = append(chunks, Chunk{Image: crop, Y: y})

		if yEnd >= height {
			break
		}
		y = yEnd - overlap
	}

	return chunks
}

// MergeLines joins the recognized lines of consecutive chunks, dropping the
// lines that fall inside each chunk overlap.
//
// The first chunk is kept in full. For every later chunk, the estimated
// number of lines covered by the overlap (overlap / ~30 px per line, at
// least 1 for any positive overlap) is skipped from its head. The estimate
// errs toward dropping too few lines rather than losing text. A zero
// overlap means the chunks were contiguous and nothing is dropped.
func MergeLines(chunkLines [][]string, overlap int) []string {
	if len(chunkLines) == 0 {
		return nil
	}
	if len(chunkLines) == 1 {
		return chunkLines[0]
	}

	skip := overlap / approxLineHeight
	if overlap > 0 && skip < 1 {
		skip = 1
	}

	merged := append([]string{}, chunkLines[0]...)
	for _, lines := range chunkLines[1:] {
		if len(lines) <= skip {
			continue
		}
		merged = append(merged, lines[skip:]...)
	}
	return merged
}

// SaveTemp writes an image to a temporary PNG file and returns its path.
//
// Some backends (Tesseract) take a file path rather than an in-memory
// image. The caller is responsible for removing the file with os.Remove
// after use.
func SaveTemp(img image.Image, prefix string) (string, error) {
	f, err := os.CreateTemp("", prefix+"-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temp image: %w", err)
	}

	return f.Name(), nil
}
