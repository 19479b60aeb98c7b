package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ReadError reports that an image file could not be opened or decoded.
//
// It distinguishes input problems (missing file, unreadable file, corrupt or
// unsupported format) from recognition failures: a ReadError is always raised
// before any OCR backend is constructed or invoked.
type ReadError struct {
	// Path is the image path as given by the caller.
	Path string

	// Err is the underlying open/decode failure.
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read image %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// SupportedExtensions lists the file extensions (lowercase, with dot) that
// Load can decode. Batch mode uses it to filter directory entries.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".webp", ".tiff", ".gif"}

// IsSupportedFile reports whether the path has a recognized image extension.
func IsSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// Load opens and decodes an image file.
//
// Parameters:
//   - path: Absolute or relative path to the image. Supported formats are
//     PNG, JPEG, GIF, BMP, TIFF, and WebP.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image
//     format and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr).
//   - error: A *ReadError if the file cannot be opened or decoded.
//
// Load reads the file exactly once and keeps no state between calls.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("decode failed: %w", err)}
	}

	return img, nil
}

// Info contains basic metadata about a loaded image.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Describe returns metadata for an already-decoded image file without
// decoding it again: the pixel dimensions come from img, the size on disk
// from the file at path.
func Describe(img image.Image, path string) (*Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	b := img.Bounds()
	return &Info{
		Width:         b.Dx(),
		Height:        b.Dy(),
		FileSizeBytes: st.Size(),
	}, nil
}
