// Package imaging loads and prepares images for OCR.
//
// It covers three concerns:
//
//   - Loading: decoding PNG, JPEG, GIF, BMP, TIFF, and WebP files with a
//     typed ReadError for anything that cannot be opened or decoded.
//   - Preprocessing: grayscale/contrast/sharpen enhancement and optional
//     lightness-based binarization.
//   - Chunking: splitting very tall images (long screenshots) into
//     overlapping horizontal slices and merging the per-slice text lines
//     back together.
//
// The package holds no state; every function reads its inputs and returns
// fresh values.
package imaging
