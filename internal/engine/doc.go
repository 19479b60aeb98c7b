// Package engine selects and drives OCR backends.
//
// Three interchangeable backends implement the single Engine capability,
// recognize(image) -> ordered text blocks:
//
//   - tesseract: the system Tesseract installation via gosseract. Needs
//     tesseract and language data installed (apt-get install tesseract-ocr
//     tesseract-ocr-eng, or brew install tesseract).
//   - paddleocr: PaddleOCR detection + recognition ONNX models. Needs the
//     ONNX runtime shared library and model weights on disk.
//   - easyocr: standalone detector + CRNN recognizer ONNX models, same
//     runtime requirements as paddleocr.
//
// Backends are opaque: callers pick one with a Selector, call Recognize,
// and get back text blocks in reading order. Backend failures (missing
// native libraries, missing model weights, inference errors) are returned
// unchanged; nothing here retries or falls back to a different backend.
package engine
