// Package dispatch is the recognizer dispatcher: it ties image loading,
// backend selection, recognition, and output writing into one single-shot
// synchronous pass.
//
// There is no state machine beyond not-started / running / done: each Run
// call validates its inputs, delegates to exactly one backend, and either
// produces the output file or fails with one of three error kinds
// (*imaging.ReadError, *engine.UnsupportedEngineError, *BackendError).
// Nothing is retried, cached, or kept between calls.
package dispatch
