// Package events decouples request intake from background processing.
//
// Services emit TaskRequestEvents describing work to be done; handlers
// registered per event type turn them into tasks. The in-memory emitter
// dispatches synchronously on the caller's goroutine.
package events
