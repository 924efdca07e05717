// Package task runs gateway generations in the background.
//
// A GenerationTask wraps one single-shot gateway operation. Tasks are
// created from TaskRequestEvents, saved to a TaskStore and executed by a
// TaskRunner's worker goroutines. Results and statuses live in process
// memory and can be polled by ID.
package task
