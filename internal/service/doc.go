// Package service contains application use cases that sit between the
// HTTP layer and the background task machinery.
//
// JobService accepts generation requests, validates them, and hands them
// to the task runner through the event emitter. Callers poll for results
// by job ID.
package service
