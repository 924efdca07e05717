// Package domain contains the value objects exchanged with the AI gateway:
// startup plans, readiness assessments, essays and chat turns. Every value
// here is immutable by convention; a new value replaces an old one rather
// than being mutated in place.
package domain
