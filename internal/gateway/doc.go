// Package gateway is the single entry point for the AI-backed operations:
// research-to-startup conversion, scholarship essays, pitch readiness
// scoring and mentor chat sessions.
//
// The three single-shot operations never fail. Each has a Try variant
// returning a fallback.Result so the real failure stays observable, and a
// plain variant that always yields a usable value, substituting the demo
// payload when generation fails.
//
// The Gateway holds no mutable state and is safe for concurrent use.
package gateway
