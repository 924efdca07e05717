// Package fallback holds the demo payloads and the policy that substitutes
// them when a generation fails.
//
// Every gateway operation is total: a failed generation yields the
// operation's demo value plus the original error, so callers can render
// something while logs and metrics still see the real failure.
package fallback
