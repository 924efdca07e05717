// Package gemini provides an implementation of the generation.Provider interface
// that uses Google's Gemini API through the google.golang.org/genai client.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the gateway to Google's external Gemini AI service. It
// translates between provider-neutral request payloads and genai types
// without exposing the details of the external service to the core.
//
// Key components:
//
// 1. Provider:
//   - Implements generation.Provider
//   - GenerateContent maps a RequestPayload to Models.GenerateContent,
//     including the response schema and JSON MIME type
//   - CreateChat opens a genai chat seeded with the system instruction and history
//
// 2. Schema translation:
//   - Converts generation.Schema trees into *genai.Schema
//
// 3. Error Handling:
//   - Categorizes API errors into generation sentinel errors
//     (transient, unauthenticated, blocked, invalid response)
//   - Optional retries with exponential backoff for transient errors
//
// A Provider built without an API key is still usable: every call fails
// with generation.ErrUnauthenticated so that callers apply their fallback
// policy instead of failing at startup.
package gemini
