// Package generation provides the contracts for talking to a remote
// generative language model (LLM) and a thin Client that performs exactly
// one content generation round trip per call.
//
// The Provider interface is the boundary between the gateway and the
// external model service (Gemini in production, a mock in tests). Request
// payloads are built by the prompt package; the Client turns a payload into
// raw text or decodes it into a caller-supplied structure.
package generation
