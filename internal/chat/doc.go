// Package chat drives multi-turn "Hackathon Mentor" conversations.
//
// A Session wraps the provider's opaque chat handle together with the
// locally recorded turn history. The mentor persona is handed to the
// provider exactly once, when the handle is created, and never again on
// individual messages.
//
// Sends on one Session are serialized in arrival order, so concurrent
// callers observe turns appended in the order they issued them. Failed
// sends keep the user turn and add no model turn; substituting a display
// message is the caller's job.
//
// Registry keeps sessions addressable by ID for the HTTP layer and expires
// idle ones.
package chat
