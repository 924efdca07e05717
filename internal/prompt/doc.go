// Package prompt assembles generation request payloads from caller text.
//
// Builders are pure functions: the same input always yields a
// byte-identical payload. Caller text is embedded verbatim; nothing here
// escapes, trims or rejects it.
package prompt
