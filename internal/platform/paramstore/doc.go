// Package paramstore reads secrets from AWS Systems Manager Parameter Store.
//
// It is used at startup to resolve the Gemini API key when the
// configuration names a parameter instead of carrying the key itself.
package paramstore
