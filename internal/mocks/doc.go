// Package mocks provides centralized mock implementations for testing.
//
// The mocks here stand in for the remote generative model so gateway, chat
// and HTTP tests can force successes and failures and then assert on the
// calls that reached the provider boundary.
//
// Usage:
//
//	provider := &mocks.MockProvider{
//	    GenerateContentFn: func(ctx context.Context, model string, p generation.RequestPayload) (generation.Response, error) {
//	        return generation.Response{Text: `{"score": 80, "feedback": "Solid."}`}, nil
//	    },
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Track calls behind a mutex so concurrent tests stay race free
package mocks
