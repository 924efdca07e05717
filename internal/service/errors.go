package service

import "errors"

// Sentinel errors for job operations. The API layer maps them to status codes.
var (
	// ErrJobNotFound indicates no job exists with the requested ID.
	ErrJobNotFound = errors.New("job not found")

	// ErrEnqueueFailed indicates the job was accepted for validation but
	// could not be scheduled.
	ErrEnqueueFailed = errors.New("failed to enqueue job")
)
