package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RegistryConfig controls session expiry.
type RegistryConfig struct {
	// TTL is how long a session may stay idle before it is dropped.
	TTL time.Duration

	// SweepInterval defines how often idle sessions are looked for.
	// If zero, defaults to one minute.
	SweepInterval time.Duration
}

// Registry holds live sessions by ID.
type Registry struct {
	config RegistryConfig
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewRegistry creates an empty Registry. Call Start to begin expiring
// idle sessions.
func NewRegistry(config RegistryConfig, logger *slog.Logger) *Registry {
	if config.SweepInterval <= 0 {
		config.SweepInterval = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Registry{
		config:     config,
		logger:     logger.With("component", "chat_registry"),
		sessions:   make(map[string]*Session),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Add stores s under its ID.
func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
}

// Get returns the session with the given ID.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete closes and removes the session with the given ID.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Close()
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle since before now minus the TTL and returns how
// many were removed. A zero TTL disables expiry.
func (r *Registry) Sweep(now time.Time) int {
	if r.config.TTL <= 0 {
		return 0
	}
	cutoff := now.Add(-r.config.TTL)

	var expired []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if s.LastActive().Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	return len(expired)
}

// Start runs the sweeper until Stop is called.
func (r *Registry) Start() {
	r.wg.Add(1)
	go r.sweeper()
}

// Stop halts the sweeper and waits for it to exit.
func (r *Registry) Stop() {
	r.cancelFunc()
	r.wg.Wait()
}

func (r *Registry) sweeper() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case now := <-ticker.C:
			if n := r.Sweep(now); n > 0 {
				r.logger.Info("expired idle chat sessions", "count", n)
			}
		}
	}
}
