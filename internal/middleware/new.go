package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/MervynChew/Grab-Voice-AI-Chat/pkg/log"
)

// Config holds middleware tunables.
type Config struct {
	// RatePerSecond is the sustained request rate allowed per client IP.
	RatePerSecond float64
	// Burst is the instantaneous burst allowed per client IP.
	Burst int
}

// Middleware bundles the gin middleware used by the HTTP server.
type Middleware struct {
	l   log.Logger
	cfg Config

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates the middleware bundle.
func New(l log.Logger, cfg Config) *Middleware {
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}
	return &Middleware{
		l:        l,
		cfg:      cfg,
		limiters: make(map[string]*rate.Limiter),
	}
}
