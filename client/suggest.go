package client

import (
	"context"
	"sync"
	"time"
)

// SuggestFunc fetches suggestions for a search term.
type SuggestFunc func(ctx context.Context, term string) ([]string, error)

// Suggester debounces search-as-you-type. Each keystroke resets the timer;
// only the last term within the delay window triggers a fetch. Responses that
// arrive after a newer query started, or after Close, are discarded.
type Suggester struct {
	fetch   SuggestFunc
	deliver func(term string, suggestions []string)
	delay   time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	gen    uint64
	closed bool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSuggester creates a Suggester. deliver is called with the results of the
// latest query only; it runs on the fetch goroutine.
func NewSuggester(fetch SuggestFunc, delay time.Duration, deliver func(term string, suggestions []string)) *Suggester {
	ctx, cancel := context.WithCancel(context.Background())

	return &Suggester{
		fetch:   fetch,
		deliver: deliver,
		delay:   delay,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Update registers a keystroke. The pending timer, if any, is reset.
func (s *Suggester) Update(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.gen++
	gen := s.gen

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(gen, term)
	})
}

func (s *Suggester) run(gen uint64, term string) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()

		return
	}
	ctx := s.ctx
	s.mu.Unlock()

	suggestions, err := s.fetch(ctx, term)
	if err != nil {
		return
	}

	s.mu.Lock()
	stale := s.closed || gen != s.gen
	s.mu.Unlock()
	if stale {
		return
	}

	s.deliver(term, suggestions)
}

// Close cancels any in-flight fetch and stops the pending timer. Further
// Update calls are ignored.
func (s *Suggester) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.cancel()
}
