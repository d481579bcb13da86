package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// suggestRecorder collects delivered suggestion batches.
type suggestRecorder struct {
	mu        sync.Mutex
	delivered [][]string
	terms     []string
}

func (r *suggestRecorder) deliver(term string, suggestions []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = append(r.terms, term)
	r.delivered = append(r.delivered, suggestions)
}

func (r *suggestRecorder) snapshot() ([]string, [][]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.terms...), append([][]string(nil), r.delivered...)
}

func TestSuggester_DebouncesKeystrokes(t *testing.T) {
	var mu sync.Mutex
	var fetched []string
	fetch := func(ctx context.Context, term string) ([]string, error) {
		mu.Lock()
		fetched = append(fetched, term)
		mu.Unlock()

		return []string{term + " dosa"}, nil
	}

	rec := &suggestRecorder{}
	s := NewSuggester(fetch, 30*time.Millisecond, rec.deliver)
	defer s.Close()

	// Rapid keystrokes within the delay window collapse into one fetch.
	s.Update("m")
	s.Update("ma")
	s.Update("mas")

	require.Eventually(t, func() bool {
		terms, _ := rec.snapshot()

		return len(terms) == 1
	}, time.Second, 5*time.Millisecond)

	terms, delivered := rec.snapshot()
	assert.Equal(t, []string{"mas"}, terms)
	assert.Equal(t, [][]string{{"mas dosa"}}, delivered)

	mu.Lock()
	assert.Equal(t, []string{"mas"}, fetched)
	mu.Unlock()
}

func TestSuggester_DiscardsStaleResponse(t *testing.T) {
	release := make(chan struct{})
	fetch := func(ctx context.Context, term string) ([]string, error) {
		if term == "slow" {
			<-release
		}

		return []string{term}, nil
	}

	rec := &suggestRecorder{}
	s := NewSuggester(fetch, 5*time.Millisecond, rec.deliver)
	defer s.Close()

	s.Update("slow")
	// Let the slow fetch start before the next keystroke supersedes it.
	time.Sleep(20 * time.Millisecond)
	s.Update("fast")

	require.Eventually(t, func() bool {
		terms, _ := rec.snapshot()

		return len(terms) == 1
	}, time.Second, 5*time.Millisecond)

	// Unblock the stale fetch; its result must be dropped.
	close(release)
	time.Sleep(20 * time.Millisecond)

	terms, _ := rec.snapshot()
	assert.Equal(t, []string{"fast"}, terms)
}

func TestSuggester_CloseStopsPendingFetch(t *testing.T) {
	fetch := func(ctx context.Context, term string) ([]string, error) {
		return []string{term}, nil
	}

	rec := &suggestRecorder{}
	s := NewSuggester(fetch, 20*time.Millisecond, rec.deliver)

	s.Update("masala")
	s.Close()

	time.Sleep(60 * time.Millisecond)

	terms, _ := rec.snapshot()
	assert.Empty(t, terms)

	// Updates after Close are ignored.
	s.Update("dosa")
	time.Sleep(40 * time.Millisecond)
	terms, _ = rec.snapshot()
	assert.Empty(t, terms)
}
