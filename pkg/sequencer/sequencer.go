// Package sequencer orders overlapping requests so that only the latest one wins.
//
// Every Begin call supersedes the previous one: its context is cancelled and its
// ticket stops being current. Callers check Ticket.Current before applying a result.
package sequencer

import (
	"context"
	"sync"
)

type Sequencer struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// Ticket identifies one request issued by a Sequencer.
type Ticket struct {
	seq uint64
	s   *Sequencer
}

func New() *Sequencer {
	return &Sequencer{}
}

// Begin issues a new ticket and cancels the request issued before it.
func (s *Sequencer) Begin(ctx context.Context) (Ticket, context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	s.seq++
	s.cancel = cancel

	return Ticket{seq: s.seq, s: s}, reqCtx
}

// Invalidate supersedes the in-flight request without issuing a new one.
func (s *Sequencer) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}

// Current reports whether no newer request has been issued since t.
func (t Ticket) Current() bool {
	if t.s == nil {
		return false
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.seq == t.s.seq
}

// Done releases the resources of the ticket's context if it is still current.
func (t Ticket) Done() {
	if t.s == nil {
		return
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.seq == t.s.seq && t.s.cancel != nil {
		t.s.cancel()
		t.s.cancel = nil
	}
}
