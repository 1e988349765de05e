package okcoinex

import "sync"

// DoneSignal marks the completion of one in-flight call. It is emitted
// exactly once; there is no way to cancel the call behind it.
type DoneSignal struct {
	doneC chan struct{}
	mu    sync.Mutex
}

func NewDoneSignal() *DoneSignal {
	return &DoneSignal{
		doneC: make(chan struct{}),
	}
}

func (s *DoneSignal) Emit() {
	s.mu.Lock()
	if s.doneC == nil {
		s.doneC = make(chan struct{})
	}

	close(s.doneC)
	s.mu.Unlock()
}

// Chan returns a channel that is closed when the call has delivered its
// outcome.
func (s *DoneSignal) Chan() (c <-chan struct{}) {
	s.mu.Lock()
	if s.doneC == nil {
		s.doneC = make(chan struct{})
	}
	c = s.doneC
	s.mu.Unlock()

	return c
}
