package ui

import "sync"

// Flash collects alert messages raised during request handling and hands
// them to the next page render. It implements browser.Alerter.
type Flash struct {
	mu   sync.Mutex
	msgs []string
}

// NewFlash creates an empty flash buffer.
func NewFlash() *Flash {
	return &Flash{}
}

// Alert queues a message for display.
func (f *Flash) Alert(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, message)
}

// Drain returns the queued messages and clears the buffer.
func (f *Flash) Drain() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs := f.msgs
	f.msgs = nil
	return msgs
}
