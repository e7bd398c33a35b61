// Package notifier broadcasts reload signals to connected viewer pages.
package notifier

import "sync"

// Notifier fans a reload signal out to every subscribed page. Each
// broadcast bumps a generation counter; subscribers receive the latest
// generation and only ever miss intermediate ones.
type Notifier struct {
	mu         sync.RWMutex
	listeners  map[chan uint64]struct{}
	generation uint64
}

// New creates a Notifier with no listeners.
func New() *Notifier {
	return &Notifier{
		listeners: make(map[chan uint64]struct{}),
	}
}

// Subscribe returns a channel receiving the generation of each reload.
// The caller must call Unsubscribe when done.
func (n *Notifier) Subscribe() chan uint64 {
	ch := make(chan uint64, 1)
	n.mu.Lock()
	n.listeners[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a listener channel.
func (n *Notifier) Unsubscribe(ch chan uint64) {
	n.mu.Lock()
	if _, ok := n.listeners[ch]; ok {
		delete(n.listeners, ch)
		close(ch)
	}
	n.mu.Unlock()
}

// Broadcast starts a new generation and signals every listener without
// blocking. A listener with a pending signal gets it replaced by the newest.
func (n *Notifier) Broadcast() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.generation++
	for ch := range n.listeners {
		select {
		case <-ch:
		default:
		}
		ch <- n.generation
	}
	return n.generation
}

// Generation returns the number of broadcasts so far.
func (n *Notifier) Generation() uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.generation
}

// Len returns the number of subscribed listeners.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}
