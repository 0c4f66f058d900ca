package walletsync

import (
	"strings"
	"sync"
)

// AccountEvent reports the live wallet account. An empty Account means the
// wallet disconnected or exposes no account.
type AccountEvent struct {
	Account string
}

// Connected reports whether the event carries an account
func (e AccountEvent) Connected() bool {
	return e.Account != ""
}

// Feed fans out account changes to subscribers. Subscribers only need the
// latest account, so a slow subscriber has stale events replaced rather than
// blocking Publish.
type Feed struct {
	mu      sync.Mutex
	subs    map[int]chan AccountEvent
	next    int
	current string
	closed  bool
}

// NewFeed creates a Feed with no connected account
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]chan AccountEvent)}
}

// Subscribe returns a channel of account events and a function that cancels
// the subscription. A connected account is delivered immediately.
func (f *Feed) Subscribe(buffer int) (<-chan AccountEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan AccountEvent, buffer)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		close(ch)
		return ch, func() {}
	}

	id := f.next
	f.next++
	f.subs[id] = ch
	if f.current != "" {
		ch <- AccountEvent{Account: f.current}
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if sub, ok := f.subs[id]; ok {
				delete(f.subs, id)
				close(sub)
			}
		})
	}
}

// Publish sets the live account and notifies every subscriber
func (f *Feed) Publish(account string) {
	account = strings.TrimSpace(account)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.current = account

	ev := AccountEvent{Account: account}
	for _, ch := range f.subs {
		for {
			select {
			case ch <- ev:
			default:
				// drop the oldest pending event and retry
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}

// Current returns the last published account
func (f *Feed) Current() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Close ends every subscription
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}
