package store

import (
	"context"
	"sync"
)

// hub fans written keys out to subscribers. Channels are buffered; a full
// channel drops the notification so writers never block on a slow reader.
type hub struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[chan string]struct{})}
}

func (h *hub) subscribe(ctx context.Context) <-chan string {
	ch := make(chan string, 16)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}()

	return ch
}

func (h *hub) broadcast(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- key:
		default:
		}
	}
}
