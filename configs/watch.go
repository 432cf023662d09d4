package configs

import (
	"context"
	"log"
	"sync"

	"fairway/mq"
)

// watcher fans config-change events out to per-client subscriber channels.
type watcher struct {
	mu   sync.Mutex
	subs map[string]map[chan Snapshot]bool
}

var w = &watcher{subs: make(map[string]map[chan Snapshot]bool)}

// StartWatcher consumes the redis config-events channel and re-delivers a
// fresh snapshot to every subscriber of the changed client. Blocks; run in a
// goroutine from main.
func StartWatcher(ctx context.Context) {
	mq.Subscribe(ctx, func(event mq.ConfigEvent) {
		w.mu.Lock()
		n := len(w.subs[event.ClientID])
		w.mu.Unlock()
		if n == 0 {
			return
		}

		snap, err := Get(ctx, event.ClientID)
		if err != nil {
			log.Printf("[Watcher] Failed to load config for %s: %v", event.ClientID, err)
			return
		}
		w.mu.Lock()
		for ch := range w.subs[event.ClientID] {
			select {
			case ch <- snap:
			default:
				// Slow subscriber; it will catch up on the next change.
			}
		}
		w.mu.Unlock()
	})
}

// Subscribe registers for snapshot re-delivery on every change to the
// client's document. The current snapshot is delivered immediately. The
// returned cancel func must be called on teardown.
func Subscribe(ctx context.Context, clientID string) (<-chan Snapshot, func(), error) {
	snap, err := Get(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan Snapshot, 8)
	ch <- snap

	w.mu.Lock()
	if w.subs[clientID] == nil {
		w.subs[clientID] = make(map[chan Snapshot]bool)
	}
	w.subs[clientID][ch] = true
	w.mu.Unlock()

	cancel := func() {
		w.mu.Lock()
		if set := w.subs[clientID]; set != nil {
			if set[ch] {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(w.subs, clientID)
			}
		}
		w.mu.Unlock()
	}
	return ch, cancel, nil
}
