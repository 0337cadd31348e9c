package sync

import "sync"

// Status is the orchestrator's externally visible phase.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSyncing Status = "syncing"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is published on every orchestrator transition. LastResult is nil
// until the first pass completes.
type State struct {
	LastResult *Result
	Status     Status
}

// stateBroadcaster fans State changes out to any number of subscribers.
// Channels are buffered with the latest value; a slow reader misses
// intermediate transitions but always sees the newest state.
type stateBroadcaster struct {
	mu   sync.Mutex
	subs []chan State
}

func (b *stateBroadcaster) subscribe() <-chan State {
	ch := make(chan State, 1)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

func (b *stateBroadcaster) publish(state State) {
	b.mu.Lock()
	subs := b.subs
	b.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- state:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- state:
			default:
			}
		}
	}
}
