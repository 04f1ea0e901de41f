package platform

import "github.com/foxyfoxza/ringcentral-go/client"

// AuthRefreshCallback observes the parsed response of an auth-endpoint
// round trip.
type AuthRefreshCallback func(*client.Response)

// OnAuthRefresh registers a callback invoked after every auth-endpoint
// round trip, success or failure. Callbacks run on the goroutine driving
// the auth flow and must not call back into the Platform.
func (p *Platform) OnAuthRefresh(cb AuthRefreshCallback) {
	p.muListeners.Lock()
	defer p.muListeners.Unlock()
	p.callbacks = append(p.callbacks, cb)
}

// SubscribeAuthRefresh returns a channel of auth-endpoint round trip
// results and an unsubscribe function. The channel is buffered; a slow
// consumer misses events rather than stalling the session manager.
func (p *Platform) SubscribeAuthRefresh() (<-chan *client.Response, func()) {
	p.muListeners.Lock()
	defer p.muListeners.Unlock()

	ch := make(chan *client.Response, 10)
	p.listeners = append(p.listeners, ch)

	unsub := func() {
		p.muListeners.Lock()
		defer p.muListeners.Unlock()

		out := p.listeners[:0]
		for _, c := range p.listeners {
			if c != ch {
				out = append(out, c)
			}
		}
		p.listeners = out
		close(ch)
	}

	return ch, unsub
}

func (p *Platform) publishAuthRefresh(resp *client.Response) {
	p.muListeners.Lock()
	callbacks := append([]AuthRefreshCallback(nil), p.callbacks...)
	p.muListeners.Unlock()

	// Callbacks run outside the lock so they may subscribe or unsubscribe.
	for _, cb := range callbacks {
		cb(resp)
	}

	// Channel sends stay under the lock: unsubscribe closes a channel under
	// the same lock, so no send can hit a closed channel. The sends are
	// non-blocking, keeping the hold bounded.
	p.muListeners.Lock()
	defer p.muListeners.Unlock()
	for _, ch := range p.listeners {
		select {
		case ch <- resp:
		default:
		}
	}
}
