package tunnel

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/jask/tunnel/widgets"
)

// Tunnel is the shared registry between one producer and its consumers.
// The zero value is not usable; create tunnels with New.
type Tunnel struct {
	name         string
	subscribers  []*subscriber
	activeSource bool
	replay       bool
	last         widgets.Widget
	log          *slog.Logger
}

type subscriber struct {
	id     uuid.UUID
	fn     func(widgets.Widget)
	active bool
}

// Subscription identifies one registered callback.
type Subscription struct {
	id uuid.UUID
	t  *Tunnel
}

// ID returns the opaque token of the subscription.
func (s Subscription) ID() uuid.UUID { return s.id }

// Unsubscribe removes the callback. Safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.t != nil {
		s.t.Unsubscribe(s)
	}
}

// New creates an empty tunnel with no active producer.
func New(opts ...Option) *Tunnel {
	t := &Tunnel{log: discardLogger()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Subscribe registers fn for every following notification. It does not call
// fn with the current content.
func (t *Tunnel) Subscribe(fn func(widgets.Widget)) Subscription {
	sub := &subscriber{id: uuid.New(), fn: fn, active: true}
	t.subscribers = append(t.subscribers, sub)
	return Subscription{id: sub.id, t: t}
}

// Unsubscribe removes the callback registered under sub. Unknown or already
// removed subscriptions are ignored.
func (t *Tunnel) Unsubscribe(sub Subscription) {
	for i, s := range t.subscribers {
		if s.id != sub.id {
			continue
		}
		s.active = false
		t.subscribers = slices.Delete(t.subscribers, i, i+1)
		return
	}
}

// NotifyAll delivers content to every current subscriber, synchronously.
// Callbacks removed during the pass are skipped; callbacks added during the
// pass wait for the next one.
func (t *Tunnel) NotifyAll(content widgets.Widget) {
	if t.replay {
		t.last = content
	}
	if len(t.subscribers) == 0 {
		return
	}
	pass := make([]*subscriber, len(t.subscribers))
	copy(pass, t.subscribers)
	for _, s := range pass {
		if !s.active {
			continue
		}
		s.fn(content)
	}
}

// HasActiveSource reports whether a producer is attached.
func (t *Tunnel) HasActiveSource() bool { return t.activeSource }

// Len returns the number of registered subscribers.
func (t *Tunnel) Len() int { return len(t.subscribers) }

// Last returns the retained content of a replaying tunnel, or nil.
func (t *Tunnel) Last() widgets.Widget { return t.last }

func (t *Tunnel) logAttrs() []any {
	if t.name == "" {
		return nil
	}
	return []any{"tunnel", t.name}
}
