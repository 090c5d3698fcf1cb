package tunnel

import "github.com/jask/tunnel/widgets"

// Out is a consumer site. It renders whatever its tunnel last delivered.
//
// Out keeps state between frames, so hosts should reuse the same *Out in the
// widget tree and in the mount list rather than declaring a new one per frame.
type Out struct {
	tunnel  *Tunnel
	content widgets.Widget
	sub     Subscription
	mounted bool
	gen     uint64
}

// NewOut declares a consumer of t.
func NewOut(t *Tunnel) *Out {
	return &Out{tunnel: t}
}

// Attach subscribes to the tunnel. Every notification stores the content and
// invalidates the site through inv. Attaching a mounted Out fails with
// ErrAlreadyAttached.
func (o *Out) Attach(inv Invalidator) (Cleanup, error) {
	if o.mounted {
		return nil, ErrAlreadyAttached
	}
	if inv == nil {
		inv = NopInvalidator
	}
	o.content = o.tunnel.Last()
	o.sub = o.tunnel.Subscribe(func(content widgets.Widget) {
		o.content = content
		inv.Invalidate()
	})
	o.mounted = true
	o.gen++
	gen := o.gen
	return func() { o.detach(gen) }, nil
}

func (o *Out) detach(gen uint64) {
	if !o.mounted || o.gen != gen {
		return
	}
	o.mounted = false
	o.tunnel.Unsubscribe(o.sub)
	o.content = nil
}

// Content returns the last delivered content, nil when there is none.
func (o *Out) Content() widgets.Widget { return o.content }

// Render draws the last delivered content.
func (o *Out) Render(width, height int) string {
	return widgets.Render(o.content, width, height)
}
