package tunnel

import "github.com/jask/tunnel/widgets"

// Presence tracks whether a tunnel currently carries content, without keeping
// the content itself. Hosts use it to hide the area an Out would occupy.
type Presence struct {
	tunnel  *Tunnel
	present bool
	sub     Subscription
	mounted bool
	gen     uint64
}

// NewPresence declares an activity query on t.
func NewPresence(t *Tunnel) *Presence {
	return &Presence{tunnel: t}
}

// Attach subscribes to the tunnel like Out.Attach, recording only whether
// each notification carried content.
func (p *Presence) Attach(inv Invalidator) (Cleanup, error) {
	if p.mounted {
		return nil, ErrAlreadyAttached
	}
	if inv == nil {
		inv = NopInvalidator
	}
	p.present = p.tunnel.Last() != nil
	p.sub = p.tunnel.Subscribe(func(content widgets.Widget) {
		p.present = content != nil
		inv.Invalidate()
	})
	p.mounted = true
	p.gen++
	gen := p.gen
	return func() { p.detach(gen) }, nil
}

func (p *Presence) detach(gen uint64) {
	if !p.mounted || p.gen != gen {
		return
	}
	p.mounted = false
	p.tunnel.Unsubscribe(p.sub)
	p.present = false
}

// Present reports whether the last notification carried content.
func (p *Presence) Present() bool { return p.present }
