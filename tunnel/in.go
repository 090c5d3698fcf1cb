package tunnel

import "github.com/jask/tunnel/widgets"

// In is a producer site. While attached it is the only producer of its
// tunnel and pushes its content to every consumer.
type In struct {
	tunnel  *Tunnel
	content widgets.Widget
	active  bool
	// gen counts attaches so a cleanup only undoes the attach that returned it.
	gen uint64
}

// NewIn declares a producer publishing content into t.
func NewIn(t *Tunnel, content widgets.Widget) *In {
	return &In{tunnel: t, content: content}
}

// Tunnel returns the tunnel the site publishes into.
func (in *In) Tunnel() *Tunnel { return in.tunnel }

// Content returns the content the site wants published.
func (in *In) Content() widgets.Widget { return in.content }

// Active reports whether the site currently holds the producer slot.
func (in *In) Active() bool { return in.active }

// Attach claims the producer slot and publishes the current content. It fails
// with ErrMultipleSources, without touching the tunnel, when another producer
// is attached.
func (in *In) Attach(Invalidator) (Cleanup, error) {
	t := in.tunnel
	if t.activeSource {
		t.log.Debug("tunnel: rejected second producer", t.logAttrs()...)
		return nil, ErrMultipleSources
	}
	t.activeSource = true
	in.active = true
	in.gen++
	gen := in.gen
	t.log.Debug("tunnel: producer attached", t.logAttrs()...)
	t.NotifyAll(in.content)
	return func() { in.detach(gen) }, nil
}

func (in *In) detach(gen uint64) {
	if !in.active || in.gen != gen {
		return
	}
	t := in.tunnel
	in.active = false
	t.activeSource = false
	t.log.Debug("tunnel: producer detached", t.logAttrs()...)
	t.NotifyAll(nil)
}

// SetContent replaces the published content. Attached sites notify every
// consumer immediately; detached sites publish it on the next Attach.
func (in *In) SetContent(content widgets.Widget) {
	in.content = content
	if in.active {
		in.tunnel.NotifyAll(content)
	}
}

// Accepts reports whether next is a producer for the same tunnel.
func (in *In) Accepts(next Site) bool {
	n, ok := next.(*In)
	return ok && n.tunnel == in.tunnel
}

// Update takes over the content of next.
func (in *In) Update(next Site) {
	if n, ok := next.(*In); ok {
		in.SetContent(n.content)
	}
}

// Render draws nothing: the content shows up at the consumers instead.
func (in *In) Render(int, int) string { return "" }
