package tunnel

// Cleanup undoes an Attach. Hosts call it exactly once, before the site is
// removed or attached again.
type Cleanup func()

// Invalidator is the host's re-render trigger for one mounted site. It must
// be safe to call from inside a notification.
type Invalidator interface {
	Invalidate()
}

// Site is a construct mounted by a host runtime. Attach runs after the site
// is committed to the tree.
type Site interface {
	Attach(inv Invalidator) (Cleanup, error)
}

// Updater is implemented by sites that can absorb a new declaration of
// themselves without being detached.
type Updater interface {
	Site
	// Accepts reports whether next can be applied in place.
	Accepts(next Site) bool
	// Update applies next. Only called when Accepts returned true.
	Update(next Site)
}

type nopInvalidator struct{}

func (nopInvalidator) Invalidate() {}

// NopInvalidator ignores invalidations. Useful for sites that do not render.
var NopInvalidator Invalidator = nopInvalidator{}
