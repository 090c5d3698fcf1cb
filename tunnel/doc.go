// Package tunnel relocates rendered content across a widget tree without
// changing the tree's structure.
//
// A [Tunnel] connects exactly one active producer site ([In]) with any number
// of consumer sites ([Out], [Presence]). The producer publishes a widget; every
// consumer renders the most recently published widget wherever it sits in the
// tree:
//
//	toolbar := tunnel.New()
//	header := tunnel.NewOut(toolbar)           // mounted in the app header
//	source := tunnel.NewIn(toolbar, widgets.Text("3 unread"))
//
// Sites are driven by a host runtime through [Site.Attach] and the returned
// [Cleanup]. Attaching a second producer to a tunnel that already has one
// fails with [ErrMultipleSources].
//
// Delivery is synchronous and single threaded. A Tunnel and its sites are not
// safe for concurrent use; drive them from the UI update loop.
//
// By default a tunnel does not remember what it last delivered: a consumer
// that attaches after the producer shows nothing until the next publish.
// [WithReplay] changes that.
package tunnel
