package core

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"slices"

	"github.com/jask/tunnel/tunnel"
)

// Node declares a site that should stay mounted under Key.
type Node struct {
	Key  string
	Site tunnel.Site
}

type mountedNode struct {
	key     string
	site    tunnel.Site
	cleanup tunnel.Cleanup
	inv     *nodeInvalidator
}

// MountTree is the host runtime for tunnel sites. Each Commit brings the set
// of mounted sites in line with a declaration list: cleanups run first, in
// reverse mount order, then attaches and in-place updates in declaration
// order.
//
// A MountTree is not safe for concurrent use.
type MountTree struct {
	nodes      []*mountedNode
	dirty      map[string]bool
	dirtyOrder []string
	log        *slog.Logger
}

func NewMountTree(log *slog.Logger) *MountTree {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &MountTree{dirty: map[string]bool{}, log: log}
}

// Commit mounts next. Keys must be unique and non-empty and a site may be
// declared under one key only; otherwise nothing changes. The first Attach error stops further attaches and updates, keeps
// whatever is already mounted, and is returned wrapped with the node key.
func (t *MountTree) Commit(next []Node) error {
	index := make(map[string]int, len(next))
	owners := make(map[tunnel.Site]string, len(next))
	for i, n := range next {
		if n.Key == "" {
			return fmt.Errorf("commit: node %d has no key", i)
		}
		if n.Site == nil {
			return fmt.Errorf("commit: node %q has no site", n.Key)
		}
		if _, dup := index[n.Key]; dup {
			return fmt.Errorf("commit: duplicate key %q", n.Key)
		}
		index[n.Key] = i
		if !reflect.TypeOf(n.Site).Comparable() {
			continue
		}
		if owner, dup := owners[n.Site]; dup {
			return fmt.Errorf("commit: site declared under %q and %q", owner, n.Key)
		}
		owners[n.Site] = n.Key
	}

	kept := make(map[string]*mountedNode, len(t.nodes))
	for i := len(t.nodes) - 1; i >= 0; i-- {
		node := t.nodes[i]
		if j, ok := index[node.key]; ok && keeps(node.site, next[j].Site) {
			kept[node.key] = node
			continue
		}
		t.detach(node)
	}

	nodes := make([]*mountedNode, 0, len(next))
	var failed error
	for _, n := range next {
		if node, ok := kept[n.Key]; ok {
			if failed == nil && !sameSite(node.site, n.Site) {
				node.site.(tunnel.Updater).Update(n.Site)
				t.log.Debug("mount: updated", "key", n.Key)
			}
			nodes = append(nodes, node)
			continue
		}
		if failed != nil {
			continue
		}
		node := &mountedNode{key: n.Key, site: n.Site}
		node.inv = &nodeInvalidator{tree: t, key: n.Key, live: true}
		cleanup, err := n.Site.Attach(node.inv)
		if err != nil {
			node.inv.live = false
			t.log.Error("mount: attach failed", "key", n.Key, "error", err)
			failed = fmt.Errorf("attach %s: %w", n.Key, err)
			continue
		}
		node.cleanup = cleanup
		nodes = append(nodes, node)
		t.log.Debug("mount: attached", "key", n.Key)
	}
	t.nodes = nodes
	t.pruneDirty()
	return failed
}

// Teardown detaches every mounted site in reverse mount order.
func (t *MountTree) Teardown() {
	for i := len(t.nodes) - 1; i >= 0; i-- {
		t.detach(t.nodes[i])
	}
	t.nodes = nil
	t.pruneDirty()
}

// Keys lists the mounted keys in mount order.
func (t *MountTree) Keys() []string {
	out := make([]string, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, n.key)
	}
	return out
}

// Dirty lists keys invalidated since the last ClearDirty, first invalidation
// first. Repeated invalidations of one key are coalesced.
func (t *MountTree) Dirty() []string {
	return append([]string(nil), t.dirtyOrder...)
}

func (t *MountTree) ClearDirty() {
	clear(t.dirty)
	t.dirtyOrder = t.dirtyOrder[:0]
}

// pruneDirty forgets invalidations of keys that are no longer mounted.
func (t *MountTree) pruneDirty() {
	mounted := make(map[string]bool, len(t.nodes))
	for _, n := range t.nodes {
		mounted[n.key] = true
	}
	t.dirtyOrder = slices.DeleteFunc(t.dirtyOrder, func(key string) bool {
		if mounted[key] {
			return false
		}
		delete(t.dirty, key)
		return true
	})
}

func (t *MountTree) detach(node *mountedNode) {
	if node.inv != nil {
		node.inv.live = false
	}
	if node.cleanup != nil {
		node.cleanup()
		node.cleanup = nil
	}
	t.log.Debug("mount: detached", "key", node.key)
}

func (t *MountTree) invalidate(key string) {
	if t.dirty[key] {
		return
	}
	t.dirty[key] = true
	t.dirtyOrder = append(t.dirtyOrder, key)
}

type nodeInvalidator struct {
	tree *MountTree
	key  string
	live bool
}

func (n *nodeInvalidator) Invalidate() {
	if n.live {
		n.tree.invalidate(n.key)
	}
}

func keeps(current, next tunnel.Site) bool {
	if sameSite(current, next) {
		return true
	}
	u, ok := current.(tunnel.Updater)
	return ok && u.Accepts(next)
}

func sameSite(a, b tunnel.Site) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
