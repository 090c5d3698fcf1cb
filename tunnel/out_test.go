package tunnel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tunnel/widgets"
)

type countingInvalidator struct{ n int }

func (c *countingInvalidator) Invalidate() { c.n++ }

func TestOutStartsEmptyAndRendersLatest(t *testing.T) {
	tn := New()
	out := NewOut(tn)
	inv := &countingInvalidator{}
	_, err := out.Attach(inv)
	require.NoError(t, err)
	require.Nil(t, out.Content())
	require.Empty(t, out.Render(10, 1))

	_, err = NewIn(tn, widgets.Text("X")).Attach(NopInvalidator)
	require.NoError(t, err)

	require.Equal(t, widgets.Text("X"), out.Content())
	require.Equal(t, "X", out.Render(10, 1))
	require.Equal(t, 1, inv.n)
}

func TestOutDetachStopsUpdates(t *testing.T) {
	tn := New()
	out := NewOut(tn)
	cleanup, err := out.Attach(nil)
	require.NoError(t, err)
	require.Equal(t, 1, tn.Len())

	cleanup()
	require.Equal(t, 0, tn.Len())

	_, err = NewIn(tn, widgets.Text("X")).Attach(NopInvalidator)
	require.NoError(t, err)
	require.Nil(t, out.Content())

	require.NotPanics(t, func() { cleanup() })
}

func TestLateOutWaitsForNextPublish(t *testing.T) {
	tn := New()
	in := NewIn(tn, widgets.Text("A"))
	_, err := in.Attach(NopInvalidator)
	require.NoError(t, err)

	out := NewOut(tn)
	_, err = out.Attach(nil)
	require.NoError(t, err)
	require.Nil(t, out.Content())

	in.SetContent(widgets.Text("B"))
	require.Equal(t, widgets.Text("B"), out.Content())
}

func TestLateOutSeedsFromReplay(t *testing.T) {
	tn := New(WithReplay())
	in := NewIn(tn, widgets.Text("A"))
	cleanup, err := in.Attach(NopInvalidator)
	require.NoError(t, err)

	out := NewOut(tn)
	_, err = out.Attach(nil)
	require.NoError(t, err)
	require.Equal(t, widgets.Text("A"), out.Content())

	cleanup()
	late := NewOut(tn)
	_, err = late.Attach(nil)
	require.NoError(t, err)
	require.Nil(t, late.Content())
}

func TestOutsConverge(t *testing.T) {
	tn := New()
	a, b := NewOut(tn), NewOut(tn)
	_, err := a.Attach(nil)
	require.NoError(t, err)
	_, err = b.Attach(nil)
	require.NoError(t, err)

	in := NewIn(tn, widgets.Text("A"))
	cleanup, err := in.Attach(NopInvalidator)
	require.NoError(t, err)
	require.Equal(t, a.Content(), b.Content())

	in.SetContent(widgets.Text("B"))
	require.Equal(t, widgets.Text("B"), a.Content())
	require.Equal(t, a.Content(), b.Content())

	cleanup()
	require.Nil(t, a.Content())
	require.Nil(t, b.Content())
}

func TestOutUnsubscribedByPeerDuringPassMissesIt(t *testing.T) {
	tn := New()
	victim := NewOut(tn)
	var victimCleanup Cleanup
	tn.Subscribe(func(widgets.Widget) {
		if victimCleanup != nil {
			victimCleanup()
		}
	})
	victimCleanup, _ = victim.Attach(nil)

	_, err := NewIn(tn, widgets.Text("X")).Attach(NopInvalidator)
	require.NoError(t, err)
	require.Nil(t, victim.Content())
}

func TestStaleCleanupDoesNotDetachReattachedOut(t *testing.T) {
	tn := New()
	out := NewOut(tn)
	first, err := out.Attach(nil)
	require.NoError(t, err)
	first()

	second, err := out.Attach(nil)
	require.NoError(t, err)
	first()
	require.Equal(t, 1, tn.Len())

	_, err = NewIn(tn, widgets.Text("X")).Attach(NopInvalidator)
	require.NoError(t, err)
	require.Equal(t, widgets.Text("X"), out.Content())

	second()
	require.Equal(t, 0, tn.Len())
	require.Nil(t, out.Content())
}

func TestAttachingMountedOutFails(t *testing.T) {
	tn := New()
	out := NewOut(tn)
	cleanup, err := out.Attach(nil)
	require.NoError(t, err)

	again, err := out.Attach(nil)
	require.ErrorIs(t, err, ErrAlreadyAttached)
	require.Nil(t, again)
	require.Equal(t, 1, tn.Len())

	cleanup()
	require.Equal(t, 0, tn.Len())
}
