package tunnel

import "errors"

// ErrMultipleSources is returned by In.Attach when the tunnel already has an
// active producer. It is a programming error: use a second tunnel or gate one
// of the producers.
var ErrMultipleSources = errors.New("tunnel: multiple active producers for the same tunnel")

// ErrAlreadyAttached is returned by Out.Attach and Presence.Attach when the
// site is still mounted from an earlier Attach.
var ErrAlreadyAttached = errors.New("tunnel: site is already attached")
