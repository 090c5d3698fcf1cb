package tunnel

import (
	"io"
	"log/slog"
)

// Option configures a Tunnel.
type Option func(*Tunnel)

// WithReplay makes the tunnel retain the last published content so consumer
// sites attaching later start from it instead of nil.
func WithReplay() Option {
	return func(t *Tunnel) {
		t.replay = true
	}
}

// WithLogger sets the logger used for producer lifecycle events.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tunnel) {
		if log != nil {
			t.log = log
		}
	}
}

// WithName labels the tunnel in log output.
func WithName(name string) Option {
	return func(t *Tunnel) {
		t.name = name
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
