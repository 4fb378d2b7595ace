package cli

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignalHandler_CancelsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewSignalHandler(cancel)
	h.StartWithNotify(false)
	defer h.Stop()

	h.Deliver(syscall.SIGINT)

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled after signal")
	}
}

func TestSignalHandler_StopWithoutSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewSignalHandler(cancel)
	h.StartWithNotify(false)
	h.Stop()

	assert.NoError(t, ctx.Err(), "stopping must not cancel the context")
}

func TestSignalHandler_StopIsIdempotent(t *testing.T) {
	h := NewSignalHandler(nil)
	h.StartWithNotify(false)

	h.Stop()
	h.Stop()
}
