package browser

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestOpenCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := NewPlaywright(true, time.Second).Open(ctx)
	if s != nil {
		t.Error("Open() returned a session for a cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Open() error = %v, want context.Canceled", err)
	}
}

func TestPlaywrightImplementsEngine(t *testing.T) {
	var _ Engine = NewPlaywright(true, time.Second)
}

func TestInterruptibleAbortsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	aborted := make(chan struct{})

	err := interruptible(ctx, func() { close(aborted) }, func() error {
		cancel()
		select {
		case <-aborted:
			return errors.New("page closed")
		case <-time.After(5 * time.Second):
			return errors.New("abort was never called")
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("interruptible() error = %v, want context.Canceled", err)
	}
}

func TestInterruptibleCompletes(t *testing.T) {
	abortCalls := 0
	want := errors.New("timeout 30000ms exceeded")

	err := interruptible(context.Background(), func() { abortCalls++ }, func() error {
		return want
	})

	if !errors.Is(err, want) {
		t.Errorf("interruptible() error = %v, want %v", err, want)
	}
	if abortCalls != 0 {
		t.Errorf("abort called %d times, want 0", abortCalls)
	}
}

func TestInterruptibleAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := interruptible(ctx, func() {}, func() error {
		ran = true
		return nil
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("interruptible() error = %v, want context.Canceled", err)
	}
	if ran {
		t.Error("fn ran despite a cancelled context")
	}
}
