//go:build linux || darwin

package terminal

import (
	"os"
	"testing"
)

func newPipe(t *testing.T) (r, w *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}

// TestOpenRejectsNonTerminal checks that raw mode setup fails cleanly
func TestOpenRejectsNonTerminal(t *testing.T) {
	r, _ := newPipe(t)
	if _, err := Open(r); err == nil {
		t.Error("Expected raw mode to fail on a pipe")
	}
}

// TestBufferedAndDrain checks the pending-byte probe
func TestBufferedAndDrain(t *testing.T) {
	r, w := newPipe(t)
	tty := &Terminal{in: r, fd: int(r.Fd())}

	if n, err := tty.Buffered(); err != nil || n != 0 {
		t.Fatalf("Empty pipe: Buffered() = %d, %v", n, err)
	}

	if _, err := w.Write([]byte("wasd")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if n, err := tty.Buffered(); err != nil || n != 4 {
		t.Fatalf("Buffered() = %d, %v, want 4", n, err)
	}

	buf := make([]byte, 1)
	if _, err := tty.Read(buf); err != nil || buf[0] != 'w' {
		t.Fatalf("Read() = %q, %v", buf, err)
	}

	if err := tty.Drain(); err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if n, _ := tty.Buffered(); n != 0 {
		t.Errorf("Expected no bytes after drain, got %d", n)
	}
}

// TestRestoreIsIdempotent checks that repeated restores are safe
func TestRestoreIsIdempotent(t *testing.T) {
	r, _ := newPipe(t)
	tty := &Terminal{in: r, fd: int(r.Fd())}
	for i := 0; i < 3; i++ {
		if err := tty.Restore(); err != nil {
			t.Errorf("Restore %d: %v", i, err)
		}
	}
}

// TestRestoreOnSignalStop checks that stop can be called more than once
func TestRestoreOnSignalStop(t *testing.T) {
	called := false
	stop := RestoreOnSignal(func() { called = true })
	stop()
	stop()
	if called {
		t.Error("Cleanup ran without a signal")
	}
}
