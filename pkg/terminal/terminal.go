//go:build linux || darwin

// Package terminal puts the controlling terminal into raw mode for the game
// loop and guarantees it is put back.
package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is a raw-mode input terminal
type Terminal struct {
	in    *os.File
	fd    int
	state *term.State
	once  sync.Once
	err   error
}

// Open switches in to raw mode: no line buffering, no echo
func Open(in *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	return &Terminal{in: in, fd: fd, state: state}, nil
}

// Buffered returns how many input bytes are pending
func (t *Terminal) Buffered() (int, error) {
	n, err := unix.IoctlGetInt(t.fd, fionread)
	if err != nil {
		return 0, fmt.Errorf("query pending input: %w", err)
	}
	return n, nil
}

// Read reads pending bytes. Callers only read what Buffered reported, so it
// does not block.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Drain discards any pending input
func (t *Terminal) Drain() error {
	n, err := t.Buffered()
	if err != nil || n == 0 {
		return err
	}
	_, err = t.in.Read(make([]byte, n))
	return err
}

// Restore puts the terminal back into its original mode. Only the first call
// has an effect.
func (t *Terminal) Restore() error {
	t.once.Do(func() {
		if t.state != nil {
			t.err = term.Restore(t.fd, t.state)
		}
	})
	return t.err
}

// RestoreOnSignal runs cleanup and exits with 128+signal when the process is
// interrupted, terminated or hung up. The returned stop func removes the hook.
func RestoreOnSignal(cleanup func()) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		select {
		case sig := <-sigs:
			cleanup()
			code := 1
			if s, ok := sig.(syscall.Signal); ok {
				code = 128 + int(s)
			}
			os.Exit(code)
		case <-done:
		}
	}()

	var stopOnce sync.Once
	return func() {
		stopOnce.Do(func() {
			signal.Stop(sigs)
			close(done)
		})
	}
}
