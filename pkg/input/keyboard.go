package input

import (
	"fmt"
	"io"

	"github.com/eiannone/keyboard"
	"github.com/trytobebee/termsnake/pkg/game"
)

// Raw key bytes
const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// IntentKind is what a key press asks the game to do
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentQuit
)

// Intent is the decoded result of one poll
type Intent struct {
	Kind      IntentKind
	Direction game.Direction // Valid when Kind is IntentMove
}

// ByteSource is a non-blocking byte stream, usually the raw terminal
type ByteSource interface {
	io.Reader
	// Buffered returns how many bytes can be read without blocking
	Buffered() (int, error)
}

// Reader turns pending key bytes into intents, one key per poll
type Reader struct {
	src ByteSource
	buf [2]byte
}

// NewReader creates a reader over src
func NewReader(src ByteSource) *Reader {
	return &Reader{src: src}
}

// Poll returns the intent of the next pending key, or IntentNone right away
// when no key is pending.
//
// An ESC byte starts an arrow sequence only if the two following bytes are
// already buffered. Otherwise any partial tail is discarded and the ESC is
// read as the ESC key, which means quit. A lone ESC press and an arrow
// sequence whose tail arrives late look the same, so the late arrow also quits.
func (r *Reader) Poll() (Intent, error) {
	n, err := r.src.Buffered()
	if err != nil {
		return Intent{}, fmt.Errorf("poll input: %w", err)
	}
	if n == 0 {
		return Intent{}, nil
	}

	c, err := r.readByte()
	if err != nil {
		return Intent{}, err
	}
	if c != keyEsc {
		return ParseKey(c), nil
	}

	n, err = r.src.Buffered()
	if err != nil {
		return Intent{}, fmt.Errorf("poll input: %w", err)
	}
	if n < 2 {
		if n == 1 {
			if _, err := r.readByte(); err != nil {
				return Intent{}, err
			}
		}
		return Intent{Kind: IntentQuit}, nil
	}
	if _, err := io.ReadFull(r.src, r.buf[:]); err != nil {
		return Intent{}, fmt.Errorf("read escape sequence: %w", err)
	}
	return ParseEscape(r.buf[0], r.buf[1]), nil
}

func (r *Reader) readByte() (byte, error) {
	if _, err := io.ReadFull(r.src, r.buf[:1]); err != nil {
		return 0, fmt.Errorf("read key: %w", err)
	}
	return r.buf[0], nil
}

// ParseKey maps a single key byte to an intent
func ParseKey(c byte) Intent {
	switch c {
	case 'w', 'W':
		return move(game.Up)
	case 's', 'S':
		return move(game.Down)
	case 'a', 'A':
		return move(game.Left)
	case 'd', 'D':
		return move(game.Right)
	case 'q', 'Q', keyEsc, keyCtrlC:
		return Intent{Kind: IntentQuit}
	}
	return Intent{}
}

// ParseEscape maps the two bytes after ESC. Only CSI arrows move; any other
// sequence is treated as the ESC key.
func ParseEscape(b0, b1 byte) Intent {
	if b0 == '[' {
		switch b1 {
		case 'A':
			return move(game.Up)
		case 'B':
			return move(game.Down)
		case 'C':
			return move(game.Right)
		case 'D':
			return move(game.Left)
		}
	}
	return Intent{Kind: IntentQuit}
}

func move(d game.Direction) Intent {
	return Intent{Kind: IntentMove, Direction: d}
}

// WaitAnyKey blocks until a single key is pressed. It manages its own raw
// mode, so the caller must have released the terminal first.
func WaitAnyKey() error {
	if _, _, err := keyboard.GetSingleKey(); err != nil {
		return fmt.Errorf("wait for key: %w", err)
	}
	return nil
}
