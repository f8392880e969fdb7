// Package input turns raw terminal bytes into player commands.
package input

import (
	"bufio"
	"errors"
	"fmt"
)

// ErrInvalidCommand is returned for keys that map to no command.
var ErrInvalidCommand = errors.New("invalid command")

// Command is a player action decoded from a key press.
type Command int

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdFire
	CmdPause
	CmdStart
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:      "none",
	CmdMoveUp:    "move up",
	CmdMoveDown:  "move down",
	CmdMoveLeft:  "move left",
	CmdMoveRight: "move right",
	CmdFire:      "fire",
	CmdPause:     "pause",
	CmdStart:     "start",
	CmdQuit:      "quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Arrow key escape sequences.
const (
	KeyUp    = "\x1b[A"
	KeyDown  = "\x1b[B"
	KeyRight = "\x1b[C"
	KeyLeft  = "\x1b[D"
)

var keymap = map[string]Command{
	"w": CmdMoveUp, "W": CmdMoveUp, KeyUp: CmdMoveUp,
	"s": CmdMoveDown, "S": CmdMoveDown, KeyDown: CmdMoveDown,
	"a": CmdMoveLeft, "A": CmdMoveLeft, KeyLeft: CmdMoveLeft,
	"d": CmdMoveRight, "D": CmdMoveRight, KeyRight: CmdMoveRight,
	"f": CmdFire, "F": CmdFire, " ": CmdFire,
	"p": CmdPause, "P": CmdPause,
	"\r": CmdStart, "\n": CmdStart,
	"q": CmdQuit, "Q": CmdQuit, "\x03": CmdQuit,
}

// ParseKey maps one key, as produced by ReadKeys, to its command.
func ParseKey(key string) (Command, error) {
	if cmd, ok := keymap[key]; ok {
		return cmd, nil
	}
	return CmdNone, fmt.Errorf("key %q: %w", key, ErrInvalidCommand)
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has been exhausted and every
// buffered byte consumed.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadKeys drains all available bytes from the stream (non-blocking) and
// splits them into keys. CSI sequences such as the arrow keys come back as
// a single key; every other byte is its own key.
func ReadKeys(s *Stream) []string {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return SplitKeys(buf)
}

// SplitKeys splits raw terminal bytes into keys.
func SplitKeys(buf []byte) []string {
	var keys []string
	for i := 0; i < len(buf); i++ {
		if buf[i] == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			keys = append(keys, string(buf[i:i+3]))
			i += 2
			continue
		}
		keys = append(keys, string(buf[i]))
	}
	return keys
}
