package tui

import (
	"bufio"
	"io"

	"github.com/thruflo/sortvis/internal/engine"
)

// Key represents a keyboard input.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyRune
)

// KeyEvent represents a key press event.
type KeyEvent struct {
	Key  Key
	Rune rune // Only valid when Key == KeyRune
}

// KeyReader decodes key presses from a raw terminal.
type KeyReader struct {
	reader *bufio.Reader
}

// NewKeyReader creates a KeyReader over r, normally stdin in raw mode.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{reader: bufio.NewReaderSize(r, 64)}
}

// ReadKey blocks until one key press has been decoded.
func (k *KeyReader) ReadKey() (KeyEvent, error) {
	b, err := k.reader.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch {
	case b == 0x03:
		return KeyEvent{Key: KeyCtrlC}, nil
	case b == 0x0D || b == 0x0A:
		return KeyEvent{Key: KeyEnter}, nil
	case b == 0x1B:
		return k.readEscape()
	case b >= 0x20 && b < 0x7F:
		return KeyEvent{Key: KeyRune, Rune: rune(b)}, nil
	default:
		return KeyEvent{Key: KeyUnknown}, nil
	}
}

// readEscape tells a bare Esc from an arrow-key sequence. Terminals send
// the whole sequence in one write, so anything not already buffered is
// treated as a lone Esc.
func (k *KeyReader) readEscape() (KeyEvent, error) {
	if k.reader.Buffered() == 0 {
		return KeyEvent{Key: KeyEscape}, nil
	}

	prefix, err := k.reader.ReadByte()
	if err != nil {
		return KeyEvent{Key: KeyEscape}, nil
	}
	if prefix != '[' && prefix != 'O' {
		_ = k.reader.UnreadByte()
		return KeyEvent{Key: KeyEscape}, nil
	}

	b, err := k.reader.ReadByte()
	if err != nil {
		return KeyEvent{Key: KeyEscape}, nil
	}
	switch b {
	case 'A':
		return KeyEvent{Key: KeyUp}, nil
	case 'B':
		return KeyEvent{Key: KeyDown}, nil
	case 'C':
		return KeyEvent{Key: KeyRight}, nil
	case 'D':
		return KeyEvent{Key: KeyLeft}, nil
	}

	// Swallow the rest of an unrecognised sequence.
	for next := b; k.reader.Buffered() > 0; {
		if (next >= 'A' && next <= 'Z') || next == '~' {
			break
		}
		next, _ = k.reader.ReadByte()
	}
	return KeyEvent{Key: KeyUnknown}, nil
}

// Intent is what a key press asks the visualizer to do.
type Intent int

const (
	IntentNone Intent = iota
	IntentSelect
	IntentStart // start, resume, or fast-forward a running sort
	IntentPause
	IntentShuffle
	IntentFaster
	IntentSlower
	IntentResize
	IntentSound
	IntentQuit
)

// String returns the string representation of the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentSelect:
		return "select"
	case IntentStart:
		return "start"
	case IntentPause:
		return "pause"
	case IntentShuffle:
		return "shuffle"
	case IntentFaster:
		return "faster"
	case IntentSlower:
		return "slower"
	case IntentResize:
		return "resize"
	case IntentSound:
		return "sound"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a decoded key press.
type Command struct {
	Intent Intent
	Kind   engine.Kind // Only valid when Intent == IntentSelect
}

// selectKeys maps the algorithm hot keys to their kinds.
var selectKeys = map[rune]engine.Kind{
	'b': engine.Bubble,
	'e': engine.Shell,
	'q': engine.Quick,
	'h': engine.Heap,
	'c': engine.Cocktail,
	'm': engine.Merge,
	'l': engine.Selection,
	'i': engine.Insertion,
	'g': engine.Gnome,
}

// SelectKey returns the key that selects k, or 0 if none does.
func SelectKey(k engine.Kind) rune {
	for r, kind := range selectKeys {
		if kind == k {
			return r
		}
	}
	return 0
}

// ParseCommand converts a KeyEvent to a Command.
func ParseCommand(ev KeyEvent) Command {
	switch ev.Key {
	case KeyEscape, KeyCtrlC:
		return Command{Intent: IntentQuit}
	case KeyEnter:
		return Command{Intent: IntentStart}
	case KeyUp, KeyRight:
		return Command{Intent: IntentFaster}
	case KeyDown, KeyLeft:
		return Command{Intent: IntentSlower}
	case KeyRune:
	default:
		return Command{}
	}

	r := ev.Rune
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if k, ok := selectKeys[r]; ok {
		return Command{Intent: IntentSelect, Kind: k}
	}
	switch r {
	case ' ':
		return Command{Intent: IntentStart}
	case 'p':
		return Command{Intent: IntentPause}
	case 's':
		return Command{Intent: IntentShuffle}
	case '+', '=':
		return Command{Intent: IntentFaster}
	case '-', '_':
		return Command{Intent: IntentSlower}
	case 'r':
		return Command{Intent: IntentResize}
	case 'x':
		return Command{Intent: IntentSound}
	}
	return Command{}
}
