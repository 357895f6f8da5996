package cli

import (
	"strconv"
	"unicode/utf8"

	"github.com/phroun/purfectedit"
)

// InputParser turns raw bytes from the host terminal into engine input.
// It is stateful: incomplete escape sequences and split UTF-8 runes are
// carried over to the next Feed call, and the pointer button state persists
// across frames so drags keep reporting a held button.
type InputParser struct {
	pending []byte

	mouseDown bool
	mouseX    float64
	mouseY    float64
}

// Batch is the engine input collected from one chunk of terminal input,
// plus a quit request for Ctrl+C / Ctrl+Q.
type Batch struct {
	Keys    []purfectedit.KeyEvent
	Chars   []rune
	Pointer purfectedit.Pointer
	Command bool
	Option  bool
	Quit    bool
}

// NewInputParser creates an empty parser.
func NewInputParser() *InputParser {
	return &InputParser{pending: make([]byte, 0, 64)}
}

// Feed consumes a chunk of raw input and returns the resulting batch. The
// pointer state always reflects the latest mouse report, held across calls.
func (p *InputParser) Feed(data []byte) Batch {
	p.pending = append(p.pending, data...)

	var b Batch
	for len(p.pending) > 0 {
		n := p.parseOne(&b)
		if n == 0 {
			break // incomplete sequence, wait for more bytes
		}
		p.pending = p.pending[n:]
	}

	b.Pointer.X = p.mouseX
	b.Pointer.Y = p.mouseY
	b.Pointer.Pressed = p.mouseDown
	return b
}

// Flush resolves a pending lone ESC as the Escape key. The frame loop calls
// this when no further bytes arrived within the escape timeout.
func (p *InputParser) Flush(b *Batch) {
	if len(p.pending) == 1 && p.pending[0] == 0x1b {
		pressKey(b, purfectedit.KeyEscape)
		p.pending = p.pending[:0]
	}
}

// Pending reports whether an incomplete sequence is buffered.
func (p *InputParser) Pending() bool {
	return len(p.pending) > 0
}

// pressKey records a press immediately followed by a release. Terminals do
// not report key releases, so every key is a tap.
func pressKey(b *Batch, code purfectedit.KeyCode) {
	b.Keys = append(b.Keys,
		purfectedit.KeyEvent{Code: code},
		purfectedit.KeyEvent{Code: code, Released: true},
	)
}

// parseOne consumes one key, character or mouse report from the front of
// the pending buffer. Returns the number of bytes consumed, 0 when the
// buffer holds an incomplete sequence.
func (p *InputParser) parseOne(b *Batch) int {
	data := p.pending

	if data[0] == 0x1b {
		return p.parseEscape(b)
	}

	switch data[0] {
	case 0x01: // Ctrl+A
		b.Command = true
		pressKey(b, purfectedit.KeyA)
		return 1
	case 0x03, 0x11: // Ctrl+C, Ctrl+Q
		b.Quit = true
		return 1
	case '\r', '\n':
		pressKey(b, purfectedit.KeyEnter)
		return 1
	case 0x7f, 0x08:
		pressKey(b, purfectedit.KeyBackspace)
		return 1
	case '\t':
		b.Chars = append(b.Chars, '\t')
		return 1
	}

	if data[0] < 0x20 {
		// Unhandled control byte.
		return 1
	}

	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 && !utf8.FullRune(data) {
		return 0 // split rune, wait for the rest
	}
	b.Chars = append(b.Chars, r)
	return size
}

// parseEscape consumes one escape sequence. CSI arrow sequences with the
// Alt modifier become word-jump combos; SGR mouse reports become pointer
// state.
func (p *InputParser) parseEscape(b *Batch) int {
	data := p.pending
	if len(data) < 2 {
		return 0 // lone ESC so far; Flush decides later
	}

	// Alt+b / Alt+f word motion, as sent by some terminals.
	if data[1] == 'b' || data[1] == 'f' {
		b.Command = true
		b.Option = true
		if data[1] == 'b' {
			pressKey(b, purfectedit.KeyLeft)
		} else {
			pressKey(b, purfectedit.KeyRight)
		}
		return 2
	}

	if data[1] != '[' {
		// Unknown ESC pair; drop both bytes.
		return 2
	}

	// CSI sequence: find the final byte.
	end := -1
	for i := 2; i < len(data); i++ {
		if data[i] >= 0x40 && data[i] <= 0x7e {
			end = i
			break
		}
	}
	if end < 0 {
		if len(data) > 32 {
			return len(data) // runaway sequence, discard
		}
		return 0
	}
	seq := data[2:end]
	final := data[end]
	consumed := end + 1

	if len(seq) > 0 && seq[0] == '<' {
		p.parseMouse(b, seq[1:], final)
		return consumed
	}

	// Modifier parameter: CSI 1 ; <mod> <key>. Mod 3 = Alt, 9 = Meta.
	alt := false
	if len(seq) >= 3 && seq[0] == '1' && seq[1] == ';' {
		alt = seq[2] == '3' || seq[2] == '9'
	}

	switch final {
	case 'A':
		pressKey(b, purfectedit.KeyUp)
	case 'B':
		pressKey(b, purfectedit.KeyDown)
	case 'C':
		if alt {
			b.Command = true
			b.Option = true
		}
		pressKey(b, purfectedit.KeyRight)
	case 'D':
		if alt {
			b.Command = true
			b.Option = true
		}
		pressKey(b, purfectedit.KeyLeft)
	case '~':
		if len(seq) > 0 && seq[0] == '3' {
			pressKey(b, purfectedit.KeyDelete)
		}
	}
	return consumed
}

// parseMouse handles an SGR mouse report: <btn>;<col>;<row> followed by
// 'M' (press or motion) or 'm' (release). Columns and rows are 1-based
// cells; each cell is one pixel wide and two pixels tall.
func (p *InputParser) parseMouse(b *Batch, seq []byte, final byte) {
	parts := [3]int{}
	idx := 0
	start := 0
	for i := 0; i <= len(seq); i++ {
		if i == len(seq) || seq[i] == ';' {
			if idx >= 3 {
				return
			}
			v, err := strconv.Atoi(string(seq[start:i]))
			if err != nil {
				return
			}
			parts[idx] = v
			idx++
			start = i + 1
		}
	}
	if idx != 3 {
		return
	}
	btn, col, row := parts[0], parts[1], parts[2]

	// Only the primary button (0) and its drag motion (32) matter.
	if btn&^32 != 0 {
		return
	}

	p.mouseX = float64(col) - 0.5
	p.mouseY = (float64(row) - 0.5) * 2

	switch {
	case final == 'm':
		p.mouseDown = false
	case btn&32 == 0:
		// Plain press.
		p.mouseDown = true
		b.Pointer.JustPressed = true
	default:
		// Drag motion; the button is already down.
		p.mouseDown = true
	}
}
