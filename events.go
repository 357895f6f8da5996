package purfectedit

// KeyCode identifies the discrete keys the dispatcher reacts to. Character
// input arrives separately as post-IME character events.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyA
)

// KeyEvent is one key press or release observed this frame.
type KeyEvent struct {
	Code     KeyCode
	Released bool // false = just pressed, true = just released
}

// Pointer is the pointer state for this frame, in window coordinates.
type Pointer struct {
	X           float64
	Y           float64
	Pressed     bool // primary button currently down
	JustPressed bool // primary button went down this frame
}

// Frame is one frame's input batch, assembled by the host and handed to
// Engine.RunFrame. The zero value is an idle frame.
type Frame struct {
	Keys  []KeyEvent
	Chars []rune

	Pointer Pointer

	// Modifier state for this frame: the platform command key and the
	// option/alt key.
	Command bool
	Option  bool

	// Scale-factor-changed notification. When ScaleChanged is set, every
	// editor's metrics and pixel size are recomputed from ScaleFactor.
	ScaleChanged bool
	ScaleFactor  float64
}

// JustPressed reports whether the key was pressed this frame.
func (f Frame) JustPressed(code KeyCode) bool {
	for _, k := range f.Keys {
		if k.Code == code && !k.Released {
			return true
		}
	}
	return false
}

// JustReleased reports whether the key was released this frame.
func (f Frame) JustReleased(code KeyCode) bool {
	for _, k := range f.Keys {
		if k.Code == code && k.Released {
			return true
		}
	}
	return false
}
