package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phroun/purfectedit"
	"golang.org/x/term"
)

// Options configures terminal creation.
type Options struct {
	Text string // initial editor content

	// Font geometry in canvas pixels. Each terminal cell is one pixel wide
	// and two pixels tall, so a LineHeight of 18 spans nine text rows.
	FontSize   float64
	LineHeight float64

	// Colors. Zero values fall back to the engine defaults with a white
	// background.
	TextColor      purfectedit.Color
	Background     purfectedit.Color
	SelectionColor purfectedit.Color
	CaretColor     purfectedit.Color

	// Fonts handed to the engine's font system.
	Fonts purfectedit.FontConfig

	// FrameRate is the frame loop rate in frames per second (default 60).
	FrameRate int
}

// Terminal runs one PurfectEdit editor inside the host terminal. It owns
// the engine, the renderer and the input parser, and coordinates the frame
// loop. The engine only ever runs on the Run goroutine; the input reader
// hands raw bytes over a channel.
type Terminal struct {
	engine *purfectedit.Engine
	editor purfectedit.EditorID

	renderer *Renderer
	parser   *InputParser
	options  Options

	// Latest engine output, consumed by the frame loop.
	frame *purfectedit.Pixmap

	input chan []byte
	done  chan struct{}

	// Original terminal state for restoration.
	oldState *term.State

	hostCols int
	hostRows int
}

// New creates a terminal-hosted editor sized to the host terminal.
func New(opts Options) (*Terminal, error) {
	if opts.FontSize <= 0 {
		opts.FontSize = 14
	}
	if opts.LineHeight <= 0 {
		opts.LineHeight = opts.FontSize + 4
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	if opts.Background == 0 {
		opts.Background = purfectedit.DefaultBackgroundColor
	}

	engine, err := purfectedit.NewEngine(opts.Fonts)
	if err != nil {
		return nil, err
	}

	cols, rows := hostSize()
	t := &Terminal{
		engine:   engine,
		renderer: NewRenderer(),
		parser:   NewInputParser(),
		options:  opts,
		input:    make(chan []byte, 16),
		done:     make(chan struct{}),
		hostCols: cols,
		hostRows: rows,
	}

	w := float64(cols)
	h := float64(rows * 2)
	t.editor = engine.AddEditor(purfectedit.EditorOptions{
		Text:       opts.Text,
		Align:      purfectedit.AlignTopLeft,
		FontSize:   opts.FontSize,
		LineHeight: opts.LineHeight,
		Width:      w,
		Height:     h,
		X:          w / 2,
		Y:          h / 2,
	})
	ed := engine.Editor(t.editor)
	ed.Background = opts.Background
	if opts.TextColor != 0 {
		ed.TextColor = opts.TextColor
	}
	if opts.SelectionColor != 0 {
		ed.SelectionColor = opts.SelectionColor
	}
	if opts.CaretColor != 0 {
		ed.CaretColor = opts.CaretColor
	}

	engine.SetImageSink(func(id purfectedit.EditorID, pix *purfectedit.Pixmap) {
		if id == t.editor {
			t.frame = pix
		}
	})
	engine.SetActive(t.editor)

	return t, nil
}

// hostSize returns the host terminal size in cells.
func hostSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return cols, rows
}

// Editor returns the hosted editor for direct inspection or mutation
// between frames.
func (t *Terminal) Editor() *purfectedit.Editor {
	return t.engine.Editor(t.editor)
}

// Text returns the editor's current content.
func (t *Terminal) Text() string {
	return t.Editor().Text()
}

// Start enters raw mode, switches to the alternate screen and enables SGR
// mouse reporting, then starts the input reader.
func (t *Terminal) Start() error {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.oldState = oldState

	// Hide cursor, alternate screen, clear, enable button-event mouse
	// tracking with SGR encoding.
	fmt.Print("\033[?25l\033[?1049h\033[2J\033[H\033[?1002h\033[?1006h")

	go t.readLoop()

	return nil
}

// readLoop reads raw bytes from stdin and hands them to the frame loop.
func (t *Terminal) readLoop() {
	buf := make([]byte, 256)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		chunk := make([]byte, n)
		copy(chunk, buf[:n])
		select {
		case t.input <- chunk:
		case <-t.done:
			return
		}
	}
}

// Run drives the frame loop until the user quits with Ctrl+C or Ctrl+Q.
// Each tick drains pending input into one engine frame, runs the engine,
// and draws the resulting pixels.
func (t *Terminal) Run() error {
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)

	interval := time.Second / time.Duration(t.options.FrameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	escDeadline := time.Time{}

	for {
		select {
		case <-winch:
			t.handleResize()
		case <-ticker.C:
		}

		var batch Batch
		gotInput := false
	drain:
		for {
			select {
			case chunk := <-t.input:
				b := t.parser.Feed(chunk)
				mergeBatch(&batch, b)
				gotInput = true
			default:
				break drain
			}
		}

		// A lone ESC with no follow-up bytes is the Escape key.
		if t.parser.Pending() {
			if gotInput {
				escDeadline = time.Now().Add(50 * time.Millisecond)
			} else if !escDeadline.IsZero() && time.Now().After(escDeadline) {
				t.parser.Flush(&batch)
				escDeadline = time.Time{}
			}
		} else {
			escDeadline = time.Time{}
		}

		if batch.Quit {
			return nil
		}

		frame := purfectedit.Frame{
			Keys:    batch.Keys,
			Chars:   batch.Chars,
			Pointer: batch.Pointer,
			Command: batch.Command,
			Option:  batch.Option,
		}
		if err := t.engine.RunFrame(frame); err != nil {
			return err
		}

		if t.frame != nil {
			t.renderer.Draw(t.frame, t.Editor().Background)
			t.frame = nil
		}
	}
}

// mergeBatch folds one parsed batch into the frame's accumulated input.
func mergeBatch(dst *Batch, src Batch) {
	dst.Keys = append(dst.Keys, src.Keys...)
	dst.Chars = append(dst.Chars, src.Chars...)
	dst.Pointer = src.Pointer
	if src.Pointer.JustPressed {
		dst.Pointer.JustPressed = true
	}
	dst.Command = dst.Command || src.Command
	dst.Option = dst.Option || src.Option
	dst.Quit = dst.Quit || src.Quit
}

// handleResize resizes the editor surface to track the host terminal.
func (t *Terminal) handleResize() {
	cols, rows := hostSize()
	if cols == t.hostCols && rows == t.hostRows {
		return
	}
	t.hostCols = cols
	t.hostRows = rows

	w := float64(cols)
	h := float64(rows * 2)
	ed := t.Editor()
	ed.SetSurface(purfectedit.Surface{X: w / 2, Y: h / 2, W: w, H: h})
	ed.Buffer().SetSize(w, h)

	// Force a full repaint of the host screen.
	t.renderer.Invalidate()
	fmt.Print("\033[2J")
}

// Stop restores the original terminal state.
func (t *Terminal) Stop() error {
	select {
	case <-t.done:
		return nil
	default:
	}
	close(t.done)

	if t.oldState != nil {
		// Disable mouse tracking and the alternate screen, show the
		// cursor, reset attributes.
		fmt.Print("\033[?1002l\033[?1006l\033[?1049l\033[?25h\033[0m")
		term.Restore(int(os.Stdin.Fd()), t.oldState)
	}
	return nil
}

// Close is an alias for Stop.
func (t *Terminal) Close() error {
	return t.Stop()
}
