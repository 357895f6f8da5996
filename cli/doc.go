// Package cli provides a terminal frontend for PurfectEdit.
//
// This package runs an interactive editor inside a real terminal: the engine's
// pixel output is rendered with Unicode half-block characters (two pixel rows
// per text cell) using 24-bit color, and raw keyboard and mouse input is
// translated into the engine's per-frame input batches.
//
// # Features
//
//   - True color (24-bit) half-block rendering of the engine's pixel buffers
//   - Differential rendering for efficiency (only updates changed cells)
//   - Keyboard escape sequence parsing: arrows, Delete, Backspace, Enter, Escape
//   - Alt+Left/Right word jumps, Ctrl+A select-all
//   - SGR mouse reporting: click to place the cursor, drag to select
//   - Window resizing that tracks the host terminal (SIGWINCH)
//
// # Basic Usage
//
//	import "github.com/phroun/purfectedit/cli"
//
//	opts := cli.Options{
//	    Text:       "hello world",
//	    FontSize:   14,
//	    LineHeight: 18,
//	}
//
//	term, err := cli.New(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Start the terminal (enters raw mode)
//	if err := term.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer term.Stop()
//
//	// Run the frame loop until Ctrl+C or Ctrl+Q
//	term.Run()
//
// # Architecture
//
// The package consists of three main components:
//
//   - Terminal: owns the engine and one editor, coordinates the frame loop
//   - Renderer: draws pixel buffers into the host terminal using ANSI codes
//   - InputParser: turns raw stdin bytes into engine key, character and
//     pointer events
//
// Input is read on its own goroutine and handed to the frame loop over a
// channel; the engine itself only ever runs on the frame loop goroutine.
// Since terminals report key presses but not releases, every key event is
// delivered as a press/release pair within the same frame.
package cli
