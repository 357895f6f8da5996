package purfectedit

// EditorID identifies an editor registered with an Engine. The zero value
// means "no editor" and is never assigned.
type EditorID uint32

// EditorOptions configures a new editor surface.
type EditorOptions struct {
	Text  string
	Align Alignment

	// Logical (unscaled) font geometry and surface size.
	FontSize   float64
	LineHeight float64
	Width      float64
	Height     float64

	// Surface center position in window coordinates. The surface size is
	// Width x Height.
	X float64
	Y float64

	// ScaleFactor overrides the engine's current display scale for the
	// initial geometry. Zero means "use the engine's".
	ScaleFactor float64
}

// Engine is the frame driver. It owns the process-wide font system, the
// glyph raster cache and the active-editor slot, and runs the fixed pass
// list once per frame: scale-factor handling, input dispatch,
// rasterization, focus-change handling.
//
// The engine is strictly single-threaded: every pass borrows the shared
// resources exclusively and runs to completion before the next begins.
type Engine struct {
	fs    *FontSystem
	cache *RasterCache

	editors map[EditorID]*Editor
	order   []EditorID
	nextID  EditorID

	active     EditorID
	prevActive EditorID

	scale float64

	// Continuous-delete mode: set while a delete key is held so character
	// input redirects to deletion (some platforms surface backspace as a
	// character event too).
	deleting bool

	onImage func(EditorID, *Pixmap)
}

// NewEngine initializes the font system from the given configuration and
// creates an empty engine at scale factor 1.
func NewEngine(cfg FontConfig) (*Engine, error) {
	fs, err := NewFontSystem(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		fs:      fs,
		cache:   NewRasterCache(),
		editors: make(map[EditorID]*Editor),
		nextID:  1,
		scale:   1.0,
	}, nil
}

// FontSystem returns the engine's font system.
func (en *Engine) FontSystem() *FontSystem {
	return en.fs
}

// SetImageSink registers the callback receiving each completed pixel
// buffer, for the host to upload as a texture.
func (en *Engine) SetImageSink(fn func(EditorID, *Pixmap)) {
	en.onImage = fn
}

// AddEditor registers a new editor and returns its identity.
func (en *Engine) AddEditor(opts EditorOptions) EditorID {
	scale := opts.ScaleFactor
	if scale == 0 {
		scale = en.scale
	}
	metrics := NewMetrics(opts.FontSize, opts.LineHeight)
	ed := NewEditor(metrics)
	ed.align = opts.Align
	ed.baseWidth = opts.Width
	ed.baseHeight = opts.Height
	ed.surface = Surface{X: opts.X, Y: opts.Y, W: opts.Width, H: opts.Height}
	ed.applyScale(scale)
	ed.buffer.SetText(opts.Text)

	id := en.nextID
	en.nextID++
	en.editors[id] = ed
	en.order = append(en.order, id)
	return id
}

// Editor returns the editor for an identity, or nil when unknown.
func (en *Engine) Editor(id EditorID) *Editor {
	return en.editors[id]
}

// RemoveEditor unregisters an editor. Removing the active editor leaves no
// editor active.
func (en *Engine) RemoveEditor(id EditorID) {
	if _, ok := en.editors[id]; !ok {
		return
	}
	delete(en.editors, id)
	for i, o := range en.order {
		if o == id {
			en.order = append(en.order[:i], en.order[i+1:]...)
			break
		}
	}
	if en.active == id {
		en.active = 0
	}
	if en.prevActive == id {
		en.prevActive = 0
	}
}

// SetActive updates the active-editor slot. The focus transition itself
// fires during the next frame's focus pass.
func (en *Engine) SetActive(id EditorID) {
	en.active = id
}

// Active returns the active editor's identity, zero when none.
func (en *Engine) Active() EditorID {
	return en.active
}

// ScaleFactor returns the current display scale factor.
func (en *Engine) ScaleFactor() float64 {
	return en.scale
}

// RunFrame executes one frame: scale-factor handling, input dispatch for
// the active editor, rasterization of every dirty editor, and focus-change
// handling. Returns ErrNotInitialized when the shared resources are
// missing.
func (en *Engine) RunFrame(f Frame) error {
	if en.fs == nil || en.cache == nil {
		return ErrNotInitialized
	}
	en.scalePass(f)
	if err := en.dispatchPass(f); err != nil {
		return err
	}
	if err := en.rasterPass(); err != nil {
		return err
	}
	en.focusPass()
	return nil
}

// scalePass recomputes metrics and pixel size for every editor when the
// display density changed. Density changes affect every visible surface,
// not just the active one.
func (en *Engine) scalePass(f Frame) {
	if !f.ScaleChanged {
		return
	}
	en.scale = f.ScaleFactor
	for _, ed := range en.editors {
		ed.applyScale(en.scale)
	}
}

// dispatchPass translates the frame's input batch into buffer and cursor
// mutations on the active editor. Recognizing a pointer gesture or a
// modifier-combo command consumes the remainder of the frame's input.
func (en *Engine) dispatchPass(f Frame) error {
	ed := en.editors[en.active]
	if ed == nil {
		return nil
	}

	if f.JustPressed(KeyLeft) {
		ed.MoveLeft()
	}
	if f.JustPressed(KeyRight) {
		ed.MoveRight()
	}
	if f.JustPressed(KeyUp) {
		if err := ed.MoveUp(en.fs); err != nil {
			return err
		}
	}
	if f.JustPressed(KeyDown) {
		if err := ed.MoveDown(en.fs); err != nil {
			return err
		}
	}
	if f.JustPressed(KeyDelete) {
		ed.DeleteForward()
	}
	if f.JustPressed(KeyBackspace) {
		ed.Backspace()
		en.deleting = true
	}
	if f.JustReleased(KeyBackspace) {
		en.deleting = false
	}
	if f.JustPressed(KeyEnter) {
		ed.InsertChar('\n')
		return nil
	}
	if f.JustPressed(KeyEscape) {
		ed.Escape()
	}
	if f.Command && f.JustPressed(KeyA) {
		ed.SelectAll()
		return nil
	}
	if f.Command && f.Option && f.JustPressed(KeyLeft) {
		ed.MoveWordPrev()
		return nil
	}
	if f.Command && f.Option && f.JustPressed(KeyRight) {
		ed.MoveWordNext()
		return nil
	}

	if f.Pointer.JustPressed || f.Pointer.Pressed {
		offsetX, offsetY, err := ed.Offsets(en.fs)
		if err != nil {
			return err
		}
		lx, ly, hit := ed.surface.Local(f.Pointer.X, f.Pointer.Y)
		if hit {
			bx := lx*en.scale - float64(offsetX)
			by := ly*en.scale - float64(offsetY)
			if f.Pointer.JustPressed {
				err = ed.Click(en.fs, bx, by)
			} else {
				err = ed.Drag(en.fs, bx, by)
			}
			if err != nil {
				return err
			}
		}
		// A press or hold consumes the frame whether or not it hit.
		return nil
	}

	for _, r := range f.Chars {
		if en.deleting {
			ed.Backspace()
		} else {
			ed.InsertChar(r)
		}
	}
	return nil
}

// rasterPass re-renders every editor whose redraw flag is set and hands
// the pixels to the image sink.
func (en *Engine) rasterPass() error {
	for _, id := range en.order {
		ed := en.editors[id]
		if err := ed.buffer.ShapeAsNeeded(en.fs); err != nil {
			return err
		}
		if !ed.buffer.Redraw() {
			continue
		}
		pix, err := Rasterize(en.fs, en.cache, ed)
		if err != nil {
			return err
		}
		if en.onImage != nil {
			en.onImage(id, pix)
		}
	}
	return nil
}

// focusPass fires the focus transition when the active identity changed
// since the previous frame: the freshly focused editor loses its stale
// selection and starts with the cursor at the buffer end. Re-confirming
// the same identity is a no-op.
func (en *Engine) focusPass() {
	if en.active == en.prevActive {
		return
	}
	if ed := en.editors[en.active]; ed != nil {
		ed.ClearSelection()
		ed.MoveBufferEnd()
		ed.buffer.SetRedraw(true)
	}
	en.prevActive = en.active
}
