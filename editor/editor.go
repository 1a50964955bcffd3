// Package editor owns the editable state of a sprite: frames, selection,
// move gesture, clipboard, palettes and undo history.
//
// An Editor is driven by an input collaborator through intent methods
// (PointerDown, Fill, Resize, Undo, ...) and read by a renderer through the
// accessors. Invalid intents never fail; they do nothing and may emit an
// advisory notice. All methods are safe for concurrent use, which lets the
// animation Player read frames from its own goroutine.
package editor

import (
	"image"
	"log/slog"
	"sync"

	"pixelkit/canvas"
	"pixelkit/frames"
	"pixelkit/history"
	"pixelkit/paint"
	"pixelkit/palette"
	"pixelkit/raster"
	"pixelkit/selection"
)

// Editor is the single owned aggregate of editor state.
type Editor struct {
	mu sync.RWMutex

	cfg     Config
	frames  *frames.Set
	history *history.Stack

	lasso     selection.Lasso
	mask      *selection.Mask
	move      *paint.Move
	clipboard *paint.Clipboard
	source    *canvas.Source

	recent   palette.Recent
	imported palette.Palette
	view     PaletteView

	cursor image.Point
	stroke bool
	last   image.Point

	logger   *slog.Logger
	onNotice func(string)
	updateCh chan struct{}

	pending []string
	dirty   bool
}

// Option modifies an Editor during creation.
type Option func(*Editor)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option { return func(e *Editor) { e.cfg = cfg } }

// WithSize sets the canvas size.
func WithSize(width, height int) Option {
	return func(e *Editor) { e.cfg.Width, e.cfg.Height = width, height }
}

// WithFrames starts the editor with existing frames. The canvas takes the
// size of the first frame; frames of a different size are centred onto it.
func WithFrames(bufs ...*raster.Buffer) Option {
	return func(e *Editor) {
		if len(bufs) == 0 {
			return
		}
		w, h := bufs[0].Width(), bufs[0].Height()
		fitted := make([]*raster.Buffer, len(bufs))
		for i, b := range bufs {
			fitted[i] = canvas.PlaceCentered(b, w, h)
		}
		e.frames = frames.FromBuffers(fitted, 0)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option { return func(e *Editor) { e.logger = l } }

// WithNoticeFunc registers a callback for advisory messages such as
// "nothing to crop". It runs after the editor lock is released.
func WithNoticeFunc(fn func(msg string)) Option { return func(e *Editor) { e.onNotice = fn } }

// New creates an Editor with one blank frame.
func New(opts ...Option) *Editor {
	e := &Editor{
		cfg:      DefaultConfig(),
		logger:   newNopLogger(),
		updateCh: make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(e)
	}
	if e.logger == nil {
		e.logger = newNopLogger()
	}
	if e.frames != nil {
		e.cfg.Width, e.cfg.Height = e.frames.Width(), e.frames.Height()
		e.cfg.MinSize = min(e.cfg.MinSize, e.cfg.Width, e.cfg.Height)
		e.cfg.MaxSize = max(e.cfg.MaxSize, e.cfg.Width, e.cfg.Height)
	}
	e.cfg.normalize()
	if e.frames == nil {
		e.frames = frames.New(e.cfg.Width, e.cfg.Height)
	}
	e.history = history.New(e.cfg.HistoryDepth)
	return e
}

// Changes delivers a coalesced signal after every mutation.
func (e *Editor) Changes() <-chan struct{} { return e.updateCh }

func (e *Editor) lock() { e.mu.Lock() }

// unlock releases the lock, then delivers pending notices and the change
// signal so callbacks may call back into the editor.
func (e *Editor) unlock() {
	notes := e.pending
	changed := e.dirty
	e.pending, e.dirty = nil, false
	e.mu.Unlock()

	for _, n := range notes {
		e.logger.Info("notice", "message", n)
		if e.onNotice != nil {
			e.onNotice(n)
		}
	}
	if changed {
		select {
		case e.updateCh <- struct{}{}:
		default:
		}
	}
}

func (e *Editor) notice(msg string) { e.pending = append(e.pending, msg) }
func (e *Editor) changed()          { e.dirty = true }

// checkpoint stores the current frames for Undo.
func (e *Editor) checkpoint() {
	e.history.Push(e.frames)
}

// replaceActive swaps in a new active frame.
func (e *Editor) replaceActive(buf *raster.Buffer) {
	e.frames.ReplaceActive(buf)
	e.changed()
}

// clearGesture drops the selection, the lasso path and any uncommitted move.
func (e *Editor) clearGesture() {
	e.mask = nil
	e.move = nil
	e.stroke = false
	e.lasso.Reset()
}

// Config returns a copy of the configuration.
func (e *Editor) Config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// Size returns the canvas size.
func (e *Editor) Size() (width, height int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.frames.Width(), e.frames.Height()
}

// Frames returns the frames in order. The buffers must not be modified.
func (e *Editor) Frames() []*raster.Buffer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.frames.Frames()
}

// FrameCount returns the number of frames.
func (e *Editor) FrameCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.frames.Len()
}

// ActiveIndex returns the index of the frame being edited.
func (e *Editor) ActiveIndex() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.frames.ActiveIndex()
}

// ActiveFrame returns the frame being edited. It must not be modified.
func (e *Editor) ActiveFrame() *raster.Buffer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.frames.Active()
}

// OnionFrames returns the neighbours of the active frame for onion skinning.
// Each is nil when its toggle is off or the active frame is at that end.
func (e *Editor) OnionFrames() (prev, next *raster.Buffer) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i := e.frames.ActiveIndex()
	if e.cfg.OnionPrev {
		prev = e.frames.At(i - 1)
	}
	if e.cfg.OnionNext {
		next = e.frames.At(i + 1)
	}
	return prev, next
}

// Selection returns the current selection, nil when nothing is selected.
func (e *Editor) Selection() *selection.Mask {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mask
}

// LassoPath returns the vertices of the lasso being drawn.
func (e *Editor) LassoPath() []image.Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lasso.Path()
}

// Moving reports whether a move gesture is in progress.
func (e *Editor) Moving() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.move != nil
}

// MovePreview returns the active frame as it would look if the move were
// committed now, and the current displacement. ok is false when no move is
// in progress.
func (e *Editor) MovePreview() (preview *raster.Buffer, offset image.Point, ok bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.move == nil {
		return nil, image.Point{}, false
	}
	return e.move.Preview(), e.move.Offset(), true
}

// Cursor returns the last pointer position in canvas pixels.
func (e *Editor) Cursor() image.Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursor
}

// HasClipboard reports whether something was copied.
func (e *Editor) HasClipboard() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.clipboard != nil
}

// RecentColors returns the most recently used colours, newest first.
func (e *Editor) RecentColors() palette.Palette {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.recent.Colors()
}

// ImportedPalette returns the last imported palette.
func (e *Editor) ImportedPalette() palette.Palette {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append(palette.Palette(nil), e.imported...)
}

// PaletteView returns the palette the UI should show.
func (e *Editor) PaletteView() PaletteView {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.view
}

// CanUndo reports whether Undo would restore anything.
func (e *Editor) CanUndo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.Len() > 0
}
