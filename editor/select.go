package editor

import (
	"image"

	"pixelkit/paint"
	"pixelkit/selection"
)

// StartLasso begins a freehand selection at p, dropping the current one.
func (e *Editor) StartLasso(p image.Point) {
	e.lock()
	defer e.unlock()
	e.move = nil
	e.mask = nil
	e.lasso.Start(p)
	e.changed()
}

// PushLasso adds a vertex to the lasso in progress.
func (e *Editor) PushLasso(p image.Point) {
	e.lock()
	defer e.unlock()
	if e.lasso.Selecting() {
		e.lasso.Push(p)
		e.changed()
	}
}

// FinishLasso closes the lasso and selects the pixels inside it. A path of
// fewer than three vertices clears the selection.
func (e *Editor) FinishLasso() *selection.Mask {
	e.lock()
	defer e.unlock()
	return e.finishLasso()
}

func (e *Editor) finishLasso() *selection.Mask {
	e.mask = e.lasso.Finish(e.frames.Width(), e.frames.Height())
	e.changed()
	return e.mask
}

// SelectRect selects the part of r inside the canvas.
func (e *Editor) SelectRect(r image.Rectangle) *selection.Mask {
	e.lock()
	defer e.unlock()
	e.move = nil
	e.lasso.Reset()
	e.mask = selection.Rect(e.frames.Width(), e.frames.Height(), r)
	e.changed()
	return e.mask
}

// SelectAll selects the whole canvas.
func (e *Editor) SelectAll() *selection.Mask {
	w, h := e.Size()
	return e.SelectRect(image.Rect(0, 0, w, h))
}

// ClearSelection drops the selection. A move in progress is discarded
// without touching the frame.
func (e *Editor) ClearSelection() {
	e.lock()
	defer e.unlock()
	e.clearGesture()
	e.changed()
}

// StartMove lifts the selected pixels, grabbed at p. It does nothing without
// a selection.
func (e *Editor) StartMove(p image.Point) bool {
	e.lock()
	defer e.unlock()
	return e.startMove(p)
}

func (e *Editor) startMove(p image.Point) bool {
	if e.mask.Empty() {
		return false
	}
	e.checkpoint()
	e.move = paint.Lift(e.frames.Active(), e.mask, p)
	e.changed()
	return true
}

// UpdateMove sets the displacement of the move in progress to p minus the
// grab point. The frame is not modified until CommitMove.
func (e *Editor) UpdateMove(p image.Point) {
	e.lock()
	defer e.unlock()
	e.updateMove(p)
}

func (e *Editor) updateMove(p image.Point) {
	if e.move == nil {
		return
	}
	e.move.Update(p)
	e.changed()
}

// CommitMove writes the moved pixels into the active frame and selects their
// new positions.
func (e *Editor) CommitMove() bool {
	e.lock()
	defer e.unlock()
	return e.commitMove()
}

func (e *Editor) commitMove() bool {
	mv := e.move
	e.move = nil
	if mv == nil || mv.Base == nil || mv.Floating == nil {
		return false
	}
	out, m := mv.Commit()
	e.replaceActive(out)
	e.mask = m
	e.logger.Debug("move committed", "dx", mv.Offset().X, "dy", mv.Offset().Y, "pixels", m.Len())
	return true
}

// Copy stores the selected pixels of the active frame in the clipboard.
func (e *Editor) Copy() bool {
	e.lock()
	defer e.unlock()
	if e.mask.Empty() {
		return false
	}
	e.clipboard = paint.Copy(e.frames.Active(), e.mask)
	e.changed()
	return true
}

// Paste overlays the clipboard with its top-left corner at at and selects the
// pixels written.
func (e *Editor) Paste(at image.Point) bool {
	e.lock()
	defer e.unlock()
	return e.paste(at)
}

// PasteAtCursor pastes the clipboard centred on the last pointer position.
func (e *Editor) PasteAtCursor() bool {
	e.lock()
	defer e.unlock()
	if e.clipboard == nil {
		return false
	}
	at := e.cursor.Sub(image.Pt(e.clipboard.Width()/2, e.clipboard.Height()/2))
	return e.paste(at)
}

func (e *Editor) paste(at image.Point) bool {
	if e.clipboard == nil {
		return false
	}
	e.checkpoint()
	e.move = nil
	out, m := paint.Paste(e.frames.Active(), e.clipboard, at)
	e.replaceActive(out)
	e.mask = m
	return true
}

// DeleteSelection clears the selected pixels. The selection itself stays.
func (e *Editor) DeleteSelection() bool {
	e.lock()
	defer e.unlock()
	if e.mask.Empty() {
		return false
	}
	e.checkpoint()
	e.move = nil
	e.replaceActive(paint.Erase(e.frames.Active(), e.mask))
	return true
}
