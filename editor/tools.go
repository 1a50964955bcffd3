package editor

import (
	"image"

	"pixelkit/paint"
	"pixelkit/raster"
)

// PointerDown starts a gesture of the active tool at p, in canvas pixels.
func (e *Editor) PointerDown(p image.Point) {
	e.lock()
	defer e.unlock()
	e.cursor = p
	switch e.cfg.Tool {
	case ToolPencil, ToolEraser:
		e.checkpoint()
		e.stroke = true
		e.last = p
		e.stampLine(p, p)
	case ToolPicker:
		e.pick(p)
	case ToolFill:
		e.fill(p)
	case ToolLasso:
		e.move = nil
		e.mask = nil
		e.lasso.Start(p)
		e.changed()
	case ToolMove:
		e.startMove(p)
	}
}

// PointerDrag continues the gesture of the active tool.
func (e *Editor) PointerDrag(p image.Point) {
	e.lock()
	defer e.unlock()
	e.cursor = p
	switch e.cfg.Tool {
	case ToolPencil, ToolEraser:
		if !e.stroke {
			return
		}
		e.stampLine(e.last, p)
		e.last = p
	case ToolPicker:
		e.pick(p)
	case ToolFill:
	case ToolLasso:
		if e.lasso.Selecting() {
			e.lasso.Push(p)
			e.changed()
		}
	case ToolMove:
		e.updateMove(p)
	}
}

// PointerUp ends the gesture of the active tool.
func (e *Editor) PointerUp(p image.Point) {
	e.lock()
	defer e.unlock()
	e.cursor = p
	switch e.cfg.Tool {
	case ToolPencil, ToolEraser:
		e.stroke = false
	case ToolPicker, ToolFill:
	case ToolLasso:
		if e.lasso.Selecting() {
			e.lasso.Push(p)
			e.finishLasso()
		}
	case ToolMove:
		e.updateMove(p)
		e.commitMove()
	}
}

// PointerHover records the pointer position without any tool action.
func (e *Editor) PointerHover(p image.Point) {
	e.lock()
	defer e.unlock()
	if e.cursor != p {
		e.cursor = p
		e.changed()
	}
}

// Stamp paints a single brush stamp at (x, y) with the active tool's colour
// as its own undo step.
func (e *Editor) Stamp(x, y int) {
	e.lock()
	defer e.unlock()
	e.checkpoint()
	p := image.Pt(x, y)
	e.stampLine(p, p)
}

// strokeColor returns what the pencil or eraser writes.
func (e *Editor) strokeColor() raster.Pixel {
	if e.cfg.Tool == ToolEraser {
		return raster.Transparent
	}
	return e.cfg.Color
}

func (e *Editor) stampLine(from, to image.Point) {
	e.move = nil
	c := e.strokeColor()
	e.replaceActive(paint.Line(e.frames.Active(), from.X, from.Y, to.X, to.Y, e.cfg.BrushRadius, c))
	if e.cfg.Tool == ToolPencil && !c.IsEmpty() {
		e.recent.Add(c)
	}
}

// Fill flood fills the region under (x, y) with the draw colour.
func (e *Editor) Fill(x, y int) bool {
	e.lock()
	defer e.unlock()
	return e.fill(image.Pt(x, y))
}

func (e *Editor) fill(p image.Point) bool {
	c := e.cfg.Color
	out, ok := paint.FloodFill(e.frames.Active(), p.X, p.Y, c)
	if !ok {
		return false
	}
	e.checkpoint()
	e.move = nil
	e.replaceActive(out)
	if !c.IsEmpty() {
		e.recent.Add(c)
	}
	return true
}

// Pick copies the colour under (x, y) into the draw colour.
func (e *Editor) Pick(x, y int) bool {
	e.lock()
	defer e.unlock()
	return e.pick(image.Pt(x, y))
}

func (e *Editor) pick(p image.Point) bool {
	f := e.frames.Active()
	if !f.In(p.X, p.Y) {
		return false
	}
	e.cfg.Color = f.Get(p.X, p.Y)
	e.changed()
	return true
}
