package editor

import (
	"image"

	"pixelkit/canvas"
	"pixelkit/raster"
)

// Resize reflows every frame to width×height, clamped to the configured
// bounds, keeping content centred. The selection is cleared.
func (e *Editor) Resize(width, height int) bool {
	e.lock()
	defer e.unlock()
	width = canvas.ClampSize(width, e.cfg.MinSize, e.cfg.MaxSize)
	height = canvas.ClampSize(height, e.cfg.MinSize, e.cfg.MaxSize)
	if width == e.frames.Width() && height == e.frames.Height() {
		return false
	}
	e.checkpoint()
	e.replaceAll(canvas.ResizeAll(e.frames.Frames(), width, height))
	e.logger.Debug("canvas resized", "width", width, "height", height)
	return true
}

// Autocrop cuts all frames to the shared bounds of their opaque pixels plus
// padding. With center set each frame's content is then centred on its own.
// Empty frames make it a no-op with a notice.
func (e *Editor) Autocrop(padding int, center bool) bool {
	e.lock()
	defer e.unlock()
	out, box, ok := canvas.Autocrop(e.frames.Frames(), padding, center)
	if !ok {
		e.notice("nothing to crop: every frame is empty")
		return false
	}
	e.checkpoint()
	e.replaceAll(out)
	e.logger.Debug("canvas autocropped", "box", box, "center", center)
	return true
}

func (e *Editor) replaceAll(bufs []*raster.Buffer) {
	e.frames.ReplaceAll(bufs)
	e.cfg.Width, e.cfg.Height = e.frames.Width(), e.frames.Height()
	e.clearGesture()
	e.changed()
}

// CenterActive moves the active frame's opaque content to the middle of the
// canvas without resizing.
func (e *Editor) CenterActive() bool {
	e.lock()
	defer e.unlock()
	f := e.frames.Active()
	if _, ok := f.ContentBounds(); !ok {
		e.notice("nothing to center: the frame is empty")
		return false
	}
	out := canvas.CenterContent(f)
	if out.Equal(f) {
		return false
	}
	e.checkpoint()
	e.move = nil
	e.replaceActive(out)
	return true
}

// ImportFrame centres img on the canvas, clipping what does not fit, and
// appends it as a new frame or replaces the active one.
func (e *Editor) ImportFrame(img image.Image, asNew bool) {
	e.lock()
	defer e.unlock()
	e.insert(canvas.PlaceCentered(raster.FromImage(img), e.frames.Width(), e.frames.Height()), asNew)
}

func (e *Editor) insert(buf *raster.Buffer, asNew bool) {
	e.checkpoint()
	e.move = nil
	if asNew {
		e.frames.Append(buf)
	} else {
		e.frames.ReplaceActive(buf)
	}
	e.changed()
}

// ImportSource keeps img as the cropping source, replacing any previous one,
// and returns a snapshot of it.
func (e *Editor) ImportSource(img image.Image) *canvas.Source {
	e.lock()
	defer e.unlock()
	e.source = canvas.NewSource(raster.FromImage(img))
	e.changed()
	return e.source.Clone()
}

// Source returns a snapshot of the cropping source, nil if none was imported.
// Changes go through SelectSource and SetSourceView.
func (e *Editor) Source() *canvas.Source {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.source == nil {
		return nil
	}
	return e.source.Clone()
}

// SetSourceView sets the zoom and pan the source is displayed with.
func (e *Editor) SetSourceView(zoom float64, pan image.Point) bool {
	e.lock()
	defer e.unlock()
	if e.source == nil {
		return false
	}
	e.source.Zoom, e.source.Pan = zoom, pan
	e.changed()
	return true
}

// SelectSource sets the crop rectangle on the source image.
func (e *Editor) SelectSource(r image.Rectangle) bool {
	e.lock()
	defer e.unlock()
	if e.source == nil {
		return false
	}
	e.source.Select(r)
	e.changed()
	return !e.source.Selection().Empty()
}

// CropSource rescales the selected source rectangle to exactly the canvas
// size and appends it as a frame or replaces the active one.
func (e *Editor) CropSource(asNew bool) bool {
	e.lock()
	defer e.unlock()
	if e.source == nil {
		e.notice("no source image imported")
		return false
	}
	buf := e.source.CropTo(e.frames.Width(), e.frames.Height())
	if buf == nil {
		e.notice("select a region of the source image first")
		return false
	}
	e.insert(buf, asNew)
	return true
}
