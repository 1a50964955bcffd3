package editor

import "pixelkit/raster"

// SetTool switches the active tool. A stroke or lasso in progress is
// abandoned; an uncommitted move is discarded.
func (e *Editor) SetTool(t Tool) {
	e.lock()
	defer e.unlock()
	if t < ToolPencil || t > ToolMove || t == e.cfg.Tool {
		return
	}
	e.cfg.Tool = t
	e.stroke = false
	e.move = nil
	e.lasso.Reset()
	e.changed()
	e.logger.Debug("tool selected", "tool", t)
}

// SetColor sets the draw colour.
func (e *Editor) SetColor(c raster.Pixel) {
	e.lock()
	defer e.unlock()
	e.cfg.Color = c
	e.changed()
}

// SetBrushRadius sets the stamp radius, clamped to [0, MaxBrushRadius].
func (e *Editor) SetBrushRadius(r int) {
	e.lock()
	defer e.unlock()
	e.cfg.BrushRadius = clampInt(r, 0, e.cfg.MaxBrushRadius)
	e.changed()
}

// SetZoom sets the display zoom factor.
func (e *Editor) SetZoom(z int) {
	e.lock()
	defer e.unlock()
	e.cfg.Zoom = clampInt(z, 1, maxZoom)
	e.changed()
}

// SetGrid toggles the pixel grid.
func (e *Editor) SetGrid(on bool) {
	e.lock()
	defer e.unlock()
	e.cfg.Grid = on
	e.changed()
}

// SetFPS sets the animation preview rate. A running Player must be restarted
// to pick it up.
func (e *Editor) SetFPS(fps int) {
	e.lock()
	defer e.unlock()
	e.cfg.FPS = clampInt(fps, 1, maxFPS)
	e.changed()
}

// SetOnionSkin configures the onion skin overlay.
func (e *Editor) SetOnionSkin(prev, next bool, opacity float64) {
	e.lock()
	defer e.unlock()
	e.cfg.OnionPrev, e.cfg.OnionNext = prev, next
	e.cfg.OnionOpacity = min(max(opacity, 0), 1)
	e.changed()
}

// SetPaletteView switches the palette shown by the UI.
func (e *Editor) SetPaletteView(v PaletteView) {
	e.lock()
	defer e.unlock()
	if v != PaletteRecent && v != PaletteImported {
		return
	}
	e.view = v
	e.changed()
}
