package editor

import (
	"pixelkit/canvas"
	"pixelkit/history"
	"pixelkit/raster"
)

// Tool is the drawing tool pointer events are routed to.
type Tool int

const (
	ToolPencil Tool = iota
	ToolEraser
	ToolPicker
	ToolFill
	ToolLasso
	ToolMove
)

var toolNames = [...]string{"pencil", "eraser", "picker", "fill", "lasso", "move"}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return "unknown"
	}
	return toolNames[t]
}

// PaletteView selects which palette the UI shows.
type PaletteView int

const (
	PaletteRecent PaletteView = iota
	PaletteImported
)

const (
	defaultSize         = 32
	defaultZoom         = 8
	maxZoom             = 64
	defaultFPS          = 8
	maxFPS              = 60
	defaultMaxBrush     = 16
	defaultOnionOpacity = 0.3
)

// Config is the editor configuration read by painting and rendering.
type Config struct {
	Width  int
	Height int

	Zoom int
	Grid bool
	FPS  int

	Tool        Tool
	Color       raster.Pixel
	BrushRadius int

	OnionPrev    bool
	OnionNext    bool
	OnionOpacity float64

	// MinSize and MaxSize bound Resize.
	MinSize int
	MaxSize int
	// MaxBrushRadius caps BrushRadius.
	MaxBrushRadius int
	// HistoryDepth is the number of undo snapshots kept.
	HistoryDepth int
}

// DefaultConfig returns a 32×32 canvas with a 1×1 black pencil.
func DefaultConfig() Config {
	return Config{
		Width:          defaultSize,
		Height:         defaultSize,
		Zoom:           defaultZoom,
		Grid:           true,
		FPS:            defaultFPS,
		Tool:           ToolPencil,
		Color:          raster.Opaque(0, 0, 0),
		OnionOpacity:   defaultOnionOpacity,
		MinSize:        canvas.MinSize,
		MaxSize:        canvas.MaxSize,
		MaxBrushRadius: defaultMaxBrush,
		HistoryDepth:   history.DefaultDepth,
	}
}

// normalize repairs out of range values in place.
func (c *Config) normalize() {
	if c.MinSize < 1 {
		c.MinSize = 1
	}
	if c.MaxSize < c.MinSize {
		c.MaxSize = c.MinSize
	}
	c.Width = canvas.ClampSize(c.Width, c.MinSize, c.MaxSize)
	c.Height = canvas.ClampSize(c.Height, c.MinSize, c.MaxSize)
	c.Zoom = clampInt(c.Zoom, 1, maxZoom)
	c.FPS = clampInt(c.FPS, 1, maxFPS)
	c.MaxBrushRadius = max(c.MaxBrushRadius, 0)
	c.BrushRadius = clampInt(c.BrushRadius, 0, c.MaxBrushRadius)
	c.OnionOpacity = min(max(c.OnionOpacity, 0), 1)
	if c.Tool < ToolPencil || c.Tool > ToolMove {
		c.Tool = ToolPencil
	}
	if c.HistoryDepth < 1 {
		c.HistoryDepth = history.DefaultDepth
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
