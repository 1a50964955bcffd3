// Package assemble builds a sprite sheet and an animated GIF out of single
// images or existing sheets.
package assemble

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"pixelkit/canvas"
	"pixelkit/editor"
	"pixelkit/palette"
	"pixelkit/raster"
	"pixelkit/sheet"
)

type CLICmd struct {
	Frames   []string        `arg:"" help:"Frame images, in playback order"`
	Width    int             `help:"Canvas width" default:"32" group:"canvas"`
	Height   int             `help:"Canvas height" default:"32" group:"canvas"`
	Fit      bool            `help:"Scale images larger than the canvas down to fit, without smoothing" default:"false" group:"canvas"`
	Cell     string          `help:"Treat inputs as sheets and cut them into WxH cells" placeholder:"WxH" group:"canvas"`
	Autocrop bool            `help:"Crop every frame to the shared opaque content" default:"false" group:"canvas"`
	Padding  int             `help:"Transparent margin kept around the content when autocropping" default:"0" group:"canvas"`
	Center   bool            `help:"Center the opaque content of every frame" default:"false" group:"canvas"`
	Palette  string          `help:"Palette name (bw, gray16, gameboy, pico8) or palette file (.pal, .gpl, .json) to apply" group:"palette"`
	Dither   bool            `help:"Apply dithering" default:"false" group:"palette"`
	Columns  int             `help:"Sheet columns, 0 puts every frame on one row" default:"0" group:"output"`
	Out      string          `help:"Sprite sheet destination" default:"sheet.png" group:"output"`
	Format   string          `help:"Sprite sheet format (png, gif, bmp, tiff), guessed from the destination extension if empty" group:"output"`
	GIF      string          `help:"Also write an animated GIF to this path" name:"gif" group:"output"`
	FPS      int             `help:"Animation speed in frames per second" default:"8" name:"fps" group:"output"`
	Pal      palette.Palette `kong:"-"`
	cellW    int             `kong:"-"`
	cellH    int             `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Width < 1:
		return fmt.Errorf("invalid canvas width: %d", c.Width)
	case c.Height < 1:
		return fmt.Errorf("invalid canvas height: %d", c.Height)
	case c.Padding < 0:
		return fmt.Errorf("invalid padding: %d", c.Padding)
	case c.Columns < 0:
		return fmt.Errorf("invalid columns: %d", c.Columns)
	case c.FPS < 1:
		return fmt.Errorf("invalid frame rate: %d", c.FPS)
	}

	if c.Cell != "" {
		var err error
		if c.cellW, c.cellH, err = parseCell(c.Cell); err != nil {
			return err
		}
	}

	if c.Format == "" {
		c.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Out)), ".")
		if c.Format == "jpg" {
			c.Format = "jpeg"
		}
	}
	if !slices.Contains(sheet.Formats, c.Format) {
		return fmt.Errorf("unsupported sheet format %q", c.Format)
	}

	if c.Palette != "" {
		var err error
		if c.Pal, err = palette.LoadPalette(c.Palette); err != nil {
			return err
		}
	}
	return nil
}

// parseCell reads a "WxH" cell size.
func parseCell(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		w, err = strconv.Atoi(strings.TrimSpace(ws))
		if err == nil {
			h, err = strconv.Atoi(strings.TrimSpace(hs))
		}
	}
	if !ok || err != nil || w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("invalid cell size %q, expected WxH", s)
	}
	return w, h, nil
}

func (c *CLICmd) Run() error {
	imgs, err := c.load()
	if err != nil {
		return err
	}
	if len(imgs) == 0 {
		return fmt.Errorf("no frames found")
	}

	ed := editor.New(
		editor.WithSize(c.Width, c.Height),
		editor.WithLogger(slog.Default()),
	)
	w, h := ed.Size()
	for i, img := range imgs {
		if c.Fit {
			img = canvas.Fit(img, w, h)
		}
		ed.ImportFrame(img, i > 0)
	}

	if c.Autocrop {
		ed.Autocrop(c.Padding, c.Center)
	} else if c.Center {
		for i := range ed.FrameCount() {
			ed.SelectFrame(i)
			ed.CenterActive()
		}
		ed.SelectFrame(0)
	}

	if len(c.Pal) > 0 {
		slog.Info("applying palette", "palette", c.Palette, "colors", len(c.Pal))
		ed.SetImportedPalette(c.Pal)
		ed.RemapToPalette(c.Dither)
	}

	frames := ed.Frames()
	w, h = ed.Size()
	slog.Info("assembling", "frames", len(frames), "width", w, "height", h, "out", c.Out)

	if err := writeFile(c.Out, func(f *os.File) error {
		return sheet.Encode(f, sheet.Layout(frames, c.Columns), c.Format)
	}); err != nil {
		return err
	}

	if c.GIF != "" {
		slog.Info("writing animation", "fps", c.FPS, "out", c.GIF)
		return writeFile(c.GIF, func(f *os.File) error {
			return sheet.EncodeGIF(f, frames, c.FPS)
		})
	}
	return nil
}

// load decodes every input, cutting sheets into cells when requested.
func (c *CLICmd) load() ([]*raster.Buffer, error) {
	var out []*raster.Buffer
	for _, name := range c.Frames {
		img, _, err := sheet.Load(name)
		if err != nil {
			return nil, err
		}
		if c.cellW == 0 {
			out = append(out, img)
			continue
		}
		cells := sheet.Split(img, c.cellW, c.cellH)
		slog.Debug("split sheet", "file", name, "cells", len(cells))
		out = append(out, cells...)
	}
	return out, nil
}

func writeFile(name string, write func(*os.File) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", name, closeErr)
		}
	}()
	if err = write(f); err != nil {
		return fmt.Errorf("could not write %q: %w", name, err)
	}
	return nil
}
