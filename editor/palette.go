package editor

import (
	"io"

	"pixelkit/palette"
	"pixelkit/raster"
)

// ImportPalette parses palette text and, when it holds any colour, makes it
// the imported palette and shows it. It returns the number of colours read;
// on zero the previous palette is kept and a notice is emitted.
func (e *Editor) ImportPalette(text string) int {
	pal := palette.Parse(text)
	e.lock()
	defer e.unlock()
	return e.setImported(pal)
}

// ImportPaletteRIFF is ImportPalette for binary RIFF palette files.
func (e *Editor) ImportPaletteRIFF(r io.Reader) (int, error) {
	pal, err := palette.ReadRIFF(r)
	if err != nil {
		return 0, err
	}
	e.lock()
	defer e.unlock()
	return e.setImported(pal), nil
}

// SetImportedPalette installs an already parsed palette, capped at
// palette.MaxColors, as if it had been imported.
func (e *Editor) SetImportedPalette(pal palette.Palette) int {
	if len(pal) > palette.MaxColors {
		pal = pal[:palette.MaxColors]
	}
	e.lock()
	defer e.unlock()
	return e.setImported(append(palette.Palette(nil), pal...))
}

func (e *Editor) setImported(pal palette.Palette) int {
	if len(pal) == 0 {
		e.notice("no colors found in palette")
		return 0
	}
	e.imported = pal
	e.view = PaletteImported
	e.changed()
	e.logger.Debug("palette imported", "colors", len(pal))
	return len(pal)
}

// RemapToPalette replaces every pixel of every frame with its nearest
// imported palette colour, optionally with error diffusion.
func (e *Editor) RemapToPalette(dither bool) bool {
	e.lock()
	defer e.unlock()
	if len(e.imported) == 0 {
		e.notice("import a palette first")
		return false
	}
	e.checkpoint()
	src := e.frames.Frames()
	out := make([]*raster.Buffer, len(src))
	for i, f := range src {
		if dither {
			out[i] = palette.Dither(f, e.imported)
		} else {
			out[i] = palette.Remap(f, e.imported)
		}
	}
	e.frames.ReplaceAll(out)
	e.move = nil
	e.changed()
	return true
}
