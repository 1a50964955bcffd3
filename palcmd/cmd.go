// Package palcmd inspects and converts palettes.
package palcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"pixelkit/palette"
)

type CLICmd struct {
	Palette string          `arg:"" help:"Palette name (bw, gray16, gameboy, pico8) or palette file (.pal, .gpl, .json)"`
	JSON    bool            `help:"Print the colors as a JSON array" default:"false" name:"json"`
	Out     string          `help:"Write the palette to this RIFF PAL file"`
	Pal     palette.Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	c.Pal, err = palette.LoadPalette(c.Palette)
	return err
}

func (c *CLICmd) Run(w io.Writer) error {
	colors := c.Pal.Hex()
	if c.JSON {
		if err := json.NewEncoder(w).Encode(colors); err != nil {
			return fmt.Errorf("could not print palette: %w", err)
		}
	} else if _, err := fmt.Fprintln(w, strings.Join(colors, "\n")); err != nil {
		return fmt.Errorf("could not print palette: %w", err)
	}

	if c.Out == "" {
		return nil
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", c.Out, err)
	}
	_, err = palette.WriteRIFF(f, c.Pal)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("could not write %q: %w", c.Out, err)
	}
	slog.Info("palette written", "file", c.Out, "colors", len(c.Pal))
	return nil
}
