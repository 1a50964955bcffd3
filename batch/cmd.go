// Package batch turns a folder of images into cleaned up sprites.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"pixelkit/canvas"
	"pixelkit/editor"
	"pixelkit/palette"
	"pixelkit/parallel"
	"pixelkit/raster"
	"pixelkit/sheet"
)

type CLICmd struct {
	Scan     string          `help:"Source folder to scan" default:"."`
	Dest     string          `help:"Destination folder for sprites. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"sprites"`
	Width    int             `help:"Canvas width, 0 keeps the image width" group:"canvas"`
	Height   int             `help:"Canvas height, 0 keeps the image height" group:"canvas"`
	Fit      bool            `help:"Scale images larger than the canvas down to fit, without smoothing" default:"false" group:"canvas"`
	Autocrop bool            `help:"Crop to the opaque content" default:"false" group:"canvas"`
	Padding  int             `help:"Transparent margin kept around the content when autocropping" default:"0" group:"canvas"`
	Center   bool            `help:"Center the opaque content" default:"false" group:"canvas"`
	Palette  string          `help:"Palette name (bw, gray16, gameboy, pico8) or palette file (.pal, .gpl, .json) to apply" group:"palette"`
	Dither   bool            `help:"Apply dithering" default:"false" group:"palette"`
	Format   string          `help:"Output format. If prefixed with 'unsup:' will convert only formats that cannot be written" enum:"same,png,unsup:png,gif,unsup:gif,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`
	Pal      palette.Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid canvas width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid canvas height: %d", c.Height)
	case c.Padding < 0:
		return fmt.Errorf("invalid padding: %d", c.Padding)
	}

	if c.Palette != "" {
		if c.Pal, err = palette.LoadPalette(c.Palette); err != nil {
			return err
		}
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		pool.Do(func() error {
			filePath := filepath.Join(c.Scan, file.Name())
			logger := slog.Default().With("file", filePath)
			if err := c.process(logger, filePath, file.Name()); err != nil {
				logger.Error("could not process image", "error", err)
				return err
			}
			return nil
		})
	}

	stats := pool.Wait()
	slog.Info("stats", "processed", stats.Done, "errors", stats.Failed, "total", stats.Total())

	if stats.Failed > 0 {
		return fmt.Errorf("error processing %d files", stats.Failed)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, filePath, fileName string) error {
	img, imgType, err := sheet.Load(filePath)
	if err != nil {
		return err
	}

	ed := editor.New(
		editor.WithFrames(c.place(logger, img)),
		editor.WithLogger(logger),
	)

	if c.Autocrop {
		ed.Autocrop(c.Padding, c.Center)
	} else if c.Center {
		ed.CenterActive()
	}

	if len(c.Pal) > 0 {
		logger.Info("applying palette", "palette", c.Palette, "colors", len(c.Pal))
		ed.SetImportedPalette(c.Pal)
		ed.RemapToPalette(c.Dither)
	}

	return save(ed.ActiveFrame(), imgType, c.Format, c.Dest, fileName)
}

// place fits img onto the requested canvas, if any.
func (c *CLICmd) place(logger *slog.Logger, img *raster.Buffer) *raster.Buffer {
	if c.Width == 0 && c.Height == 0 {
		return img
	}
	w, h := c.Width, c.Height
	if w == 0 {
		w = img.Width()
	}
	if h == 0 {
		h = img.Height()
	}
	if c.Fit {
		img = canvas.Fit(img, w, h)
	}
	logger.Info("placing on canvas", "width", w, "height", h)
	return canvas.PlaceCentered(img, w, h)
}

func save(img *raster.Buffer, imgType, outType, destDir, srcName string) (err error) {
	outType, unsupOnly := strings.CutPrefix(outType, "unsup:")
	if (unsupOnly || outType == "same") && writable(imgType) {
		outType = imgType
	} else if outType == "same" {
		outType = "png"
	}

	oldExt := filepath.Ext(srcName)
	destName := fmt.Sprintf("%s.%s", srcName[:len(srcName)-len(oldExt)], outType)

	outFile, err := os.CreateTemp(destDir, destName)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, destName)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		} else {
			os.Remove(outFile.Name())
		}
	}()

	if err = sheet.Encode(outFile, img, outType); err != nil {
		return fmt.Errorf("could not write %q: %w", destName, err)
	}

	canRename = true
	return nil
}

func writable(format string) bool {
	for _, f := range sheet.Formats {
		if f == format {
			return true
		}
	}
	return false
}
