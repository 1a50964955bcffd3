// Package sheet lays frames out into sprite sheets and encodes or decodes
// them in the common raster formats.
package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"pixelkit/raster"
)

// Formats lists the encodable output formats.
var Formats = []string{"png", "gif", "bmp", "tiff", "jpeg"}

// Layout places equally sized frames on a grid, left to right then top to
// bottom. columns <= 0 puts every frame on one row. Unused cells stay
// transparent.
func Layout(frames []*raster.Buffer, columns int) *raster.Buffer {
	if len(frames) == 0 {
		return raster.New(0, 0)
	}
	if columns <= 0 || columns > len(frames) {
		columns = len(frames)
	}
	rows := (len(frames) + columns - 1) / columns
	w, h := frames[0].Width(), frames[0].Height()

	out := raster.New(w*columns, h*rows)
	for i, f := range frames {
		out.Blit(f, (i%columns)*w, (i/columns)*h)
	}
	return out
}

// Split cuts a sheet into frames of width×height, row by row, skipping cells
// without any opaque pixel. It is the inverse of Layout.
func Split(img *raster.Buffer, width, height int) []*raster.Buffer {
	if width <= 0 || height <= 0 {
		return nil
	}
	var out []*raster.Buffer
	for y := 0; y+height <= img.Height(); y += height {
		for x := 0; x+width <= img.Width(); x += width {
			cell := img.SubBuffer(image.Rect(x, y, x+width, y+height))
			if _, ok := cell.ContentBounds(); ok {
				out = append(out, cell)
			}
		}
	}
	return out
}

// Encode writes img in the named format.
func Encode(w io.Writer, img *raster.Buffer, format string) error {
	src := img.NRGBA()
	switch format {
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err := enc.Encode(w, src); err != nil {
			return fmt.Errorf("could not encode PNG: %w", err)
		}
	case "gif":
		if err := gif.Encode(w, paletted(img), nil); err != nil {
			return fmt.Errorf("could not encode GIF: %w", err)
		}
	case "jpeg":
		if err := jpeg.Encode(w, src, &jpeg.Options{Quality: 100}); err != nil {
			return fmt.Errorf("could not encode JPEG: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(w, src); err != nil {
			return fmt.Errorf("could not encode BMP: %w", err)
		}
	case "tiff":
		if err := tiff.Encode(w, src, nil); err != nil {
			return fmt.Errorf("could not encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}

// EncodeGIF writes frames as a looping animated GIF at fps frames per second.
// Empty pixels become the transparent palette entry.
func EncodeGIF(w io.Writer, frames []*raster.Buffer, fps int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	delay := 100 / max(fps, 1)
	anim := &gif.GIF{}
	for _, f := range frames {
		anim.Image = append(anim.Image, paletted(f))
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("could not encode animated GIF: %w", err)
	}
	return nil
}

// paletted converts a buffer to a paletted image with index 0 transparent.
// Sprites rarely exceed 255 colours; beyond that the remaining colours are
// matched to the nearest entry by the standard palette lookup.
func paletted(img *raster.Buffer) *image.Paletted {
	pal := color.Palette{color.NRGBA{}}
	index := map[raster.Pixel]uint8{raster.Transparent: 0}
	for _, p := range img.Pix {
		if _, ok := index[p]; ok || len(pal) == 256 {
			continue
		}
		index[p] = uint8(len(pal))
		pal = append(pal, p.NRGBA())
	}

	out := image.NewPaletted(img.Bounds(), pal)
	for i, p := range img.Pix {
		if idx, ok := index[p]; ok {
			out.Pix[i] = idx
			continue
		}
		out.Pix[i] = uint8(pal[1:].Index(p.NRGBA()) + 1)
	}
	return out
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
