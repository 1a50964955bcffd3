package assemble

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"pixelkit/raster"
	"pixelkit/sheet"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		in     string
		w, h   int
		hasErr bool
	}{
		{"16x16", 16, 16, false},
		{"8X4", 8, 4, false},
		{" 2 x 3 ", 2, 3, false},
		{"16", 0, 0, true},
		{"0x8", 0, 0, true},
		{"ax8", 0, 0, true},
		{"8x-1", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseCell(tt.in)
		if (err != nil) != tt.hasErr {
			t.Errorf("parseCell(%q) error = %v, want error %v", tt.in, err, tt.hasErr)
			continue
		}
		if w != tt.w || h != tt.h {
			t.Errorf("parseCell(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
		}
	}
}

func writeImage(t *testing.T, path string, img *raster.Buffer) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := sheet.Encode(f, img, "png"); err != nil {
		t.Fatal(err)
	}
}

func TestAssembleSheetAndGIF(t *testing.T) {
	dir := t.TempDir()
	red, blue := raster.Opaque(255, 0, 0), raster.Opaque(0, 0, 255)

	a := raster.New(8, 8)
	a.Fill(red)
	b := raster.New(8, 8)
	b.Fill(blue)
	writeImage(t, filepath.Join(dir, "a.png"), a)
	writeImage(t, filepath.Join(dir, "b.png"), b)

	cmd := &CLICmd{
		Frames:  []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")},
		Width:   8,
		Height:  8,
		Columns: 1,
		Out:     filepath.Join(dir, "sheet.png"),
		GIF:     filepath.Join(dir, "anim.gif"),
		FPS:     8,
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cmd.Format != "png" {
		t.Fatalf("format = %q, want png", cmd.Format)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, _, err := sheet.Load(cmd.Out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 8 || got.Height() != 16 {
		t.Fatalf("sheet is %dx%d, want 8x16", got.Width(), got.Height())
	}
	if got.Get(0, 0) != red || got.Get(0, 8) != blue {
		t.Fatal("frames out of order")
	}
	if _, err := os.Stat(cmd.GIF); err != nil {
		t.Fatalf("animation not written: %v", err)
	}
}

func TestAssembleSplitsSheets(t *testing.T) {
	dir := t.TempDir()
	src := raster.New(16, 8)
	src.SetPixel(1, 1, raster.Opaque(1, 1, 1))
	src.SetPixel(9, 2, raster.Opaque(2, 2, 2))
	writeImage(t, filepath.Join(dir, "strip.png"), src)

	cmd := &CLICmd{
		Frames: []string{filepath.Join(dir, "strip.png")},
		Width:  8,
		Height: 8,
		Cell:   "8x8",
		Out:    filepath.Join(dir, "out.png"),
		FPS:    8,
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	got, _, err := sheet.Load(cmd.Out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != image.Rect(0, 0, 16, 8) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if got.Get(1, 1) != raster.Opaque(1, 1, 1) || got.Get(9, 2) != raster.Opaque(2, 2, 2) {
		t.Fatal("cells not laid out in order")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []*CLICmd{
		{Width: 0, Height: 8, FPS: 8, Out: "a.png"},
		{Width: 8, Height: 8, FPS: 0, Out: "a.png"},
		{Width: 8, Height: 8, FPS: 8, Out: "a.webp"},
		{Width: 8, Height: 8, FPS: 8, Out: "a.png", Cell: "8"},
		{Width: 8, Height: 8, FPS: 8, Out: "a.png", Palette: "no-such-palette.gpl"},
	}
	for i, cmd := range tests {
		if err := cmd.Validate(nil); err == nil {
			t.Errorf("case %d: expected an error", i)
		}
	}
}
