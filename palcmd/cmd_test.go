package palcmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pixelkit/palette"
)

func TestPrintHex(t *testing.T) {
	cmd := &CLICmd{Palette: "bw"}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := cmd.Run(&buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "#000000\n#FFFFFF\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "two.json")
	if err := os.WriteFile(src, []byte(`["#102030", "#405060"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := &CLICmd{Palette: src, JSON: true}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := cmd.Run(&buf); err != nil {
		t.Fatal(err)
	}
	var got []string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if len(got) != 2 || got[0] != "#102030" || got[1] != "#405060" {
		t.Fatalf("colors = %v", got)
	}
}

func TestWriteRIFF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gb.pal")
	cmd := &CLICmd{Palette: "gameboy", Out: out}
	if err := cmd.Validate(nil); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(&bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	got, err := palette.LoadPalette(out)
	if err != nil {
		t.Fatalf("written palette unreadable: %v", err)
	}
	if len(got) != len(cmd.Pal) {
		t.Fatalf("read %d colors, want %d", len(got), len(cmd.Pal))
	}
	for i := range got {
		if got[i] != cmd.Pal[i] {
			t.Fatalf("color %d = %08x, want %08x", i, got[i], cmd.Pal[i])
		}
	}
}

func TestValidateUnknownPalette(t *testing.T) {
	cmd := &CLICmd{Palette: filepath.Join(t.TempDir(), "missing.gpl")}
	if err := cmd.Validate(nil); err == nil {
		t.Fatal("expected an error")
	}
}
