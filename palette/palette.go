// Package palette imports, exports and applies colour palettes.
package palette

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pixelkit/raster"
)

// MaxColors caps the size of an imported palette.
const MaxColors = 256

// Palette is an ordered list of colours.
type Palette []raster.Pixel

// Parse reads palette text in either accepted format: a JSON array of
// "#RRGGBB" strings, or GIMP-style lines of three decimal channels. Anything
// unreadable yields an empty palette rather than an error.
func Parse(text string) Palette {
	if pal, ok := parseJSON(text); ok {
		return pal
	}
	return parseLines(text)
}

// parseJSON handles the array form. ok is false when text is not a JSON
// array, so the caller falls back to the line format.
func parseJSON(text string) (Palette, bool) {
	var entries []string
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		return nil, false
	}
	var pal Palette
	for _, e := range entries {
		if len(pal) == MaxColors {
			break
		}
		if p, ok := parseHex(e); ok {
			pal = append(pal, p)
		}
	}
	return pal, true
}

func parseHex(s string) (raster.Pixel, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return raster.Pixel(0xff000000 | uint32(v)), true
}

// keywords that start header lines in GIMP palette files
var lineKeywords = []string{"GIMP", "Name:", "Columns:"}

// parseLines reads "r g b [name]" lines. Comments, header keywords and lines
// with fewer than three tokens or channels outside 0-255 are skipped.
func parseLines(text string) Palette {
	var pal Palette
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() && len(pal) < MaxColors {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || hasKeyword(line) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		var ch [3]uint8
		valid := true
		for i := range ch {
			v, err := strconv.Atoi(fields[i])
			if err != nil || v < 0 || v > 255 {
				valid = false
				break
			}
			ch[i] = uint8(v)
		}
		if valid {
			pal = append(pal, raster.Opaque(ch[0], ch[1], ch[2]))
		}
	}
	return pal
}

func hasKeyword(line string) bool {
	for _, k := range lineKeywords {
		if strings.HasPrefix(line, k) {
			return true
		}
	}
	return false
}

// Hex formats every colour as "#RRGGBB", the JSON export form.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
	}
	return out
}

// LoadPalette resolves name to a built-in palette or reads it from a file.
// Files ending in .pal are read as RIFF palettes, anything else as text.
func LoadPalette(name string) (Palette, error) {
	if pal, ok := builtin[strings.ToLower(name)]; ok {
		return pal, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer f.Close()

	var pal Palette
	if strings.EqualFold(filepath.Ext(name), ".pal") {
		if pal, err = ReadRIFF(f); err != nil {
			return nil, err
		}
	} else {
		var sb strings.Builder
		if _, err = bufio.NewReader(f).WriteTo(&sb); err != nil {
			return nil, fmt.Errorf("could not read palette %q: %w", name, err)
		}
		pal = Parse(sb.String())
	}

	if len(pal) == 0 {
		return nil, fmt.Errorf("no colors found in palette %q", name)
	}
	return pal, nil
}

var builtin = map[string]Palette{
	"bw": {raster.Opaque(0, 0, 0), raster.Opaque(255, 255, 255)},
	"gameboy": {
		raster.Opaque(0x0f, 0x38, 0x0f), raster.Opaque(0x30, 0x62, 0x30),
		raster.Opaque(0x8b, 0xac, 0x0f), raster.Opaque(0x9b, 0xbc, 0x0f),
	},
	"pico8": {
		raster.Opaque(0x00, 0x00, 0x00), raster.Opaque(0x1d, 0x2b, 0x53),
		raster.Opaque(0x7e, 0x25, 0x53), raster.Opaque(0x00, 0x87, 0x51),
		raster.Opaque(0xab, 0x52, 0x36), raster.Opaque(0x5f, 0x57, 0x4f),
		raster.Opaque(0xc2, 0xc3, 0xc7), raster.Opaque(0xff, 0xf1, 0xe8),
		raster.Opaque(0xff, 0x00, 0x4d), raster.Opaque(0xff, 0xa3, 0x00),
		raster.Opaque(0xff, 0xec, 0x27), raster.Opaque(0x00, 0xe4, 0x36),
		raster.Opaque(0x29, 0xad, 0xff), raster.Opaque(0x83, 0x76, 0x9c),
		raster.Opaque(0xff, 0x77, 0xa8), raster.Opaque(0xff, 0xcc, 0xaa),
	},
	"gray16": gray(16),
}

func gray(n int) Palette {
	pal := make(Palette, n)
	for i := range pal {
		v := uint8(i * 255 / (n - 1))
		pal[i] = raster.Opaque(v, v, v)
	}
	return pal
}
