package sheet

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"pixelkit/raster"
)

// Decode reads any registered image format into a buffer. It also returns
// the format name reported by the decoder.
func Decode(r io.Reader) (*raster.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %w", err)
	}
	return raster.FromImage(img), format, nil
}

// Load decodes the image file at path.
func Load(path string) (*raster.Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer f.Close()

	buf, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%q: %w", path, err)
	}
	return buf, format, nil
}
