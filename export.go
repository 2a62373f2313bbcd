package glaze

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// ToImage converts the surface to an image.NRGBA sharing no storage with
// the surface.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pixels)
	return img
}

// SurfaceFromImage creates a surface from any image.Image. The fast path
// copies *image.NRGBA pixel data directly; other formats go through the
// color model.
func SurfaceFromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	s := NewSurface(bounds.Dx(), bounds.Dy())

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == s.width*4 {
		copy(s.pixels, nrgba.Pix)
		return s
	}

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.Set(x, y, FromImageColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return s
}

// ExportPNG writes the surface to a PNG file at the given path.
func (s *Surface) ExportPNG(path string) error {
	return writePNG(path, s.ToImage())
}

// LoadPNG reads a PNG file into a new surface.
func LoadPNG(path string) (*Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return SurfaceFromImage(img), nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
