package renderer

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Framebuffer holds the rendered image as packed 8-bit RGB rows,
// row 0 at the top of the image
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel, row-major
}

// NewFramebuffer allocates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// SetRGB writes one pixel
func (fb *Framebuffer) SetRGB(x, y int, r, g, b uint8) {
	i := (y*fb.Width + x) * 3
	fb.Pix[i] = r
	fb.Pix[i+1] = g
	fb.Pix[i+2] = b
}

// RGBAt reads one pixel
func (fb *Framebuffer) RGBAt(x, y int) (r, g, b uint8) {
	i := (y*fb.Width + x) * 3
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

// Row returns the packed RGB bytes of one row, aliasing the buffer
func (fb *Framebuffer) Row(y int) []uint8 {
	start := y * fb.Width * 3
	return fb.Pix[start : start+fb.Width*3]
}

// ToRGBA copies the framebuffer into an image.RGBA for encoding or display
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.RGBAt(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	return img
}

// ScaledRGBA converts the framebuffer and upscales it by an integer factor
// using Catmull-Rom resampling. Scale values below 2 return the plain copy.
func (fb *Framebuffer) ScaledRGBA(scale int) *image.RGBA {
	src := fb.ToRGBA()
	if scale <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, fb.Width*scale, fb.Height*scale))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
