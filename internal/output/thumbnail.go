package output

import (
	"image"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Thumbnail scales img down so its longer side is maxSide, keeping the
// aspect ratio. Images already small enough are returned as is.
func Thumbnail(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}

	tw, th := maxSide, maxSide
	if w >= h {
		th = max(1, h*maxSide/w)
	} else {
		tw = max(1, w*maxSide/h)
	}

	// CatmullRom approximates Lanczos at a fraction of the cost.
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// PreviewPath derives the thumbnail file name for an output path:
// render.png → render.preview.png.
func PreviewPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + ".preview" + ext
}
