package image

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Default cell size in pixels when the terminal does not report one.
const (
	defaultCellW = 8
	defaultCellH = 16
)

// ResizeToFit scales img to fit within maxWidthCells x maxHeightCells
// terminal cells of cellW x cellH pixels, preserving aspect ratio. Images
// that already fit are returned unmodified. Downscaled output gets a light
// sharpen to keep thin hands visible.
func ResizeToFit(img image.Image, maxWidthCells, maxHeightCells, cellW, cellH int) image.Image {
	if img == nil {
		return nil
	}
	if cellW <= 0 {
		cellW = defaultCellW
	}
	if cellH <= 0 {
		cellH = defaultCellH
	}
	maxW := max(maxWidthCells, 1) * cellW
	maxH := max(maxHeightCells, 1) * cellH

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return img
	}
	if srcW <= maxW && srcH <= maxH {
		return img
	}

	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	dstW := max(int(math.Round(float64(srcW)*scale)), 1)
	dstH := max(int(math.Round(float64(srcH)*scale)), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	if dstW < 3 || dstH < 3 {
		return dst
	}
	return imaging.Sharpen(dst, 0.5)
}

// ImageToNRGBA converts any image.Image to *image.NRGBA for direct pixel
// access.
func ImageToNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok {
		return nrgba
	}
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
