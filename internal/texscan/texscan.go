// Package texscan scans decoded texture pixels for the vertical band of
// rows containing visible (non-transparent) content.
package texscan

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Band is the vertical span of texture rows with visible pixels.
// Rows are inclusive; TotalHeight is the full texture height the band was
// measured against.
type Band struct {
	TopRow      int
	BottomRow   int
	TotalHeight int
}

// ToNRGBA normalizes any decoded image to straight-alpha NRGBA so row
// scanning can read the alpha channel directly. The input image is
// returned unchanged when it is already NRGBA with a zero origin.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	return dst
}

// ScanVisibleRows scans the image's alpha channel row by row from the top
// and from the bottom until a row contains any pixel whose alpha exceeds
// the threshold. It reports ok=false for a nil or empty image, or when no
// row is visible at all; callers then fall back to the full texture
// height.
func ScanVisibleRows(img image.Image, alphaThreshold uint8) (Band, bool) {
	if img == nil {
		return Band{}, false
	}
	n := ToNRGBA(img)
	w := n.Rect.Dx()
	h := n.Rect.Dy()
	if w == 0 || h == 0 {
		return Band{}, false
	}

	rowVisible := func(y int) bool {
		row := n.Pix[y*n.Stride : y*n.Stride+w*4]
		for x := 3; x < len(row); x += 4 {
			if row[x] > alphaThreshold {
				return true
			}
		}
		return false
	}

	top := 0
	for top < h && !rowVisible(top) {
		top++
	}
	if top == h {
		return Band{}, false
	}
	bottom := h - 1
	for bottom > top && !rowVisible(bottom) {
		bottom--
	}
	return Band{TopRow: top, BottomRow: bottom, TotalHeight: h}, true
}
