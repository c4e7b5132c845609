// Package dial draws the analog clock face: a round dial with hour ticks
// and the three hand images rotated to the current angles.
package dial

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/clockface/pkg/assets"
	"gitlab.com/tinyland/lab/clockface/pkg/clock"
	"gitlab.com/tinyland/lab/clockface/pkg/theme"
)

// Proportions of the dial relative to its radius.
const (
	rimWidth   = 0.04
	tickInner  = 0.80
	tickOuter  = 0.92
	tickWidth  = 0.035 // radians either side of the tick angle
	hubRadius  = 0.05
	minimumDim = 16
)

// Composer draws clock frames of a fixed pixel size. It is not safe for
// concurrent use; the dashboard drives it from its update loop.
type Composer struct {
	size    int
	palette theme.Palette
	face    *image.NRGBA
	hands   [3]image.Image
}

// NewComposer creates a Composer drawing size x size frames.
func NewComposer(size int, p theme.Palette) *Composer {
	c := &Composer{size: max(size, minimumDim)}
	c.SetPalette(p)
	return c
}

// Size returns the frame edge length in pixels.
func (c *Composer) Size() int {
	return c.size
}

// SetPalette redraws the dial background in p's colors.
func (c *Composer) SetPalette(p theme.Palette) {
	c.palette = p
	c.face = drawFace(c.size, p)
}

// SetHands installs the artwork for the three hands, fitted to the frame.
func (c *Composer) SetHands(set assets.HandSet) {
	for i, h := range assets.Hands {
		img := set.Get(h)
		if img == nil {
			c.hands[i] = nil
			continue
		}
		c.hands[i] = imaging.Fit(img, c.size, c.size, imaging.Lanczos)
	}
}

// Compose draws one frame. Each hand is rotated clockwise by its angle
// about its own center and placed at the dial center, hour first and
// second last. Hands not yet installed are skipped.
func (c *Composer) Compose(a clock.Angles) *image.NRGBA {
	frame := imaging.Clone(c.face)
	angles := [3]float64{a.Hour, a.Minute, a.Second}
	for i, hand := range c.hands {
		if hand == nil {
			continue
		}
		// imaging rotates counter-clockwise.
		rotated := imaging.Rotate(hand, -angles[i], color.Transparent)
		frame = imaging.OverlayCenter(frame, rotated, 1.0)
	}
	drawHub(frame, c.palette)
	return frame
}

// drawFace renders the dial background: a filled disc, its rim and twelve
// hour ticks on a transparent square.
func drawFace(size int, p theme.Palette) *image.NRGBA {
	img := imaging.New(size, size, color.Transparent)
	face, _ := theme.RGBA(p.Face)
	rim, _ := theme.RGBA(p.Rim)
	ticks, _ := theme.RGBA(p.Ticks)

	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			d := math.Hypot(dx, dy)
			// One pixel of soft edge on the outer boundary.
			cover := math.Min(1, r-d+0.5)
			if cover <= 0 {
				continue
			}
			col := face
			switch {
			case d >= r*(1-rimWidth):
				col = rim
			case d >= r*tickInner && d <= r*tickOuter && onTick(dx, dy):
				col = ticks
			}
			col.A = uint8(float64(col.A) * cover)
			img.SetNRGBA(x, y, col)
		}
	}
	return img
}

// onTick reports whether the direction (dx, dy) lies within a tick's
// angular width of one of the twelve hour positions.
func onTick(dx, dy float64) bool {
	theta := math.Atan2(dy, dx)
	step := math.Pi / 6
	off := math.Mod(theta+2*math.Pi, step)
	return off <= tickWidth || step-off <= tickWidth
}

// drawHub paints the small disc covering the hands' pivot.
func drawHub(img *image.NRGBA, p theme.Palette) {
	hub, ok := theme.RGBA(p.Second)
	if !ok {
		return
	}
	size := img.Bounds().Dx()
	r := float64(size) / 2
	hr := math.Max(1, r*hubRadius)
	for y := int(r - hr); y <= int(r+hr); y++ {
		for x := int(r - hr); x <= int(r+hr); x++ {
			if math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) <= hr {
				img.SetNRGBA(x, y, hub)
			}
		}
	}
}
