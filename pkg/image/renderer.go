package image

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/blacktop/go-termimg"

	"gitlab.com/tinyland/lab/clockface/pkg/config"
	"gitlab.com/tinyland/lab/clockface/pkg/terminal"
)

// ErrDisabled is returned by Render when the protocol is "none".
var ErrDisabled = errors.New("image: rendering is disabled (protocol=none)")

// Renderer turns images into terminal output for a fixed protocol, caching
// the result per content and size.
type Renderer struct {
	protocol terminal.GraphicsProtocol
	caps     terminal.Capabilities
	cache    *Cache
}

// NewRenderer creates a Renderer. A configured protocol other than "auto"
// overrides the one detected in caps.
func NewRenderer(caps terminal.Capabilities, cfg config.DisplayConfig) *Renderer {
	proto := caps.Protocol
	if cfg.Protocol != "" && !strings.EqualFold(cfg.Protocol, "auto") {
		proto = terminal.SelectProtocolWithOverride(caps.Term, cfg.Protocol)
	}
	return &Renderer{
		protocol: proto,
		caps:     caps,
		cache:    NewCache(cfg.CacheSizeMB),
	}
}

// Protocol returns the active rendering protocol.
func (r *Renderer) Protocol() terminal.GraphicsProtocol {
	return r.protocol
}

// Cache returns the renderer's cache.
func (r *Renderer) Cache() *Cache {
	return r.cache
}

// PixelSize returns the pixel budget of a width x height cell area for the
// active protocol. Halfblocks draw one pixel per column and two per row.
func (r *Renderer) PixelSize(width, height int) (int, int) {
	cw, ch := r.cellSize()
	return width * cw, height * ch
}

func (r *Renderer) cellSize() (int, int) {
	if r.protocol == terminal.ProtocolHalfblocks {
		return 1, 2
	}
	cw, ch := r.caps.Size.CellW, r.caps.Size.CellH
	if cw <= 0 || ch <= 0 {
		return defaultCellW, defaultCellH
	}
	return cw, ch
}

// Render converts img to a terminal string occupying at most width x
// height cells.
func (r *Renderer) Render(img image.Image, width, height int) (string, error) {
	if img == nil {
		return "", errors.New("image: nil image")
	}
	if r.protocol == terminal.ProtocolNone {
		return "", ErrDisabled
	}

	key := makeCacheKey(r.protocol.String(), width, height, hashImage(img))
	if cached, ok := r.cache.Get(key); ok {
		return cached, nil
	}

	cw, ch := r.cellSize()
	resized := ResizeToFit(img, width, height, cw, ch)

	var (
		out string
		err error
	)
	switch r.protocol {
	case terminal.ProtocolKitty:
		out, err = renderTermimg(resized, termimg.Kitty, width, height)
	case terminal.ProtocolITerm2:
		out, err = renderTermimg(resized, termimg.ITerm2, width, height)
	case terminal.ProtocolSixel:
		out, err = renderTermimg(resized, termimg.Sixel, width, height)
	default:
		out = renderHalfblocks(resized)
	}
	if err != nil {
		return "", fmt.Errorf("image: render %s: %w", r.protocol, err)
	}

	r.cache.Put(key, out)
	return out, nil
}

// renderTermimg delegates Kitty, iTerm2 and Sixel output to go-termimg.
func renderTermimg(img image.Image, proto termimg.Protocol, widthCells, heightCells int) (string, error) {
	ti := termimg.New(img)
	if ti == nil {
		return "", errors.New("go-termimg: failed to create image wrapper")
	}
	ti.Protocol(proto).Size(widthCells, heightCells).Scale(termimg.ScaleFit)
	return ti.Render()
}

// renderHalfblocks draws two vertical pixels per cell with U+2580: the top
// pixel is the foreground, the bottom one the background. Fully
// transparent pixels leave the terminal background showing.
func renderHalfblocks(img image.Image) string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return ""
	}
	px := ImageToNRGBA(img)

	var b strings.Builder
	b.Grow(w * ((h + 1) / 2) * 40)
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteString("\x1b[0m\n")
		}
		for x := 0; x < w; x++ {
			top := px.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			bot := top
			bot.A = 0
			if y+1 < h {
				bot = px.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y+1)
			}

			switch {
			case top.A == 0 && bot.A == 0:
				b.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

// hashImage hashes the dimensions and every pixel of img. Sampling would
// miss a thin hand moving between frames.
func hashImage(img image.Image) [32]byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	hasher := sha256.New()
	var dim [8]byte
	binary.LittleEndian.PutUint32(dim[:4], uint32(w))
	binary.LittleEndian.PutUint32(dim[4:], uint32(h))
	hasher.Write(dim[:])

	px := ImageToNRGBA(img)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		off := px.PixOffset(bounds.Min.X, y)
		hasher.Write(px.Pix[off : off+w*4])
	}

	var sum [32]byte
	copy(sum[:], hasher.Sum(nil))
	return sum
}
