package docgen

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

var (
	// ErrCapabilityUnavailable means no rasterizer is wired; capture
	// fails fast rather than hanging.
	ErrCapabilityUnavailable = errors.New("docgen: render capability unavailable")
	// ErrEmptyRegion means the region has no drawable area.
	ErrEmptyRegion = errors.New("docgen: region has no size")
)

// CaptureOptions control rasterization.
type CaptureOptions struct {
	// Scale multiplies the region's native resolution. The export
	// path uses 2 for print quality.
	Scale float64
	// Background fills the whole capture before drawing, regardless
	// of the region's own background.
	Background color.Color
	// IncludeExternalImages keeps images referenced from other hosts
	// in the capture instead of blanking them. Only rasterizers that
	// resolve external image references consult it; the canvas
	// rasterizer draws text regions exclusively and ignores it.
	IncludeExternalImages bool
}

// DefaultCaptureOptions are the fixed settings the exporter captures
// with: opaque white fill, 2x scale, external images included.
func DefaultCaptureOptions() CaptureOptions {
	return CaptureOptions{
		Scale:                 2,
		Background:            color.White,
		IncludeExternalImages: true,
	}
}

// Rasterizer renders a region into a pixel buffer.
type Rasterizer interface {
	Capture(ctx context.Context, region Region, opts CaptureOptions) (image.Image, error)
}

// canvasRasterizer draws regions onto a 2D canvas.
type canvasRasterizer struct{}

// NewRasterizer returns the default canvas-backed rasterizer.
func NewRasterizer() Rasterizer {
	return canvasRasterizer{}
}

func (canvasRasterizer) Capture(ctx context.Context, region Region, opts CaptureOptions) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if region.Size.X <= 0 || region.Size.Y <= 0 {
		return nil, ErrEmptyRegion
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Background == nil {
		opts.Background = color.White
	}

	w := int(float64(region.Size.X) * opts.Scale)
	h := int(float64(region.Size.Y) * opts.Scale)
	dc := gg.NewContext(w, h)
	dc.SetColor(opts.Background)
	dc.Clear()
	dc.Scale(opts.Scale, opts.Scale)

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0, 0, 0)

	const (
		marginX    = 48.0
		lineHeight = 22.0
	)
	y := 64.0
	if region.Heading != "" {
		dc.DrawString(region.Heading, marginX, y)
		y += lineHeight * 1.5
	}
	if region.Subheading != "" {
		dc.DrawString(region.Subheading, marginX, y)
		y += lineHeight * 1.5
	}
	for _, row := range region.Rows {
		dc.DrawString(fmt.Sprintf("%s: %s", row.Label, row.Value), marginX, y)
		y += lineHeight
	}
	if region.Note != "" {
		y += lineHeight
		dc.DrawString(region.Note, marginX, y)
	}
	return dc.Image(), nil
}
