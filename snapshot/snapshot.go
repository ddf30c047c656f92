// Package snapshot renders a top-down plan of a room's planes and the
// objects placed in it, and writes it as WebP.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
)

// Options controls plan rendering.
type Options struct {
	// PixelsPerMetre is the plan scale. Zero means 100.
	PixelsPerMetre float64
	// Margin is the border around the content in pixels.
	Margin int
	// Labels draws object names next to their footprints.
	Labels bool
}

var (
	backgroundColor = colornames.White
	floorColor      = colornames.Gainsboro
	wallColor       = colornames.Dimgray
	labelColor      = colornames.Black
)

const wallStroke = 4.0

// plan maps world XZ to image pixels, +Z pointing up the image.
type plan struct {
	minX, maxZ float64
	ppm        float64
	margin     float64
}

func (p plan) pt(v mgl64.Vec3) (float32, float32) {
	x := (v.X()-p.minX)*p.ppm + p.margin
	y := (p.maxZ-v.Z())*p.ppm + p.margin
	return float32(x), float32(y)
}

// Render draws planes and every entity with a Transform and Appearance.
func Render(w *ecs.World, planes []*ar.Plane, opts Options) *image.RGBA {
	if opts.PixelsPerMetre <= 0 {
		opts.PixelsPerMetre = 100
	}

	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	grow := func(v mgl64.Vec3) {
		minX, maxX = math.Min(minX, v.X()), math.Max(maxX, v.X())
		minZ, maxZ = math.Min(minZ, v.Z()), math.Max(maxZ, v.Z())
	}
	for _, p := range planes {
		for _, c := range p.Corners() {
			grow(c)
		}
	}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.AppearanceComponent.Kind(),
		func(_ ecs.Entity, tr *component.Transform, ap *component.Appearance) {
			for _, c := range footprint(tr, ap) {
				grow(c)
			}
		})
	if math.IsInf(minX, 1) {
		minX, maxX, minZ, maxZ = -1, 1, -1, 1
	}

	pl := plan{minX: minX, maxZ: maxZ, ppm: opts.PixelsPerMetre, margin: float64(opts.Margin)}
	width := int(math.Ceil((maxX-minX)*pl.ppm)) + 2*opts.Margin + 1
	height := int(math.Ceil((maxZ-minZ)*pl.ppm)) + 2*opts.Margin + 1

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	for _, p := range planes {
		if p.Alignment == ar.HorizontalUp {
			fillPolygon(img, pl, p.Corners(), floorColor)
		}
	}
	for _, p := range planes {
		if p.Alignment == ar.Vertical {
			c := p.Corners()
			strokeSegment(img, pl, c[0], c[2], wallStroke, wallColor)
		}
	}

	type label struct {
		at   mgl64.Vec3
		text string
	}
	var labels []label
	for _, e := range w.Query(component.TransformComponent.Kind(), component.AppearanceComponent.Kind()) {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		ap, _ := ecs.Get(w, e, component.AppearanceComponent.Kind())
		fillPolygon(img, pl, footprint(tr, ap), ap.Color)
		if opts.Labels {
			if p, ok := ecs.Get(w, e, component.PlaceableComponent.Kind()); ok {
				labels = append(labels, label{at: tr.Position, text: p.Name})
			}
		}
	}

	d := &font.Drawer{Dst: img, Src: image.NewUniform(labelColor), Face: basicfont.Face7x13}
	for _, l := range labels {
		x, y := pl.pt(l.at)
		d.Dot = fixed.P(int(x)+4, int(y)-4)
		d.DrawString(l.text)
	}
	return img
}

// Encode writes img as lossless WebP.
func Encode(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// WriteWebP writes img to path.
func WriteWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	if err := Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// footprint is the scaled, rotated box base of an object.
func footprint(tr *component.Transform, ap *component.Appearance) []mgl64.Vec3 {
	hx := ap.Size.X() * tr.Scale.X() / 2
	hz := ap.Size.Z() * tr.Scale.Z() / 2
	local := []mgl64.Vec3{{-hx, 0, -hz}, {hx, 0, -hz}, {hx, 0, hz}, {-hx, 0, hz}}
	out := make([]mgl64.Vec3, len(local))
	for i, v := range local {
		out[i] = tr.Position.Add(tr.Rotation.Rotate(v))
	}
	return out
}

func fillPolygon(img *image.RGBA, pl plan, pts []mgl64.Vec3, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	x, y := pl.pt(pts[0])
	r.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = pl.pt(p)
		r.LineTo(x, y)
	}
	r.ClosePath()
	r.Draw(img, b, image.NewUniform(c), image.Point{})
}

// strokeSegment draws a from-to line of the given pixel width.
func strokeSegment(img *image.RGBA, pl plan, from, to mgl64.Vec3, width float64, c color.Color) {
	ax, ay := pl.pt(from)
	bx, by := pl.pt(to)
	dx, dy := float64(bx-ax), float64(by-ay)
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	ox, oy := float32(-dy/n*width/2), float32(dx/n*width/2)

	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(ax+ox, ay+oy)
	r.LineTo(bx+ox, by+oy)
	r.LineTo(bx-ox, by-oy)
	r.LineTo(ax-ox, ay-oy)
	r.ClosePath()
	r.Draw(img, b, image.NewUniform(c), image.Point{})
}
