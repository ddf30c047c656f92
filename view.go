package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/assets"
	"github.com/milk9111/arplace/common"
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
	ecssys "github.com/milk9111/arplace/ecs/system"
	"github.com/milk9111/arplace/system"
)

const planeFadeRate = 0.15

// view draws the simulated camera feed: tracked planes as outlines and
// placed objects as wireframe boxes.
type view struct {
	planeAlpha float32
}

func newView() *view {
	return &view{planeAlpha: 1}
}

func (v *view) Draw(screen *ebiten.Image, w *system.World) {
	screen.Fill(colornames.Darkslategray)
	cam := w.Host.Camera

	target := float32(0)
	if w.Host.DetectionEnabled() {
		target = 1
	}
	v.planeAlpha = common.Lerp(v.planeAlpha, target, planeFadeRate)

	if v.planeAlpha > 0.01 {
		for _, p := range w.Host.Trackables() {
			c := planeColor(p.Alignment)
			c.A = uint8(float32(c.A) * v.planeAlpha)
			strokeLoop(screen, cam.Project, p.Corners(), 2, c)
		}
	}

	var selected ecs.Entity
	if w.Placement != nil {
		selected = w.Placement.Session().Selected
	}
	ecs.ForEach2(w.ECS, component.TransformComponent.Kind(), component.AppearanceComponent.Kind(),
		func(e ecs.Entity, tr *component.Transform, ap *component.Appearance) {
			width, c := float32(2), color.Color(ap.Color)
			if e == selected {
				width, c = 3, colornames.Gold
			}
			class := component.PlacementFloor
			if p, ok := ecs.Get(w.ECS, e, component.PlaceableComponent.Kind()); ok {
				class = p.Class
			}
			drawBox(screen, cam.Project, boxCorners(tr, ap, class), width, c)
		})

	if in := ecssys.TouchFrame(w.ECS); in != nil {
		for _, t := range in.Touches {
			if t.Phase == component.TouchEnded || t.Phase == component.TouchCanceled {
				continue
			}
			b := assets.Reticle.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(t.Position.X()-float64(b.Dx())/2, t.Position.Y()-float64(b.Dy())/2)
			screen.DrawImage(assets.Reticle, op)
		}
	}
}

type projectFunc func(mgl64.Vec3) (ar.ScreenPoint, float64, bool)

func planeColor(a ar.PlaneAlignment) color.RGBA {
	switch a {
	case ar.HorizontalUp:
		return color.RGBA{R: 0x40, G: 0xc0, B: 0xff, A: 0xc0}
	case ar.Vertical:
		return color.RGBA{R: 0xff, G: 0xa0, B: 0x40, A: 0xc0}
	default:
		return color.RGBA{R: 0xc0, G: 0x80, B: 0xff, A: 0xc0}
	}
}

// boxCorners returns the 8 corners of an object's scaled box: the base four
// first, then the top four. Floor items stand on their position, wall items
// are centred on it.
func boxCorners(tr *component.Transform, ap *component.Appearance, class component.PlacementClass) []mgl64.Vec3 {
	half := mgl64.Vec3{
		ap.Size.X() * tr.Scale.X() / 2,
		ap.Size.Y() * tr.Scale.Y() / 2,
		ap.Size.Z() * tr.Scale.Z() / 2,
	}
	y0, y1 := 0.0, 2*half.Y()
	if class == component.PlacementWall {
		y0, y1 = -half.Y(), half.Y()
	}
	local := []mgl64.Vec3{
		{-half.X(), y0, -half.Z()}, {half.X(), y0, -half.Z()}, {half.X(), y0, half.Z()}, {-half.X(), y0, half.Z()},
		{-half.X(), y1, -half.Z()}, {half.X(), y1, -half.Z()}, {half.X(), y1, half.Z()}, {-half.X(), y1, half.Z()},
	}
	out := make([]mgl64.Vec3, len(local))
	for i, l := range local {
		out[i] = tr.Position.Add(tr.Rotation.Rotate(l))
	}
	return out
}

func drawBox(screen *ebiten.Image, project projectFunc, corners []mgl64.Vec3, width float32, c color.Color) {
	if len(corners) != 8 {
		return
	}
	strokeLoop(screen, project, corners[:4], width, c)
	strokeLoop(screen, project, corners[4:], width, c)
	for i := 0; i < 4; i++ {
		strokeEdge(screen, project, corners[i], corners[i+4], width, c)
	}
}

func strokeLoop(screen *ebiten.Image, project projectFunc, pts []mgl64.Vec3, width float32, c color.Color) {
	for i := range pts {
		strokeEdge(screen, project, pts[i], pts[(i+1)%len(pts)], width, c)
	}
}

// strokeEdge skips edges with an endpoint behind the camera.
func strokeEdge(screen *ebiten.Image, project projectFunc, a, b mgl64.Vec3, width float32, c color.Color) {
	pa, _, okA := project(a)
	pb, _, okB := project(b)
	if !okA || !okB {
		return
	}
	vector.StrokeLine(screen, float32(pa.X()), float32(pa.Y()), float32(pb.X()), float32(pb.Y()), width, c, true)
}
