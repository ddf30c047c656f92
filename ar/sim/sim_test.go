package sim

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
)

func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-6
}

func mustRoom(t *testing.T, name string) *Room {
	t.Helper()
	room, err := LoadRoom(name)
	if err != nil {
		t.Fatalf("LoadRoom(%s): %v", name, err)
	}
	return room
}

func TestLoadRoom(t *testing.T) {
	names := RoomNames()
	if strings.Join(names, ",") != "living_room,studio" {
		t.Fatalf("RoomNames = %v", names)
	}
	for _, name := range []string{"living_room", "living_room.yaml", "rooms/studio", "ar/sim/rooms/studio.yaml"} {
		if _, err := LoadRoom(name); err != nil {
			t.Fatalf("LoadRoom(%q): %v", name, err)
		}
	}
	if _, err := LoadRoom("attic"); err == nil {
		t.Fatalf("expected error for missing room")
	}

	room := mustRoom(t, "living_room")
	if len(room.Planes) != 4 || room.Planes[0].Alignment != ar.HorizontalUp {
		t.Fatalf("unexpected living room planes: %+v", room.Planes)
	}
}

func TestParseRoomValidation(t *testing.T) {
	const camera = "camera: {eye: [0, 1, 0], target: [0, 1, 1], fov: 60, width: 100, height: 100}\n"
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "viewport", src: "camera: {fov: 60}\n", wantErr: "viewport"},
		{name: "fov", src: "camera: {fov: 200, width: 10, height: 10}\n", wantErr: "fov"},
		{name: "zero id", src: camera + "planes: [{normal: [0, 1, 0]}]\n", wantErr: "invalid or duplicate"},
		{name: "duplicate id", src: camera + "planes: [{id: 1, normal: [0, 1, 0]}, {id: 1, normal: [0, 1, 0]}]\n", wantErr: "invalid or duplicate"},
		{name: "zero normal", src: camera + "planes: [{id: 1}]\n", wantErr: "zero normal"},
		{name: "bad alignment", src: camera + "planes: [{id: 1, alignment: slope, normal: [0, 1, 0]}]\n", wantErr: "slope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoom([]byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("clip defaults", func(t *testing.T) {
		room, err := ParseRoom([]byte(camera))
		if err != nil {
			t.Fatalf("ParseRoom: %v", err)
		}
		if room.Camera.Near != 0.05 || room.Camera.Far != 100 {
			t.Fatalf("near/far = %v/%v", room.Camera.Near, room.Camera.Far)
		}
	})
}

func TestPlanePose(t *testing.T) {
	tests := []struct {
		name               string
		normal             mgl64.Vec3
		up, forward, right mgl64.Vec3
	}{
		{name: "floor", normal: mgl64.Vec3{0, 1, 0}, up: ar.WorldUp, forward: ar.WorldForward, right: ar.WorldRight},
		{name: "back wall", normal: mgl64.Vec3{0, 0, -1}, up: mgl64.Vec3{0, 0, -1}, forward: ar.WorldUp, right: ar.WorldRight},
		{name: "side wall", normal: mgl64.Vec3{2, 0, 0}, up: ar.WorldRight, forward: ar.WorldUp, right: mgl64.Vec3{0, 0, 1}},
		{name: "ceiling", normal: mgl64.Vec3{0, -1, 0}, up: mgl64.Vec3{0, -1, 0}, forward: ar.WorldForward, right: mgl64.Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PlanePose(mgl64.Vec3{1, 2, 3}, tt.normal)
			if !vecNear(p.Up(), tt.up) {
				t.Fatalf("up = %v want %v", p.Up(), tt.up)
			}
			if !vecNear(p.Forward(), tt.forward) {
				t.Fatalf("forward = %v want %v", p.Forward(), tt.forward)
			}
			if !vecNear(p.Right(), tt.right) {
				t.Fatalf("right = %v want %v", p.Right(), tt.right)
			}
		})
	}
}

func TestCamera(t *testing.T) {
	cam := NewCamera(mustRoom(t, "living_room").Camera)
	center := ar.ScreenPoint{float64(cam.Width) / 2, float64(cam.Height) / 2}

	pt, depth, ok := cam.Project(cam.Target)
	if !ok || pt.Sub(center).Len() > 1e-6 {
		t.Fatalf("target projects to %v (ok=%v), want %v", pt, ok, center)
	}
	if want := cam.Target.Sub(cam.Eye).Len(); math.Abs(depth-want) > 1e-9 {
		t.Fatalf("depth = %v want %v", depth, want)
	}

	ray := cam.ScreenRay(center)
	want := cam.Target.Sub(cam.Eye).Normalize()
	if !vecNear(ray.Direction, want) {
		t.Fatalf("center ray = %v want %v", ray.Direction, want)
	}

	// round trip through an off-centre point
	p := mgl64.Vec3{0.7, 0.3, 1.8}
	sp, _, ok := cam.Project(p)
	if !ok {
		t.Fatalf("point should be visible")
	}
	r := cam.ScreenRay(sp)
	toP := p.Sub(r.Origin)
	if miss := toP.Sub(r.Direction.Mul(toP.Dot(r.Direction))).Len(); miss > 1e-6 {
		t.Fatalf("ray misses projected point by %v", miss)
	}

	if _, _, ok := cam.Project(cam.Eye.Sub(want)); ok {
		t.Fatalf("point behind the camera should not project")
	}
	focal := float64(cam.Height) / 2 / math.Tan(mgl64.DegToRad(cam.FovY)/2)
	if got := cam.PixelsPerMetre(2); math.Abs(got-focal/2) > 1e-9 {
		t.Fatalf("PixelsPerMetre(2) = %v want %v", got, focal/2)
	}
	if cam.PixelsPerMetre(0) != 0 {
		t.Fatalf("PixelsPerMetre(0) should be 0")
	}
}

func TestPlaneTrackerDetection(t *testing.T) {
	cam := NewCamera(mustRoom(t, "living_room").Camera)
	pt := NewPlaneTracker(mustRoom(t, "living_room"), cam)

	steps := []struct {
		advance float64
		want    int
	}{
		{0.25, 0},
		{0.25, 1},
		{1.0, 2},
		{1.0, 3},
	}
	for i, s := range steps {
		pt.Advance(s.advance)
		if got := len(pt.Trackables()); got != s.want {
			t.Fatalf("step %d: trackables = %d want %d", i, got, s.want)
		}
	}

	pt.SetPlanesVisible(false)
	pt.SetDetectionEnabled(false)
	pt.Advance(10)
	if got := len(pt.Trackables()); got != 3 {
		t.Fatalf("disabled detection still found planes: %d", got)
	}
	if pt.DetectionEnabled() {
		t.Fatalf("detection should be off")
	}
	for _, p := range pt.Trackables() {
		if p.Visible {
			t.Fatalf("plane %s should be hidden", p.ID)
		}
	}
	if p, ok := pt.Plane(2); !ok || p.Alignment != ar.Vertical {
		t.Fatalf("Plane(2) = %v, %v", p, ok)
	}
	if _, ok := pt.Plane(4); ok {
		t.Fatalf("ceiling was never detected")
	}

	center := ar.ScreenPoint{float64(cam.Width) / 2, float64(cam.Height) / 2}
	hits := pt.RaycastPlanes(center)
	if len(hits) != 1 || hits[0].TrackableID != 2 {
		t.Fatalf("hidden back wall should still raycast, got %+v", hits)
	}
	if math.Abs(hits[0].Pose.Position.Z()-4.5) > 1e-9 {
		t.Fatalf("hit z = %v", hits[0].Pose.Position.Z())
	}
}

func TestRaycastPlanes(t *testing.T) {
	room, err := ParseRoom([]byte(`
name: stack
camera: {eye: [0, 1, 0], target: [0, 1, 1], fov: 60, width: 200, height: 100}
planes:
  - {id: 1, alignment: wall, center: [0, 1, 5], normal: [0, 0, -1], extents: [3, 3]}
  - {id: 2, alignment: wall, center: [0, 1, 2], normal: [0, 0, -1], extents: [0.2, 0.2]}
  - {id: 3, alignment: floor, center: [0, 0, 2], normal: [0, 1, 0], extents: [3, 3]}
`))
	if err != nil {
		t.Fatalf("ParseRoom: %v", err)
	}
	cam := NewCamera(room.Camera)
	pt := NewPlaneTracker(room, cam)

	hits := pt.RaycastPlanes(ar.ScreenPoint{100, 50})
	if len(hits) != 2 || hits[0].TrackableID != 2 || hits[1].TrackableID != 1 {
		t.Fatalf("expected near panel then far wall, got %+v", hits)
	}
	if hits[0].Distance >= hits[1].Distance {
		t.Fatalf("hits not ordered by distance")
	}

	// off the small panel's rectangle, still on the big wall
	hits = pt.RaycastPlanes(ar.ScreenPoint{150, 50})
	if len(hits) != 1 || hits[0].TrackableID != 1 {
		t.Fatalf("expected only the far wall, got %+v", hits)
	}

	// looking down onto the floor
	hits = pt.RaycastPlanes(ar.ScreenPoint{100, 99})
	if len(hits) == 0 || hits[0].TrackableID != 3 || math.Abs(hits[0].Pose.Position.Y()) > 1e-9 {
		t.Fatalf("expected a floor hit first, got %+v", hits)
	}
	if !vecNear(hits[0].Pose.Up(), ar.WorldUp) {
		t.Fatalf("floor hit pose up = %v", hits[0].Pose.Up())
	}
}

func TestColliderIndex(t *testing.T) {
	cam := NewCamera(mustRoom(t, "living_room").Camera)
	ci := NewColliderIndex(cam)
	w := ecs.NewWorld()
	center := ar.ScreenPoint{float64(cam.Width) / 2, float64(cam.Height) / 2}

	spawn := func(pos mgl64.Vec3, radius float64) ecs.Entity {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(pos, mgl64.QuatIdent())); err != nil {
			t.Fatal(err)
		}
		if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Radius: radius}); err != nil {
			t.Fatal(err)
		}
		return e
	}

	far := spawn(cam.Target, 0.3)
	ci.Sync(w)
	if ci.Len() != 1 {
		t.Fatalf("Len = %d", ci.Len())
	}
	hit, ok := ci.RaycastColliders(center)
	if !ok || hit.Entity != far {
		t.Fatalf("expected hit on far entity, got %+v %v", hit, ok)
	}
	if _, ok := ci.RaycastColliders(ar.ScreenPoint{5, 5}); ok {
		t.Fatalf("corner touch should miss")
	}

	near := spawn(cam.Eye.Add(cam.Target).Mul(0.5), 0.1)
	ci.Sync(w)
	if hit, ok := ci.RaycastColliders(center); !ok || hit.Entity != near {
		t.Fatalf("nearest collider should win, got %+v", hit)
	}

	t.Run("scale grows the pick circle", func(t *testing.T) {
		edge := center.Add(ar.ScreenPoint{0, 70})
		if hit, ok := ci.RaycastColliders(edge); ok && hit.Entity == far {
			t.Fatalf("edge point should start outside the far collider")
		}
		tr, _ := ecs.Get(w, far, component.TransformComponent.Kind())
		tr.Scale = mgl64.Vec3{2, 2, 2}
		ci.Sync(w)
		if hit, ok := ci.RaycastColliders(edge); !ok || hit.Entity != far {
			t.Fatalf("scaled collider should cover the edge point, got %+v %v", hit, ok)
		}
	})

	ecs.DestroyEntity(w, near)
	ci.Sync(w)
	if hit, ok := ci.RaycastColliders(center); !ok || hit.Entity != far {
		t.Fatalf("destroyed collider should drop out, got %+v", hit)
	}
	ci.Remove(far)
	if ci.Len() != 0 {
		t.Fatalf("Remove should drop the shape")
	}
	var nilIndex *ColliderIndex
	if _, ok := nilIndex.RaycastColliders(center); ok {
		t.Fatalf("nil index should never hit")
	}
}

func TestHost(t *testing.T) {
	h, err := NewHostFromFile("studio")
	if err != nil {
		t.Fatalf("NewHostFromFile: %v", err)
	}
	var _ ar.Host = h
	if len(h.Trackables()) != 2 {
		t.Fatalf("studio planes at t=0 should be detected, got %d", len(h.Trackables()))
	}
	if !h.DetectionEnabled() {
		t.Fatalf("detection should start enabled")
	}
	ar.DisablePlanes(h)
	if h.DetectionEnabled() {
		t.Fatalf("DisablePlanes should stop detection")
	}
	if _, err := NewHostFromFile("missing"); err == nil {
		t.Fatalf("expected error for missing room")
	}
}
