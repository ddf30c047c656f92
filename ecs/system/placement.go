package system

import (
	"log"

	"github.com/milk9111/arplace/ar"
	"github.com/milk9111/arplace/ecs"
	"github.com/milk9111/arplace/ecs/component"
	"github.com/milk9111/arplace/gesture"
	"github.com/milk9111/arplace/prefabs"
)

// PlacementSystem turns single and two-finger touches into placing,
// selecting, dragging, rotating, scaling and deleting objects. One instance
// owns one gesture session; the profile decides which controller it acts as.
type PlacementSystem struct {
	profile gesture.Profile
	host    ar.Host
	blocker ar.UIBlocker

	prefab         *prefabs.Placeable
	session        gesture.Session
	timers         gesture.Timers
	planesDisabled bool
}

func NewPlacementSystem(profile gesture.Profile, host ar.Host, blocker ar.UIBlocker) *PlacementSystem {
	return &PlacementSystem{profile: profile, host: host, blocker: blocker}
}

// SetSelectedPrefab replaces the prefab spawned by the next placement. A nil
// prefab disables placing; existing objects stay manipulable.
func (s *PlacementSystem) SetSelectedPrefab(p *prefabs.Placeable) {
	if s == nil {
		return
	}
	s.prefab = p
}

// SwitchFurniture is SetSelectedPrefab under the furniture panel's name.
func (s *PlacementSystem) SwitchFurniture(p *prefabs.Placeable) { s.SetSelectedPrefab(p) }

// SwitchDecoration is SetSelectedPrefab under the decor panel's name.
func (s *PlacementSystem) SwitchDecoration(p *prefabs.Placeable) { s.SetSelectedPrefab(p) }

func (s *PlacementSystem) SelectedPrefab() *prefabs.Placeable {
	if s == nil {
		return nil
	}
	return s.prefab
}

func (s *PlacementSystem) Profile() gesture.Profile {
	if s == nil {
		return gesture.Profile{}
	}
	return s.profile
}

// Session exposes the gesture state for overlays and tests.
func (s *PlacementSystem) Session() *gesture.Session {
	if s == nil {
		return nil
	}
	return &s.session
}

// PlanesDisabled reports whether a placement has already switched plane
// detection off.
func (s *PlacementSystem) PlanesDisabled() bool {
	return s != nil && s.planesDisabled
}

func (s *PlacementSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	in := TouchFrame(w)
	if in == nil {
		return
	}

	s.timers.Advance(in.Now)
	if s.session.Selected.Valid() && !s.session.Live(w) {
		s.session.Selected = 0
	}

	if in.TouchCount() == 0 {
		return
	}

	if in.TouchCount() == 1 {
		if !s.handleTouch(w, in, in.Touches[0]) {
			return
		}
	}

	if in.TouchCount() == 2 && s.session.Live(w) {
		s.pinch(w, in.Touches[0], in.Touches[1])
	} else {
		s.session.Scaling = false
	}
}

// handleTouch runs the single-finger state machine. It returns false when
// the rest of the frame must be skipped.
func (s *PlacementSystem) handleTouch(w *ecs.World, in *component.TouchInput, touch component.Touch) bool {
	pt := touch.Position
	if s.blocker != nil && s.blocker.IsPointerOverUI(pt) {
		return false
	}

	switch touch.Phase {
	case component.TouchBegan:
		return s.began(w, in, pt)

	case component.TouchStationary:
		s.session.AccumulateHold(in.DeltaTime, s.profile.HoldThreshold)

	case component.TouchMoved:
		s.moved(w, in, touch)

	case component.TouchEnded, component.TouchCanceled:
		s.session.Release()
	}
	return true
}

func (s *PlacementSystem) began(w *ecs.World, in *component.TouchInput, pt ar.ScreenPoint) bool {
	switch s.session.Taps.Tap(&s.timers, in.Now, s.profile.TapResetDelay) {
	case 2:
		if s.profile.DoubleTapGate {
			s.session.DoubleTap = true
		}
	case 3:
		s.destroyAt(w, pt)
		s.session.Taps.Reset()
		return false
	}

	if s.host == nil {
		return true
	}

	if hit, ok := s.host.RaycastColliders(pt); ok {
		if isPlaced(w, hit.Entity) {
			s.session.Select(hit.Entity)
			w.Events().Push(ecs.Event{Kind: ecs.EventSelected, Entity: hit.Entity})
		} else {
			s.session.ClearSelection()
		}
		return true
	}

	s.session.ClearSelection()
	s.place(w, pt)
	return true
}

func (s *PlacementSystem) place(w *ecs.World, pt ar.ScreenPoint) {
	if s.prefab == nil {
		return
	}
	hits := s.host.RaycastPlanes(pt)
	if len(hits) == 0 {
		return
	}
	hit := hits[0]
	plane, _ := s.host.Plane(hit.TrackableID)

	placement, ok := s.profile.PlacementFor(hit, plane, s.prefab.Class)
	if !ok {
		return
	}
	if placement.Mounted && s.profile.Placement == gesture.RuleAlignmentAndClass {
		log.Printf("placement: wall item detected: %s, plane alignment: %s", s.prefab.Name, plane.Alignment)
	}

	e, err := SpawnPlaceable(w, s.prefab, placement.Pose, SpawnPlaced)
	if err != nil {
		log.Printf("placement: %v", err)
		return
	}
	s.session.Selected = e
	w.Events().Push(ecs.Event{Kind: ecs.EventPlaced, Entity: e, Data: s.prefab.Name})

	if !s.planesDisabled {
		ar.DisablePlanes(s.host)
		s.planesDisabled = true
		w.Events().Push(ecs.Event{Kind: ecs.EventPlanesOff})
	}
}

func (s *PlacementSystem) moved(w *ecs.World, in *component.TouchInput, touch component.Touch) {
	if !s.session.Live(w) || s.session.Scaling {
		return
	}
	tr, ok := ecs.Get(w, s.session.Selected, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if s.session.Dragging {
		if s.host == nil {
			return
		}
		hits := s.host.RaycastPlanes(touch.Position)
		if len(hits) == 0 {
			return
		}
		t := gesture.DragFactor(s.profile.DragSmoothing, in.DeltaTime)
		tr.Position = ar.Lerp(tr.Position, hits[0].Pose.Position, t)
		return
	}

	class := component.PlacementFloor
	if p, ok := ecs.Get(w, s.session.Selected, component.PlaceableComponent.Kind()); ok {
		class = p.Class
	}
	if q, ok := s.profile.Rotation(touch.Delta, class, s.session.DoubleTap); ok {
		tr.RotateLocal(q)
	}
}

func (s *PlacementSystem) pinch(w *ecs.World, a, b component.Touch) {
	s.session.Scaling = true
	tr, ok := ecs.Get(w, s.session.Selected, component.TransformComponent.Kind())
	if !ok {
		return
	}
	diff := gesture.PinchDelta(a, b)
	tr.Scale = gesture.ApplyScale(tr.Scale, diff, s.profile.ScaleSpeed, s.profile.MinScale, s.profile.MaxScale)
}

// destroyAt deletes the placed object under pt, if any.
func (s *PlacementSystem) destroyAt(w *ecs.World, pt ar.ScreenPoint) {
	if s.host == nil {
		return
	}
	hit, ok := s.host.RaycastColliders(pt)
	if !ok || !isPlaced(w, hit.Entity) {
		return
	}
	if ecs.DestroyEntity(w, hit.Entity) {
		w.Events().Push(ecs.Event{Kind: ecs.EventDestroyed, Entity: hit.Entity})
	}
	s.session.Selected = 0
}

func isPlaced(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.PlacedTagComponent.Kind())
}
