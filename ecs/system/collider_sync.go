package system

import "github.com/milk9111/arplace/ecs"

// ColliderSyncer mirrors entity colliders into a host's pick structure.
type ColliderSyncer interface {
	Sync(w *ecs.World)
}

// ColliderSyncSystem refreshes collider picking before gestures run, so a
// tap sees the objects as they were drawn last frame.
type ColliderSyncSystem struct {
	syncer ColliderSyncer
}

func NewColliderSyncSystem(syncer ColliderSyncer) *ColliderSyncSystem {
	return &ColliderSyncSystem{syncer: syncer}
}

func (s *ColliderSyncSystem) Update(w *ecs.World) {
	if s == nil || s.syncer == nil || w == nil {
		return
	}
	s.syncer.Sync(w)
}
