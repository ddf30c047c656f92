package sim

import (
	"github.com/milk9111/arplace/ar"
)

// Host is a complete simulated AR session: camera, plane tracking and
// collider hit testing over one room.
type Host struct {
	*PlaneTracker
	*ColliderIndex

	Room   *Room
	Camera *Camera
}

var _ ar.Host = (*Host)(nil)

// NewHost starts a session in room.
func NewHost(room *Room) *Host {
	camera := NewCamera(room.Camera)
	return &Host{
		PlaneTracker:  NewPlaneTracker(room, camera),
		ColliderIndex: NewColliderIndex(camera),
		Room:          room,
		Camera:        camera,
	}
}

// NewHostFromFile loads a room by name and starts a session in it.
func NewHostFromFile(name string) (*Host, error) {
	room, err := LoadRoom(name)
	if err != nil {
		return nil, err
	}
	return NewHost(room), nil
}
