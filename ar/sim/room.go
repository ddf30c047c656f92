package sim

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arplace/ar"
	"gopkg.in/yaml.v3"
)

//go:embed rooms/*.yaml
var RoomsFS embed.FS

// PlaneSpec describes one real-world surface and when tracking finds it.
type PlaneSpec struct {
	ID          uint64            `yaml:"id"`
	Alignment   ar.PlaneAlignment `yaml:"alignment"`
	Center      [3]float64        `yaml:"center"`
	Normal      [3]float64        `yaml:"normal"`
	Extents     [2]float64        `yaml:"extents"`
	DetectAfter float64           `yaml:"detect_after"`
}

// CameraSpec places the device camera.
type CameraSpec struct {
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
	Fov    float64    `yaml:"fov"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Near   float64    `yaml:"near"`
	Far    float64    `yaml:"far"`
}

// Room is a simulated environment.
type Room struct {
	Name   string      `yaml:"name"`
	Camera CameraSpec  `yaml:"camera"`
	Planes []PlaneSpec `yaml:"planes"`
}

// LoadRoom reads rooms/<name>.yaml, preferring a copy on disk next to the
// working directory over the embedded one.
func LoadRoom(name string) (*Room, error) {
	clean := cleanRoomPath(name)
	data, err := os.ReadFile(filepath.Join("ar", "sim", filepath.FromSlash(clean)))
	if err != nil {
		data, err = RoomsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("sim: load room %s: %w", name, err)
		}
	}
	return ParseRoom(data)
}

// ParseRoom decodes and validates a room description.
func ParseRoom(data []byte) (*Room, error) {
	var room Room
	if err := yaml.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("sim: unmarshal room: %w", err)
	}
	if err := room.validate(); err != nil {
		return nil, err
	}
	return &room, nil
}

// RoomNames lists the embedded rooms.
func RoomNames() []string {
	entries, err := RoomsFS.ReadDir("rooms")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}

func (r *Room) validate() error {
	if r.Camera.Width <= 0 || r.Camera.Height <= 0 {
		return fmt.Errorf("sim: room %s: camera viewport %dx%d", r.Name, r.Camera.Width, r.Camera.Height)
	}
	if r.Camera.Fov <= 0 || r.Camera.Fov >= 180 {
		return fmt.Errorf("sim: room %s: camera fov %v", r.Name, r.Camera.Fov)
	}
	if r.Camera.Near <= 0 {
		r.Camera.Near = 0.05
	}
	if r.Camera.Far <= r.Camera.Near {
		r.Camera.Far = 100
	}
	seen := make(map[uint64]bool, len(r.Planes))
	for i, p := range r.Planes {
		if p.ID == 0 || seen[p.ID] {
			return fmt.Errorf("sim: room %s: plane %d has invalid or duplicate id %d", r.Name, i, p.ID)
		}
		seen[p.ID] = true
		if vec3(p.Normal).LenSqr() == 0 {
			return fmt.Errorf("sim: room %s: plane %d has zero normal", r.Name, p.ID)
		}
	}
	return nil
}

// PlanePose builds the pose of a plane from its center and normal. The pose's
// forward axis points up the wall for vertical planes and along +Z otherwise.
func PlanePose(center, normal mgl64.Vec3) ar.Pose {
	n := normal.Normalize()
	hint := ar.WorldUp
	if n.Y() > 0.9 || n.Y() < -0.9 {
		hint = ar.WorldForward
	}
	z := hint.Sub(n.Mul(hint.Dot(n))).Normalize()
	x := n.Cross(z).Normalize()
	rot := mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, n, z).Mat4()).Normalize()
	return ar.Pose{Position: center, Rotation: rot}
}

func cleanRoomPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "ar/sim/")
	s = strings.TrimPrefix(s, "rooms/")
	if !strings.HasSuffix(s, ".yaml") {
		s += ".yaml"
	}
	return "rooms/" + s
}

func vec3(a [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{a[0], a[1], a[2]}
}
