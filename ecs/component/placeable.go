package component

import "fmt"

// PlacementClass says how a placeable attaches to real-world surfaces.
type PlacementClass int

const (
	PlacementFloor PlacementClass = iota
	PlacementWall
)

func (c PlacementClass) String() string {
	switch c {
	case PlacementWall:
		return "wall"
	default:
		return "floor"
	}
}

func (c PlacementClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *PlacementClass) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "floor":
		*c = PlacementFloor
	case "wall":
		*c = PlacementWall
	default:
		return fmt.Errorf("placement class %q: want floor or wall", text)
	}
	return nil
}

// Placeable records which catalog entry an entity was spawned from.
type Placeable struct {
	Name     string
	Category string
	Class    PlacementClass
}

var PlaceableComponent = NewComponent[Placeable]()
