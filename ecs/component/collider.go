package component

// Collider is the pick volume of an entity: a sphere of Radius (metres, before
// scale) around its transform position.
type Collider struct {
	Radius float64
}

var ColliderComponent = NewComponent[Collider]()
