package component

// PlacedTag marks an entity spawned by a placement controller. Only tagged
// entities can be selected, dragged, rotated, scaled or deleted.
type PlacedTag struct{}

var PlacedTagComponent = NewComponent[PlacedTag]()

// PlantTag marks decorative entities scattered by the plant system.
type PlantTag struct{}

var PlantTagComponent = NewComponent[PlantTag]()
