package ecs

import "strconv"

// Entity packs a 32-bit id and a 32-bit generation. A handle whose generation
// no longer matches the store is dead, which makes stored handles weak.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether the handle was ever issued. Use IsAlive for liveness.
func (e Entity) Valid() bool {
	return e.id() > 0
}
