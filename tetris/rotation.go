package tetris

// Rotation is one of the four orientation states of a piece.
// State 0 is the spawn orientation; each step is a quarter turn clockwise.
type Rotation uint8

const (
	RotationSpawn Rotation = iota
	RotationRight
	RotationFlip
	RotationLeft
)

// Direction selects the sense of a rotation.
type Direction int8

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Turn returns the rotation state reached by turning r once in direction d.
func (r Rotation) Turn(d Direction) Rotation {
	return Rotation((int(r) + int(d) + 4) % 4)
}

// boxSize is the edge of the square each variant rotates within.
var boxSize = [variantCount]int{I: 4, O: 4, T: 3, S: 3, Z: 3, J: 3, L: 3}

// shapes holds the cell offsets of every rotation state, relative to the
// top-left corner of the variant's bounding box. Each state is the previous
// one turned a quarter clockwise inside the box; O never changes.
var shapes = [variantCount][4][4]Point{
	I: {
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	O: {
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	},
	T: {
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	},
	S: {
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	Z: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	J: {
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	L: {
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
}

// Offsets returns the four cell offsets of variant v in rotation state r.
func Offsets(v Variant, r Rotation) [4]Point {
	return shapes[v][r&3]
}
