package tetris

import "fmt"

// Variant identifies one of the seven tetromino shapes.
type Variant int

const (
	I Variant = iota
	O
	T
	S
	Z
	J
	L
)

// Variants lists every variant in canonical order.
var Variants = [...]Variant{I, O, T, S, Z, J, L}

const variantCount = len(Variants)

var variantNames = [variantCount]string{"I", "O", "T", "S", "Z", "J", "L"}

var variantColors = [variantCount]Color{
	I: {R: 102, G: 255, B: 255},
	O: {R: 255, G: 255, B: 102},
	T: {R: 178, G: 102, B: 255},
	S: {R: 102, G: 255, B: 102},
	Z: {R: 255, G: 0, B: 0},
	J: {R: 255, G: 153, B: 51},
	L: {R: 0, G: 0, B: 255},
}

// Valid reports whether v is one of the seven variants.
func (v Variant) Valid() bool {
	return v >= 0 && int(v) < variantCount
}

// Color returns the display color of the variant.
func (v Variant) Color() Color {
	if !v.Valid() {
		return EmptyColor
	}
	return variantColors[v]
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant returns the variant named by s ("I", "O", ...).
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if name == s {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}
