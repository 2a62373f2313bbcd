package glaze

import "math"

// MaterialKind identifies how a layer optically interacts with whatever is
// composited behind it.
type MaterialKind uint8

const (
	// MaterialSolid layers are drawn over the backdrop without touching it.
	MaterialSolid MaterialKind = iota
	// MaterialFrostedGlass layers blur the backdrop behind their opaque
	// pixels before being drawn.
	MaterialFrostedGlass
)

// Material is an immutable, cheaply copyable value describing a layer's
// backdrop interaction.
type Material struct {
	Kind       MaterialKind
	BlurRadius float64 // backdrop blur sigma; meaningful for FrostedGlass only
}

// Solid returns the default opaque material.
func Solid() Material {
	return Material{Kind: MaterialSolid}
}

// FrostedGlassMaterial returns a backdrop-blurring material with the
// given blur radius. Negative radii are clamped to zero.
func FrostedGlassMaterial(blurRadius float64) Material {
	return Material{Kind: MaterialFrostedGlass, BlurRadius: math.Max(0, blurRadius)}
}

// IsFrostedGlass reports whether the material blurs its backdrop.
func (m Material) IsFrostedGlass() bool {
	return m.Kind == MaterialFrostedGlass
}
