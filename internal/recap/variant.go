// Package recap turns a stored wrap into a themed, composable recap card.
// It is pure: no I/O, no mutation of the input record. The pipeline is
// ResolveVariant → Assemble → Compositor.Compose; the svg and raster
// subpackages consume the resulting Card.
package recap

// Variant is one of the three named visual themes.
type Variant string

const (
	VariantGirly   Variant = "girly"
	VariantNeutral Variant = "neutral"
	VariantHybrid  Variant = "hybrid"
)

// Variants lists all known variants in catalog order.
var Variants = []Variant{VariantGirly, VariantNeutral, VariantHybrid}

// ResolveVariant maps a stored theme string to a Variant.
// Matching is case-sensitive and exact; anything else — empty string, typo,
// unknown value — resolves to neutral. Unknown input is data, not a fault,
// so no error is ever returned.
func ResolveVariant(theme string) Variant {
	switch v := Variant(theme); v {
	case VariantGirly, VariantNeutral, VariantHybrid:
		return v
	}
	return VariantNeutral
}
