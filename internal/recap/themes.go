package recap

// Theme holds the presentational constants for one variant: colors as CSS
// color strings (hex or rgba) and the display name shown in the theme
// catalog. Values are constants carried over from the product's visual spec;
// they have no behavioral bearing but must be reproduced value-for-value.
type Theme struct {
	ID   Variant `json:"id"`
	Name string  `json:"name"`

	// BackgroundTop and BackgroundBottom are the two stops of the card's
	// vertical background gradient. Solid backgrounds repeat one value.
	BackgroundTop    string `json:"background_top"`
	BackgroundBottom string `json:"background_bottom"`

	// BlockFill and BlockBorder style each bento block.
	BlockFill   string `json:"block_fill"`
	BlockBorder string `json:"block_border"`

	// Text is the body text color, Headline the header name color.
	Text     string `json:"text"`
	Headline string `json:"headline"`

	// PillFill is the background of individual tag labels.
	PillFill string `json:"pill_fill"`

	// Keywords are the short color descriptors exposed by the theme catalog
	// endpoint (kept verbatim from the public API contract).
	Keywords []string `json:"colors"`
}

var Girly = Theme{
	ID:               VariantGirly,
	Name:             "Girly",
	BackgroundTop:    "#fceff9",
	BackgroundBottom: "#f5e3e6",
	BlockFill:        "rgba(255,255,255,0.6)",
	BlockBorder:      "rgba(236,72,153,0.3)",
	Text:             "#ffffff",
	Headline:         "#db2777",
	PillFill:         "rgba(0,0,0,0.1)",
	Keywords:         []string{"pink", "pastel"},
}

var Neutral = Theme{
	ID:               VariantNeutral,
	Name:             "Neutral",
	BackgroundTop:    "#f5f5f5",
	BackgroundBottom: "#f5f5f5",
	BlockFill:        "rgba(255,255,255,0.8)",
	BlockBorder:      "rgba(0,123,255,0.2)",
	Text:             "#1f2937",
	Headline:         "#1f2937",
	PillFill:         "rgba(0,0,0,0.1)",
	Keywords:         []string{"gray", "white"},
}

var Hybrid = Theme{
	ID:               VariantHybrid,
	Name:             "Hybrid",
	BackgroundTop:    "#1e1b4b",
	BackgroundBottom: "#0f172a",
	BlockFill:        "rgba(255,255,255,0.1)",
	BlockBorder:      "rgba(168,85,247,0.3)",
	Text:             "#ffffff",
	Headline:         "#ffffff",
	PillFill:         "rgba(0,0,0,0.1)",
	Keywords:         []string{"purple", "blue"},
}

// Catalog lists the three themes in the order the public API exposes them.
var Catalog = []Theme{Girly, Neutral, Hybrid}

// ThemeFor returns the Theme constants for a variant.
func ThemeFor(v Variant) Theme {
	switch v {
	case VariantGirly:
		return Girly
	case VariantHybrid:
		return Hybrid
	}
	return Neutral
}
