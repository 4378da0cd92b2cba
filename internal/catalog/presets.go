package catalog

// Preset is a named bundle: applying it replaces the whole selection with
// the bundle's quantities, animation and style.
type Preset struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	StyleID        string         `json:"style_id"`
	AnimationID    string         `json:"animation_id"`
	ItemQuantities map[string]int `json:"item_quantities"`
}

func defaultPresets() []Preset {
	return []Preset{
		{
			ID:          "starter",
			Name:        "Starter reskin",
			Description: "Symbols only, light animation. The cheapest way to refresh a game.",
			StyleID:     "classic",
			AnimationID: "light",
			ItemQuantities: map[string]int{
				"symbol_low":  6,
				"symbol_high": 4,
			},
		},
		{
			ID:          "standard",
			Name:        "Standard reskin",
			Description: "Full symbol set, backgrounds and frame with standard animation.",
			StyleID:     "cartoon",
			AnimationID: "standard",
			ItemQuantities: map[string]int{
				"symbol_low":     6,
				"symbol_high":    4,
				"symbol_wild":    1,
				"symbol_scatter": 1,
				"bg_main":        1,
				"frame":          1,
			},
		},
		{
			ID:          "flagship",
			Name:        "Flagship reskin",
			Description: "Everything restyled, premium animation throughout.",
			StyleID:     "premium_art",
			AnimationID: "premium",
			ItemQuantities: map[string]int{
				"symbol_low":     6,
				"symbol_high":    5,
				"symbol_wild":    1,
				"symbol_scatter": 1,
				"bg_main":        1,
				"bg_freespins":   1,
				"loading_screen": 1,
				"ui_kit":         1,
				"logo":           1,
				"popup":          3,
				"frame":          1,
			},
		},
	}
}
