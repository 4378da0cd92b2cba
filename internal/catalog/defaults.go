package catalog

// Defaults returns the built-in catalog. It is the fallback when the rates
// backend is unreachable and must stay functionally complete: every item,
// tier and multiplier the engine can see has a value here.
func Defaults() *Catalog {
	return &Catalog{
		Source: SourceFallback,
		Categories: []Category{
			{
				Name: "Symbols",
				Items: []Item{
					{
						ID:          "symbol_low",
						Name:        "Low-value symbol",
						BasePrice:   40,
						Complexity:  0.8,
						Recommended: true,
						Details: &ItemDetails{
							Description: Text{
								EN: "Card-rank or simple themed symbol redrawn in the chosen style.",
								RU: "Карточный или простой тематический символ в выбранном стиле.",
							},
							Examples: Text{EN: "A, K, Q, J, 10, 9", RU: "A, K, Q, J, 10, 9"},
						},
					},
					{
						ID:          "symbol_high",
						Name:        "High-value symbol",
						BasePrice:   80,
						Complexity:  1.0,
						Recommended: true,
						Details: &ItemDetails{
							Description: Text{
								EN: "Thematic hero symbol with detailed rendering.",
								RU: "Тематический символ с детальной отрисовкой.",
							},
						},
					},
					{
						ID:         "symbol_wild",
						Name:       "Wild symbol",
						BasePrice:  100,
						Complexity: 1.2,
					},
					{
						ID:         "symbol_scatter",
						Name:       "Scatter / bonus symbol",
						BasePrice:  100,
						Complexity: 1.2,
					},
				},
			},
			{
				Name: "Backgrounds",
				Items: []Item{
					{
						ID:         "bg_main",
						Name:       "Main game background",
						BasePrice:  250,
						Complexity: 1.5,
						MaxQty:     1,
					},
					{
						ID:         "bg_freespins",
						Name:       "Free spins background",
						BasePrice:  220,
						Complexity: 1.5,
						MaxQty:     1,
					},
					{
						ID:          "loading_screen",
						Name:        "Loading screen",
						BasePrice:   150,
						MaxQty:      1,
						NoAnimation: true,
					},
				},
			},
			{
				Name: "UI & Branding",
				Items: []Item{
					{
						ID:          "ui_kit",
						Name:        "UI kit reskin",
						BasePrice:   300,
						MaxQty:      1,
						NoAnimation: true,
						NoOrderType: true,
						Details: &ItemDetails{
							Description: Text{
								EN: "Buttons, counters, panels and paytable restyled as one set.",
								RU: "Кнопки, счётчики, панели и таблица выплат единым набором.",
							},
							TechNotes: Text{
								EN: "Delivered as layered source plus export atlas.",
								RU: "Поставляется исходником со слоями и атласом экспорта.",
							},
						},
					},
					{
						ID:         "logo",
						Name:       "Game logo",
						BasePrice:  180,
						Complexity: 1.3,
						MaxQty:     2,
						Surcharge:  0.15,
					},
					{
						ID:         "popup",
						Name:       "Popup window",
						BasePrice:  90,
						Complexity: 0.9,
					},
					{
						ID:         "frame",
						Name:       "Reel frame",
						BasePrice:  120,
						Complexity: 1.1,
						MaxQty:     1,
					},
				},
			},
		},
		Animations: []AnimationTier{
			{ID: AnimationTierNone, Name: "No animation", Short: "static", Coeff: 1.0},
			{ID: "light", Name: "Light animation", Short: "light", Coeff: 1.25},
			{ID: "standard", Name: "Standard animation", Short: "std", Coeff: 1.5},
			{ID: "premium", Name: "Premium animation", Short: "prem", Coeff: 2.0},
		},
		Styles: []VisualStyle{
			{
				ID: "classic", Name: "Classic", Coeff: 1.0,
				Description: Text{EN: "Traditional slot look, clean shapes.", RU: "Традиционный слотовый вид, чистые формы."},
			},
			{
				ID: "cartoon", Name: "Cartoon", Coeff: 1.15,
				Description: Text{EN: "Playful shapes and saturated colors.", RU: "Игровые формы и насыщенные цвета."},
			},
			{
				ID: "realistic", Name: "Realistic", Coeff: 1.3,
				Description: Text{EN: "Painterly detail, volumetric light.", RU: "Живописная детализация, объёмный свет."},
			},
			{
				ID: "premium_art", Name: "Premium art", Coeff: 1.5,
				Description: Text{EN: "Signature art direction, full concept pass.", RU: "Авторский арт-дирекшн, полный концепт."},
			},
		},
		Rights: []UsageRights{
			{
				ID: "internal", Name: "Internal use", Coeff: 1.0,
				Description: Text{EN: "Prototypes and internal demos only.", RU: "Только прототипы и внутренние демо."},
			},
			{
				ID: "standard", Name: "Standard license", Coeff: 1.15,
				Description: Text{EN: "Commercial release, studio keeps portfolio rights.", RU: "Коммерческий релиз, студия сохраняет портфолио-права."},
			},
			{
				ID: "exclusive", Name: "Exclusive buyout", Coeff: 1.4,
				Description: Text{EN: "Full exclusive transfer of all rights.", RU: "Полная эксклюзивная передача всех прав."},
			},
		},
		Payments: []PaymentModel{
			{
				ID: "split", Name: "50/50 split", Coeff: 1.0,
				Description: Text{EN: "Half up front, half on delivery.", RU: "Половина авансом, половина при сдаче."},
			},
			{
				ID: "prepay", Name: "Full prepayment", Coeff: 0.95,
				Description: Text{EN: "100% up front, 5% off.", RU: "100% предоплата, скидка 5%."},
			},
			{
				ID: "milestones", Name: "Per-milestone", Coeff: 1.1,
				Description: Text{EN: "Pay per accepted milestone.", RU: "Оплата по принятым этапам."},
			},
		},
		Promos: []PromoCode{
			{Code: "PR20", Kind: PromoPercentage, Discount: 0.20},
			{Code: "WELCOME10", Kind: PromoPercentage, Discount: 0.10},
			{Code: "ARTDROP", Kind: PromoFixed, Discount: 150},
		},
		Presets: defaultPresets(),
	}
}
