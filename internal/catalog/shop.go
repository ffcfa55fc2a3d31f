package catalog

import "github.com/alexanderramin/drill/internal/domain"

// ShopItems is the fixed shop inventory.
var ShopItems = []domain.ShopItem{
	{
		ID:          "refill_hearts",
		Title:       "Heart Refill",
		Description: "Restore full health to keep learning.",
		Cost:        50,
		Effect:      domain.EffectHeartRefill,
	},
	{
		ID:          "streak_freeze",
		Title:       "Streak Freeze",
		Description: "Miss a day without losing your streak.",
		Cost:        100,
		Effect:      domain.EffectStreakFreeze,
	},
	{
		ID:          "theme_gold",
		Title:       "Golden Theme",
		Description: "A flashy gold accent for your profile.",
		Cost:        150,
		Effect:      domain.EffectThemeColor,
	},
}
