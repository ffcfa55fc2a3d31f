package domain

// ShopItem is a purchasable effect. Purchases deduct gems and either refill
// hearts or add the item id to the inventory. Items are repeatable only when
// their effect is streak_freeze.
type ShopItem struct {
	ID          string
	Title       string
	Description string
	Cost        int
	Effect      ItemEffect
}

// Repeatable reports whether the item may be purchased more than once.
func (s ShopItem) Repeatable() bool {
	return s.Effect == EffectStreakFreeze
}
