package domain

// ItemType classifies inventory and shop items
type ItemType string

// Item types
const (
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeBooster    ItemType = "booster"
	ItemTypePermanent  ItemType = "permanent"
	ItemTypeEquipment  ItemType = "equipment"
)

// Usable reports whether the use-item action applies to this type
func (t ItemType) Usable() bool {
	return t == ItemTypeConsumable || t == ItemTypeBooster
}

// InventoryItem is an owned item, keyed by name
type InventoryItem struct {
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Quantity int      `json:"quantity"`
	Effect   string   `json:"effect"`
}

// ShopItem is a read-only catalog entry
type ShopItem struct {
	Name   string   `json:"name"`
	Type   ItemType `json:"type"`
	Price  int      `json:"price"`
	Effect string   `json:"effect"`
}

// Affordable reports whether a balance covers the price
func (s ShopItem) Affordable(coins int) bool {
	return coins >= s.Price
}
