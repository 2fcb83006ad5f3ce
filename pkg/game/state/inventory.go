package state

import "sort"

// InventoryItem is an item carried by the player
type InventoryItem struct {
	ID        string
	Name      string
	Equipped  bool
	Uses      int // Remaining uses, -1 for unlimited
	Quantity  int
	Treasure  bool
	Stackable bool
}

// HasUses returns true if the item can still be used
func (i *InventoryItem) HasUses() bool {
	return i.Uses != 0
}

// Inventory holds the items carried by the player, keyed by id
type Inventory struct {
	items map[string]*InventoryItem
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{items: make(map[string]*InventoryItem)}
}

// Add puts an item in the inventory. Stackable items merge their quantity;
// anything else replaces an existing item with the same id.
func (inv *Inventory) Add(item InventoryItem) *InventoryItem {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if existing, ok := inv.items[item.ID]; ok && existing.Stackable {
		existing.Quantity += item.Quantity
		return existing
	}
	stored := item
	inv.items[item.ID] = &stored
	return &stored
}

// Get returns the item with the given id, or nil
func (inv *Inventory) Get(id string) *InventoryItem {
	return inv.items[id]
}

// Has returns true if the item is carried
func (inv *Inventory) Has(id string) bool {
	_, ok := inv.items[id]
	return ok
}

// Remove drops the item entirely
func (inv *Inventory) Remove(id string) {
	delete(inv.items, id)
}

// Quantity returns how many of the item are carried
func (inv *Inventory) Quantity(id string) int {
	if item, ok := inv.items[id]; ok {
		return item.Quantity
	}
	return 0
}

// Consume takes n of the item away. The item is removed when none remain.
// Returns false if fewer than n are carried.
func (inv *Inventory) Consume(id string, n int) bool {
	item, ok := inv.items[id]
	if !ok || item.Quantity < n {
		return false
	}
	item.Quantity -= n
	if item.Quantity <= 0 {
		delete(inv.items, id)
	}
	return true
}

// UseCharge spends one use of the item. Unlimited items always succeed.
func (inv *Inventory) UseCharge(id string) bool {
	item, ok := inv.items[id]
	if !ok {
		return false
	}
	if item.Uses < 0 {
		return true
	}
	if item.Uses == 0 {
		return false
	}
	item.Uses--
	return true
}

// Equip sets the equipped state of the item
func (inv *Inventory) Equip(id string, equipped bool) bool {
	item, ok := inv.items[id]
	if !ok {
		return false
	}
	item.Equipped = equipped
	return true
}

// IsEquipped returns true if the item is carried and equipped
func (inv *Inventory) IsEquipped(id string) bool {
	item, ok := inv.items[id]
	return ok && item.Equipped
}

// Len returns the number of distinct items
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Items returns copies of all items sorted by name
func (inv *Inventory) Items() []InventoryItem {
	out := make([]InventoryItem, 0, len(inv.items))
	for _, item := range inv.items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}
