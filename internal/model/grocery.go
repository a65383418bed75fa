package model

import "time"

// GroceryItem is an entry on the active grocery list. Names are unique within
// the list; the numeric ID only exists to preserve insertion order.
type GroceryItem struct {
	ID         int64     `json:"-"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	Category   string    `json:"category,omitempty"`
	ExpiryDate *Date     `json:"expiry_date,omitempty"`
	CreatedAt  time.Time `json:"-"`
}

// PurchaseRecord tracks when an item name was last part of a confirmed
// purchase. Records are never deleted; LastPurchasedAt only moves forward.
type PurchaseRecord struct {
	Name            string    `json:"name"`
	LastPurchasedAt time.Time `json:"last_purchased_at"`
}
