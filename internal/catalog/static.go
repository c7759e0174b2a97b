package catalog

import "playgear/internal/domain"

// DefaultProducts is the built-in demo catalog, used when
// CATALOG_SOURCE=static or the remote fetch fails at startup.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: "shoe-01", Title: "Court Ace Sneakers", Type: "SHOES", Price: 599, Stock: 12, ImageRef: "products/shoe-01.jpg"},
		{ID: "shoe-02", Title: "Trail Runner Pro", Type: "SHOES", Price: 899, Stock: 6, ImageRef: "products/shoe-02.jpg"},
		{ID: "jersey-01", Title: "Home Jersey 24/25", Type: "JERSEY", Price: 499, Stock: 20, ImageRef: "products/jersey-01.jpg"},
		{ID: "jersey-02", Title: "Away Jersey 24/25", Type: "JERSEY", Price: 549, Stock: 8, ImageRef: "products/jersey-02.jpg"},
		{ID: "cap-01", Title: "Classic Team Cap", Type: "ACCESSORY", Price: 199, Stock: 30, ImageRef: "products/cap-01.jpg"},
		{ID: "bottle-01", Title: "Steel Sipper 750ml", Type: "ACCESSORY", Price: 299, Stock: 15, ImageRef: "products/bottle-01.jpg"},
	}
}
