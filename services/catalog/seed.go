package catalog

import "github.com/shopspring/decimal"

// Static fallback set, used when the upstream feed cannot be reached at
// startup.
func seedProducts() []Product {
	return []Product{
		{
			UID:         "seed_wireless_headphones",
			Name:        "Wireless Headphones",
			Price:       decimal.NewFromFloat(99.99),
			Description: "Premium wireless headphones with noise cancellation",
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
		},
		{
			UID:         "seed_smart_watch",
			Name:        "Smart Watch",
			Price:       decimal.NewFromFloat(199.99),
			Description: "Feature-rich smartwatch with health monitoring",
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300&fit=crop",
		},
		{
			UID:         "seed_laptop_backpack",
			Name:        "Laptop Backpack",
			Price:       decimal.NewFromFloat(49.99),
			Description: "Water-resistant backpack that fits laptops up to 15 inch",
			Category:    "Bags",
			ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=300&fit=crop",
		},
		{
			UID:         "seed_cotton_tshirt",
			Name:        "Cotton T-Shirt",
			Price:       decimal.NewFromFloat(19.99),
			Description: "Classic fit t-shirt in breathable cotton",
			Category:    "Clothing",
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=300&fit=crop",
		},
		{
			UID:         "seed_ceramic_mug",
			Name:        "Ceramic Mug",
			Price:       decimal.NewFromFloat(12.50),
			Description: "Dishwasher-safe ceramic mug, holds 350ml",
			Category:    "Kitchen",
			ImageURL:    "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=400&h=300&fit=crop",
		},
		{
			UID:         "seed_desk_lamp",
			Name:        "Desk Lamp",
			Price:       decimal.NewFromFloat(34.95),
			Description: "Adjustable LED desk lamp with three brightness levels",
			Category:    "Home",
			ImageURL:    "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=400&h=300&fit=crop",
		},
	}
}
