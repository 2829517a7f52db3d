package store

import (
	"time"

	"athena.merchant/go-api/pkg/models"
)

func price(v float64) *float64 {
	return &v
}

func mockProducts() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Classic Black Hoodie", Price: 49.99, CompareAtPrice: price(69.99), Inventory: 3, Vendor: "Urban Threads", Category: "Hoodies", SKU: "UTH-BLK-001", Weight: 0.8, Status: "active", Tags: []string{"hoodie", "black", "winter", "casual"}, SalesCount: 127, Views: 450},
		{ID: 2, Title: "Premium White Cotton Tee", Price: 29.99, Inventory: 42, Vendor: "Urban Threads", Category: "T-Shirts", SKU: "UTT-WHT-002", Weight: 0.3, Status: "active", Tags: []string{"tee", "white", "cotton", "summer", "basic"}, SalesCount: 283, Views: 892},
		{ID: 3, Title: "Slim Fit Blue Jeans", Price: 79.99, CompareAtPrice: price(99.99), Inventory: 15, Vendor: "Urban Threads", Category: "Pants", SKU: "UTJ-BLU-003", Weight: 1.2, Status: "active", Tags: []string{"jeans", "blue", "slim-fit", "denim"}, SalesCount: 94, Views: 312},
		{ID: 4, Title: "Red Athletic Sneakers", Price: 89.99, CompareAtPrice: price(119.99), Inventory: 8, Vendor: "Footwear Co.", Category: "Shoes", SKU: "UTS-RED-004", Weight: 0.9, Status: "active", Tags: []string{"sneakers", "red", "athletic", "running"}, SalesCount: 56, Views: 201},
		{ID: 5, Title: "Green Canvas Backpack", Price: 59.99, CompareAtPrice: price(79.99), Inventory: 0, Vendor: "Accessories Plus", Category: "Accessories", SKU: "UTA-GRN-005", Weight: 0.7, Status: "active", Tags: []string{"backpack", "green", "canvas", "travel"}, SalesCount: 38, Views: 156},
		{ID: 6, Title: "Navy Blue Windbreaker", Price: 64.99, CompareAtPrice: price(84.99), Inventory: 22, Vendor: "Urban Threads", Category: "Jackets", SKU: "UTJ-NAV-006", Weight: 0.6, Status: "active", Tags: []string{"jacket", "navy", "windbreaker", "outdoor"}, SalesCount: 71, Views: 245},
		{ID: 7, Title: "Gray Wool Beanie", Price: 19.99, Inventory: 67, Vendor: "Urban Threads", Category: "Accessories", SKU: "UTA-GRY-007", Weight: 0.1, Status: "active", Tags: []string{"beanie", "gray", "wool", "winter"}, SalesCount: 145, Views: 378},
		{ID: 8, Title: "Khaki Chino Shorts", Price: 39.99, CompareAtPrice: price(49.99), Inventory: 31, Vendor: "Urban Threads", Category: "Shorts", SKU: "UTS-KHA-008", Weight: 0.4, Status: "active", Tags: []string{"shorts", "khaki", "chino", "summer"}, SalesCount: 112, Views: 289},
	}
}

// MockStoreData builds the demo snapshot for the given moment. Stock alerts
// are derived from the product list.
func MockStoreData(now time.Time) *models.StoreSnapshot {
	yesterday := now.AddDate(0, 0, -1)
	lastWeek := now.AddDate(0, 0, -7)

	products := mockProducts()
	lowStock := make([]models.StockItem, 0, len(products))
	outOfStock := make([]models.StockItem, 0)
	for i := range products {
		if products[i].IsLowStock() {
			lowStock = append(lowStock, products[i].StockItem())
		}
		if products[i].IsOutOfStock() {
			outOfStock = append(outOfStock, products[i].StockItem())
		}
	}

	return &models.StoreSnapshot{
		StoreName: "Urban Threads Clothing Co.",
		StoreURL:  "urbanthreads.myshopify.com",
		Currency:  "USD",

		Products: products,

		OrdersToday:      12,
		RevenueToday:     543.87,
		OrdersYesterday:  18,
		RevenueYesterday: 892.45,
		OrdersThisWeek:   87,
		RevenueThisWeek:  4234.56,
		OrdersLastWeek:   124,
		RevenueLastWeek:  5892.34,
		OrdersThisMonth:  342,
		RevenueThisMonth: 18234.89,

		AverageOrderValue:         53.31,
		AverageOrderValueToday:    45.32,
		AverageOrderValueLastWeek: 47.52,
		ConversionRate:            2.8,
		ConversionRateToday:       2.1,

		TotalCustomers:          1247,
		NewCustomersToday:       5,
		ReturningCustomersToday: 7,
		CustomerRetentionRate:   68.5,

		TotalProducts:      len(products),
		LowStockProducts:   lowStock,
		OutOfStockProducts: outOfStock,

		AbandonedCarts:            7,
		AbandonedCartValue:        312.45,
		AverageAbandonedCartValue: 44.64,

		TopSellingProducts: []models.TopProduct{
			{Title: "Premium White Cotton Tee", SalesCount: 283, Revenue: 8484.17},
			{Title: "Gray Wool Beanie", SalesCount: 145, Revenue: 2898.55},
			{Title: "Slim Fit Blue Jeans", SalesCount: 94, Revenue: 7519.06},
		},
		TopSellingProduct: "Premium White Cotton Tee",

		RecentOrders: []models.RecentOrder{
			{
				ID: 1001, Total: 79.98, Status: "fulfilled", CustomerName: "John Smith", ShippingCost: 5.99,
				Items:     []models.OrderItem{{Product: "Premium White Cotton Tee", Quantity: 2, Price: 29.99}},
				CreatedAt: timestamp(now.Add(-2 * time.Hour)),
			},
			{
				ID: 1002, Total: 49.99, Status: "pending", CustomerName: "Sarah Johnson", ShippingCost: 5.99,
				Items:     []models.OrderItem{{Product: "Classic Black Hoodie", Quantity: 1, Price: 49.99}},
				CreatedAt: timestamp(now.Add(-5 * time.Hour)),
			},
			{
				ID: 1003, Total: 169.98, Status: "fulfilled", CustomerName: "Mike Davis", ShippingCost: 7.99,
				Items: []models.OrderItem{
					{Product: "Slim Fit Blue Jeans", Quantity: 1, Price: 79.99},
					{Product: "Red Athletic Sneakers", Quantity: 1, Price: 89.99},
				},
				CreatedAt: timestamp(now.Add(-8 * time.Hour)),
			},
			{
				ID: 1004, Total: 89.97, Status: "fulfilled", CustomerName: "Emily Chen", ShippingCost: 6.99,
				Items: []models.OrderItem{
					{Product: "Gray Wool Beanie", Quantity: 3, Price: 19.99},
					{Product: "Navy Blue Windbreaker", Quantity: 1, Price: 64.99},
				},
				CreatedAt: timestamp(yesterday),
			},
		},

		SessionsToday:     542,
		SessionsYesterday: 678,
		PageViewsToday:    1247,
		BounceRate:        45.2,

		BestPerformingCategory:  "T-Shirts",
		WorstPerformingCategory: "Accessories",

		ActiveDiscounts:             2,
		TotalDiscountValueUsedToday: 34.50,

		AverageShippingTime: 3.2,
		FulfillmentRate:     96.8,

		RevenueTrend:         "down",
		RevenueChangePercent: -12.5,
		OrderTrend:           "down",
		OrderChangePercent:   -8.3,

		CurrentDate:   timestamp(now),
		YesterdayDate: timestamp(yesterday),
		LastWeekDate:  timestamp(lastWeek),
	}
}

func timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
