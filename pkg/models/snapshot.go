package models

// TopProduct is a best seller summary
type TopProduct struct {
	Title      string  `json:"title"`
	SalesCount int     `json:"salesCount"`
	Revenue    float64 `json:"revenue"`
}

type OrderItem struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type RecentOrder struct {
	ID           int         `json:"id"`
	Total        float64     `json:"total"`
	Items        []OrderItem `json:"items"`
	Status       string      `json:"status"`
	CustomerName string      `json:"customerName"`
	CreatedAt    string      `json:"createdAt"`
	ShippingCost float64     `json:"shippingCost"`
}

// StoreSnapshot is a point-in-time bundle of store metrics sent to the model
// as context. It is built fresh for every question and never modified.
type StoreSnapshot struct {
	StoreName string `json:"storeName"`
	StoreURL  string `json:"storeUrl"`
	Currency  string `json:"currency"`

	Products []Product `json:"products"`

	OrdersToday      int     `json:"ordersToday"`
	RevenueToday     float64 `json:"revenueToday"`
	OrdersYesterday  int     `json:"ordersYesterday"`
	RevenueYesterday float64 `json:"revenueYesterday"`
	OrdersThisWeek   int     `json:"ordersThisWeek"`
	RevenueThisWeek  float64 `json:"revenueThisWeek"`
	OrdersLastWeek   int     `json:"ordersLastWeek"`
	RevenueLastWeek  float64 `json:"revenueLastWeek"`
	OrdersThisMonth  int     `json:"ordersThisMonth"`
	RevenueThisMonth float64 `json:"revenueThisMonth"`

	AverageOrderValue         float64 `json:"averageOrderValue"`
	AverageOrderValueToday    float64 `json:"averageOrderValueToday"`
	AverageOrderValueLastWeek float64 `json:"averageOrderValueLastWeek"`
	ConversionRate            float64 `json:"conversionRate"`
	ConversionRateToday       float64 `json:"conversionRateToday"`

	TotalCustomers          int     `json:"totalCustomers"`
	NewCustomersToday       int     `json:"newCustomersToday"`
	ReturningCustomersToday int     `json:"returningCustomersToday"`
	CustomerRetentionRate   float64 `json:"customerRetentionRate"`

	TotalProducts      int         `json:"totalProducts"`
	LowStockProducts   []StockItem `json:"lowStockProducts"`
	OutOfStockProducts []StockItem `json:"outOfStockProducts"`

	AbandonedCarts            int     `json:"abandonedCarts"`
	AbandonedCartValue        float64 `json:"abandonedCartValue"`
	AverageAbandonedCartValue float64 `json:"averageAbandonedCartValue"`

	TopSellingProducts []TopProduct `json:"topSellingProducts"`
	TopSellingProduct  string       `json:"topSellingProduct"`

	RecentOrders []RecentOrder `json:"recentOrders"`

	SessionsToday     int     `json:"sessionsToday"`
	SessionsYesterday int     `json:"sessionsYesterday"`
	PageViewsToday    int     `json:"pageViewsToday"`
	BounceRate        float64 `json:"bounceRate"`

	BestPerformingCategory  string `json:"bestPerformingCategory"`
	WorstPerformingCategory string `json:"worstPerformingCategory"`

	ActiveDiscounts             int     `json:"activeDiscounts"`
	TotalDiscountValueUsedToday float64 `json:"totalDiscountValueUsedToday"`

	AverageShippingTime float64 `json:"averageShippingTime"` // days
	FulfillmentRate     float64 `json:"fulfillmentRate"`

	RevenueTrend         string  `json:"revenueTrend"` // up, down or stable
	RevenueChangePercent float64 `json:"revenueChangePercent"`
	OrderTrend           string  `json:"orderTrend"`
	OrderChangePercent   float64 `json:"orderChangePercent"`

	CurrentDate   string `json:"currentDate"`
	YesterdayDate string `json:"yesterdayDate"`
	LastWeekDate  string `json:"lastWeekDate"`
}

// AverageOrderValueFor returns today's revenue per order, or the long running
// average when there were no orders today.
func (s *StoreSnapshot) AverageOrderValueFor() float64 {
	if s.OrdersToday > 0 {
		return s.RevenueToday / float64(s.OrdersToday)
	}
	return s.AverageOrderValue
}
