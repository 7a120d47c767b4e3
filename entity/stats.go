package entity

// DashboardStats is the single aggregate object behind /api/admin/stats.
// Every field is recomputed per request; nothing is cached.
type DashboardStats struct {
	TotalOrders     int64          `json:"totalOrders"`
	TotalRevenue    int64          `json:"totalRevenue"`
	TotalUsers      int64          `json:"totalUsers"`
	TotalMenuItems  int64          `json:"totalMenuItems"`
	TodayOrders     int64          `json:"todayOrders"`
	TodayRevenue    int64          `json:"todayRevenue"`
	PendingOrders   int64          `json:"pendingOrders"`
	CompletedOrders int64          `json:"completedOrders"`
	PopularItems    []PopularItem  `json:"popularItems"`
	RecentOrders    []RecentOrder  `json:"recentOrders"`
	MonthlyRevenue  []MonthRevenue `json:"monthlyRevenue"`
}

type PopularItem struct {
	Name    string `json:"name"`
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"`
}

type RecentOrder struct {
	ID       uint        `json:"id"`
	Customer string      `json:"customer"`
	Total    int64       `json:"total"`
	Status   OrderStatus `json:"status"`
}

type MonthRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
