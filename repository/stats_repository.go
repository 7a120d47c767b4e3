package repository

import (
	"time"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

var uzMonths = [12]string{
	"Yanvar", "Fevral", "Mart", "Aprel", "May", "Iyun",
	"Iyul", "Avgust", "Sentabr", "Oktabr", "Noyabr", "Dekabr",
}

// Collect recomputes the whole dashboard object. Any query failure aborts
// the collection; the caller decides how to degrade.
func (r *StatsRepository) Collect() (*entity.DashboardStats, error) {
	var s entity.DashboardStats

	var totals struct {
		TotalOrders  int64
		TotalRevenue int64
	}
	if err := r.DB.Model(&entity.Order{}).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	s.TotalOrders = totals.TotalOrders
	s.TotalRevenue = totals.TotalRevenue

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var today struct {
		TodayOrders  int64
		TodayRevenue int64
	}
	if err := r.DB.Model(&entity.Order{}).
		Select("COUNT(*) AS today_orders, COALESCE(SUM(total_amount), 0) AS today_revenue").
		Where("created_at >= ?", startOfDay).
		Scan(&today).Error; err != nil {
		return nil, err
	}
	s.TodayOrders = today.TodayOrders
	s.TodayRevenue = today.TodayRevenue

	if err := r.DB.Model(&entity.Order{}).
		Where("status = ?", entity.StatusPending).
		Count(&s.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Order{}).
		Where("status = ?", entity.StatusDelivered).
		Count(&s.CompletedOrders).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.User{}).Count(&s.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.MenuItem{}).
		Where("is_available = ?", true).
		Count(&s.TotalMenuItems).Error; err != nil {
		return nil, err
	}

	s.PopularItems = make([]entity.PopularItem, 0, 5)
	if err := r.DB.Table("order_items oi").
		Select("mi.name_uz AS name, COUNT(oi.id) AS orders, SUM(oi.price * oi.quantity) AS revenue").
		Joins("JOIN menu_items mi ON mi.id = oi.menu_item_id").
		Group("mi.id, mi.name_uz").
		Order("COUNT(oi.id) DESC").
		Limit(5).
		Scan(&s.PopularItems).Error; err != nil {
		return nil, err
	}

	s.RecentOrders = make([]entity.RecentOrder, 0, 10)
	if err := r.DB.Table("orders o").
		Select("o.id, COALESCE(u.name, 'Mehmon') AS customer, o.total_amount AS total, o.status").
		Joins("LEFT JOIN users u ON u.id = o.user_id").
		Order("o.created_at DESC").
		Limit(10).
		Scan(&s.RecentOrders).Error; err != nil {
		return nil, err
	}

	monthly, err := r.monthlyRevenue(now)
	if err != nil {
		return nil, err
	}
	s.MonthlyRevenue = monthly

	return &s, nil
}

// monthlyRevenue buckets order totals by calendar month for the trailing
// six months. Bucketing happens in Go: month formatting differs between
// postgres and sqlite and the row counts are small.
func (r *StatsRepository) monthlyRevenue(now time.Time) ([]entity.MonthRevenue, error) {
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)

	var rows []struct {
		CreatedAt   time.Time
		TotalAmount int64
	}
	if err := r.DB.Model(&entity.Order{}).
		Select("created_at, total_amount").
		Where("created_at >= ?", since).
		Order("created_at").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	type bucket struct{ year, month int }
	sums := map[bucket]int64{}
	var order []bucket
	for _, row := range rows {
		b := bucket{row.CreatedAt.Year(), int(row.CreatedAt.Month())}
		if _, seen := sums[b]; !seen {
			order = append(order, b)
		}
		sums[b] += row.TotalAmount
	}

	out := make([]entity.MonthRevenue, 0, len(order))
	for _, b := range order {
		out = append(out, entity.MonthRevenue{
			Month:   uzMonths[b.month-1],
			Revenue: sums[b],
		})
	}
	return out, nil
}
