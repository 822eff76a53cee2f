package report

import (
	"sort"
	"time"

	"github.com/yummin/backend/internal/domain/catalog"
	"github.com/yummin/backend/internal/domain/order"
	"github.com/yummin/backend/internal/domain/shared/valueobject"
)

// ItemStat is one menu item's aggregate across the ledger
type ItemStat struct {
	ItemID   string           `json:"item_id"`
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	Quantity int64            `json:"quantity"`
	Revenue  int64            `json:"revenue"`
}

// HourBucket is the order count for one hour of the day
type HourBucket struct {
	Hour   int   `json:"hour"`
	Orders int64 `json:"orders"`
}

// CustomerBadge classifies a customer by their order count
type CustomerBadge string

const (
	BadgeNone      CustomerBadge = ""
	BadgeReturning CustomerBadge = "Returning"
	BadgeVIP       CustomerBadge = "VIP"
)

// RecentOrder is a ledger entry annotated with its customer's badge
type RecentOrder struct {
	Order *order.Order  `json:"order"`
	Badge CustomerBadge `json:"badge,omitempty"`
}

// Dashboard is the full analytics snapshot served to the owner view
type Dashboard struct {
	TodayRevenue    int64              `json:"today_revenue"`
	TodayOrderCount int                `json:"today_order_count"`
	TotalOrders     int                `json:"total_orders"`
	AverageTicket   int64              `json:"average_ticket"`
	Bestsellers     []ItemStat         `json:"bestsellers"`
	RevenueDrivers  []ItemStat         `json:"revenue_drivers"`
	ZeroMovers      []catalog.MenuItem `json:"zero_movers"`
	Histogram       []HourBucket       `json:"histogram"`
	PeakHours       []int              `json:"peak_hours"`
	RecentOrders    []RecentOrder      `json:"recent_orders"`
}

const (
	topN              = 3
	recentOrderLimit  = 15
	vipOrderCount     = 5
	returningCount    = 2
	zeroMoverLookback = 7 * 24 * time.Hour
	peakHourRatio     = 0.7
)

// Today filters orders whose timestamp falls on the same calendar day
// as now, in now's location.
func Today(orders []*order.Order, now time.Time) []*order.Order {
	y, m, d := now.Date()
	var out []*order.Order
	for _, o := range orders {
		oy, om, od := o.Timestamp.In(now.Location()).Date()
		if oy == y && om == m && od == d {
			out = append(out, o)
		}
	}
	return out
}

// Revenue sums the payable totals of the given orders
func Revenue(orders []*order.Order) int64 {
	var total int64
	for _, o := range orders {
		total += o.Total
	}
	return total
}

// AverageTicket returns total revenue divided by order count, rounded
// to whole rupees. Zero when there are no orders.
func AverageTicket(orders []*order.Order) int64 {
	if len(orders) == 0 {
		return 0
	}
	return valueobject.NewMoney(Revenue(orders)).DivideByInt(int64(len(orders))).Rupees()
}

// itemStats accumulates per-item quantity and revenue across orders,
// keeping first-seen order for stable ranking ties.
func itemStats(orders []*order.Order) []ItemStat {
	index := make(map[string]int)
	var stats []ItemStat
	for _, o := range orders {
		for _, item := range o.Items {
			i, ok := index[item.ItemID]
			if !ok {
				i = len(stats)
				index[item.ItemID] = i
				stats = append(stats, ItemStat{ItemID: item.ItemID, Name: item.Name, Category: item.Category})
			}
			stats[i].Quantity += item.Quantity
			stats[i].Revenue += item.LineTotal()
		}
	}
	return stats
}

// Bestsellers returns the top three items by units sold
func Bestsellers(orders []*order.Order) []ItemStat {
	stats := itemStats(orders)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Quantity > stats[j].Quantity
	})
	if len(stats) > topN {
		stats = stats[:topN]
	}
	return stats
}

// RevenueDrivers returns the top three items by revenue
func RevenueDrivers(orders []*order.Order) []ItemStat {
	stats := itemStats(orders)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Revenue > stats[j].Revenue
	})
	if len(stats) > topN {
		stats = stats[:topN]
	}
	return stats
}

// ZeroMovers returns catalog items with no sales in the trailing seven
// days, in menu order.
func ZeroMovers(orders []*order.Order, now time.Time) []catalog.MenuItem {
	cutoff := now.Add(-zeroMoverLookback)
	sold := make(map[string]bool)
	for _, o := range orders {
		if o.Timestamp.Before(cutoff) {
			continue
		}
		for _, item := range o.Items {
			sold[item.ItemID] = true
		}
	}

	var out []catalog.MenuItem
	for _, item := range catalog.Items() {
		if !sold[item.ID] {
			out = append(out, item)
		}
	}
	return out
}

// Histogram buckets orders into the 24 hours of the day
func Histogram(orders []*order.Order) []HourBucket {
	buckets := make([]HourBucket, 24)
	for i := range buckets {
		buckets[i].Hour = i
	}
	for _, o := range orders {
		buckets[o.Timestamp.Local().Hour()].Orders++
	}
	return buckets
}

// PeakHours returns the hours whose order count is strictly above 70%
// of the busiest hour's count. Empty when there are no orders.
func PeakHours(buckets []HourBucket) []int {
	var max int64
	for _, b := range buckets {
		if b.Orders > max {
			max = b.Orders
		}
	}

	var out []int
	for _, b := range buckets {
		if float64(b.Orders) > float64(max)*peakHourRatio {
			out = append(out, b.Hour)
		}
	}
	return out
}

// customerOrderCounts tallies orders per customer, keyed by phone
func customerOrderCounts(orders []*order.Order) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.CustomerPhone]++
	}
	return counts
}

// badgeFor maps an order count to a customer badge
func badgeFor(count int) CustomerBadge {
	switch {
	case count >= vipOrderCount:
		return BadgeVIP
	case count >= returningCount:
		return BadgeReturning
	}
	return BadgeNone
}

// RecentWithBadges returns the fifteen most recent orders, newest
// first, each annotated with its customer's badge computed over the
// WHOLE ledger, not just the returned window.
func RecentWithBadges(orders []*order.Order) []RecentOrder {
	counts := customerOrderCounts(orders)

	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	if len(sorted) > recentOrderLimit {
		sorted = sorted[:recentOrderLimit]
	}

	out := make([]RecentOrder, 0, len(sorted))
	for _, o := range sorted {
		out = append(out, RecentOrder{Order: o, Badge: badgeFor(counts[o.CustomerPhone])})
	}
	return out
}

// Build assembles the full dashboard from the ledger. An empty ledger
// yields a zero-valued dashboard, never an error.
func Build(orders []*order.Order, now time.Time) Dashboard {
	todays := Today(orders, now)
	histogram := Histogram(orders)
	return Dashboard{
		TodayRevenue:    Revenue(todays),
		TodayOrderCount: len(todays),
		TotalOrders:     len(orders),
		AverageTicket:   AverageTicket(orders),
		Bestsellers:     Bestsellers(orders),
		RevenueDrivers:  RevenueDrivers(orders),
		ZeroMovers:      ZeroMovers(orders, now),
		Histogram:       histogram,
		PeakHours:       PeakHours(histogram),
		RecentOrders:    RecentWithBadges(orders),
	}
}
