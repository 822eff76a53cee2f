package ledger

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/yummin/backend/internal/domain/cart"
	"github.com/yummin/backend/internal/domain/catalog"
	"github.com/yummin/backend/internal/domain/order"
	"github.com/yummin/backend/internal/domain/shared/valueobject"
)

type seedCustomer struct {
	name  string
	phone string
}

// Fixed demo pools. The first five customers receive a burst of early
// orders so the dashboard shows VIP badges out of the box.
var seedCustomers = []seedCustomer{
	{"Rajesh Kumar", "9876543210"},
	{"Priya Sharma", "9876543211"},
	{"Amit Singh", "9876543212"},
	{"Neha Patel", "9876543213"},
	{"Rohan Verma", "9876543214"},
	{"Sneha Gupta", "9876543215"},
	{"Vikram Malhotra", "9876543216"},
	{"Anjali Reddy", "9876543217"},
	{"Karan Mehta", "9876543218"},
	{"Pooja Iyer", "9876543219"},
	{"Arjun Nair", "9876543220"},
	{"Divya Kapoor", "9876543221"},
	{"Rahul Joshi", "9876543222"},
	{"Kavya Rao", "9876543223"},
	{"Siddharth Agarwal", "9876543224"},
}

var seedAddresses = []string{
	"123 Mall Road, Amritsar",
	"456 Court Road, Amritsar",
	"789 Lawrence Road, Amritsar",
	"321 Queens Road, Amritsar",
	"654 GT Road, Amritsar",
	"987 Circular Road, Amritsar",
	"147 Hall Bazaar, Amritsar",
	"258 Katra Jaimal Singh, Amritsar",
	"369 Ranjit Avenue, Amritsar",
	"741 Model Town, Amritsar",
}

// 60% of orders carry no coupon
var seedCoupons = []string{"", "", "", "WELCOME10", "FLAT50"}

var seedPayments = []order.PaymentMethod{order.PaymentUPI, order.PaymentCOD, order.PaymentCard}

var seedInstructions = []string{"", "", "Please ring the bell", "Don't ring the bell", "Extra napkins please", "Less ice"}

// SeedGenerator produces a synthetic ledger for demo dashboards. The
// rand source is injected so tests can pin the output.
type SeedGenerator struct {
	rng        *rand.Rand
	now        func() time.Time
	orderCount int
	idPrefix   string
}

// NewSeedGenerator creates a generator for the given order count
func NewSeedGenerator(rng *rand.Rand, idPrefix string, orderCount int) *SeedGenerator {
	return &SeedGenerator{
		rng:        rng,
		now:        time.Now,
		orderCount: orderCount,
		idPrefix:   idPrefix,
	}
}

// Generate builds the demo orders, oldest first. Orders are spread over
// the trailing seven days during shop hours, weighted toward bestseller
// items, with the first third of orders concentrated on the first five
// customers so they cross the VIP threshold.
func (g *SeedGenerator) Generate() []*order.Order {
	popular := catalog.Bestsellers()
	menu := catalog.Items()
	now := g.now()

	vipWindow := g.orderCount / 3

	orders := make([]*order.Order, 0, g.orderCount)
	for i := 0; i < g.orderCount; i++ {
		daysAgo := g.rng.Intn(7)
		hoursAgo := g.rng.Intn(12) + 12 // noon to 11pm
		ts := now.Add(-time.Duration(daysAgo)*24*time.Hour - time.Duration(hoursAgo)*time.Hour)

		var customer seedCustomer
		if i < vipWindow {
			customer = seedCustomers[g.rng.Intn(5)]
		} else {
			customer = seedCustomers[g.rng.Intn(len(seedCustomers))]
		}

		itemCount := g.rng.Intn(3) + 1
		var items []order.Item
		for j := 0; j < itemCount; j++ {
			var menuItem catalog.MenuItem
			if g.rng.Float64() < 0.7 && len(popular) > 0 {
				menuItem = popular[g.rng.Intn(len(popular))]
			} else {
				menuItem = menu[g.rng.Intn(len(menu))]
			}
			items = append(items, order.Item{
				ItemID:    menuItem.ID,
				Name:      menuItem.Name,
				UnitPrice: menuItem.Price,
				Quantity:  int64(g.rng.Intn(2) + 1),
				Category:  menuItem.Category,
			})
		}

		var subtotal int64
		for _, item := range items {
			subtotal += item.LineTotal()
		}

		couponCode := seedCoupons[g.rng.Intn(len(seedCoupons))]
		var discount int64
		if coupon, ok := cart.FindCoupon(couponCode); ok {
			discount = coupon.Discount(valueobject.NewMoney(subtotal)).Rupees()
		}

		orders = append(orders, &order.Order{
			ID:            fmt.Sprintf("%s-%d", g.idPrefix, 1000+i),
			CustomerName:  customer.name,
			CustomerPhone: customer.phone,
			Address:       seedAddresses[g.rng.Intn(len(seedAddresses))],
			Items:         items,
			Subtotal:      subtotal,
			Discount:      discount,
			CouponCode:    couponCode,
			Total:         subtotal - discount,
			PaymentMethod: seedPayments[g.rng.Intn(len(seedPayments))],
			Instructions:  seedInstructions[g.rng.Intn(len(seedInstructions))],
			Timestamp:     ts,
		})
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Timestamp.Before(orders[j].Timestamp)
	})
	return orders
}
