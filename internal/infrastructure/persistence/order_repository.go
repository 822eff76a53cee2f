package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yummin/backend/internal/domain/catalog"
	"github.com/yummin/backend/internal/domain/order"
	"github.com/yummin/backend/internal/domain/shared"
)

// orderRecord is the GORM model for a ledger entry
type orderRecord struct {
	ID            string `gorm:"primaryKey"`
	CustomerName  string
	CustomerPhone string `gorm:"index"`
	Address       string
	Subtotal      int64
	Discount      int64
	CouponCode    string
	Total         int64
	PaymentMethod string
	Instructions  string
	Timestamp     time.Time         `gorm:"index"`
	Items         []orderItemRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (orderRecord) TableName() string { return "orders" }

// orderItemRecord is the GORM model for one order line snapshot
type orderItemRecord struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	OrderID   string `gorm:"index"`
	ItemID    string
	Name      string
	UnitPrice int64
	Quantity  int64
	Category  string
}

func (orderItemRecord) TableName() string { return "order_items" }

func toOrderRecord(o *order.Order) *orderRecord {
	rec := &orderRecord{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       o.Address,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		CouponCode:    o.CouponCode,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod.String(),
		Instructions:  o.Instructions,
		Timestamp:     o.Timestamp,
	}
	for _, item := range o.Items {
		rec.Items = append(rec.Items, orderItemRecord{
			OrderID:   o.ID,
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Category:  item.Category.String(),
		})
	}
	return rec
}

func (rec *orderRecord) toDomain() *order.Order {
	o := &order.Order{
		ID:            rec.ID,
		CustomerName:  rec.CustomerName,
		CustomerPhone: rec.CustomerPhone,
		Address:       rec.Address,
		Subtotal:      rec.Subtotal,
		Discount:      rec.Discount,
		CouponCode:    rec.CouponCode,
		Total:         rec.Total,
		PaymentMethod: order.PaymentMethod(rec.PaymentMethod),
		Instructions:  rec.Instructions,
		Timestamp:     rec.Timestamp,
	}
	for _, item := range rec.Items {
		o.Items = append(o.Items, order.Item{
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Category:  catalog.Category(item.Category),
		})
	}
	return o
}

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save appends an order to the ledger
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Create(toOrderRecord(o)).Error
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	var rec orderRecord
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return rec.toDomain(), nil
}

// FindAll returns the whole ledger, oldest first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	var recs []orderRecord
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("timestamp asc").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(recs), nil
}

// FindByDateRange returns orders within [from, to], oldest first
func (r *GormOrderRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	var recs []orderRecord
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("timestamp >= ? AND timestamp <= ?", from, to).
		Order("timestamp asc").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(recs), nil
}

// Clear deletes the whole ledger
func (r *GormOrderRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&orderItemRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&orderRecord{}).Error
	})
}

// ReplaceAll atomically swaps the ledger content for the given orders
func (r *GormOrderRepository) ReplaceAll(ctx context.Context, orders []*order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&orderItemRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&orderRecord{}).Error; err != nil {
			return err
		}
		for _, o := range orders {
			if err := tx.Create(toOrderRecord(o)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func toDomainSlice(recs []orderRecord) []*order.Order {
	out := make([]*order.Order, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDomain())
	}
	return out
}
