package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yummin/backend/internal/domain/cart"
	"github.com/yummin/backend/internal/domain/shared"
)

// kvRecord is a small key-value table used for cart state, mirroring
// the browser storage the storefront grew out of.
type kvRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (kvRecord) TableName() string { return "kv_store" }

const cartKey = "yummin_cart"

// GormCartStore persists cart snapshots in the kv table
type GormCartStore struct {
	db *gorm.DB
}

// NewGormCartStore creates a new GormCartStore
func NewGormCartStore(db *gorm.DB) *GormCartStore {
	return &GormCartStore{db: db}
}

// Save stores the cart snapshot, overwriting any previous one
func (s *GormCartStore) Save(ctx context.Context, snap cart.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	rec := kvRecord{Key: cartKey, Value: string(payload)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rec).Error
}

// Load reads the stored cart snapshot. Returns shared.ErrNotFound when
// no snapshot has been saved yet.
func (s *GormCartStore) Load(ctx context.Context) (cart.Snapshot, error) {
	var rec kvRecord
	if err := s.db.WithContext(ctx).First(&rec, "key = ?", cartKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cart.Snapshot{}, shared.ErrNotFound
		}
		return cart.Snapshot{}, err
	}

	var snap cart.Snapshot
	if err := json.Unmarshal([]byte(rec.Value), &snap); err != nil {
		return cart.Snapshot{}, err
	}
	return snap, nil
}

// Delete removes the stored cart snapshot
func (s *GormCartStore) Delete(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("key = ?", cartKey).Delete(&kvRecord{}).Error
}
