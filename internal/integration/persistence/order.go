package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// orderColumns is the ordering applied to every manually ordered table.
const orderColumns = "sort_order ASC, created_at ASC"

// updateOrders writes new sort keys for the given rows of value's table inside a
// single database transaction.
func updateOrders(ctx context.Context, db *gorm.DB, value interface{}, updates []adapter.OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		for _, update := range updates {
			result := tx.Model(value).
				Where("id = ?", update.ID).
				Updates(map[string]interface{}{
					"sort_order": update.Order,
					"updated_at": now,
				})
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}
