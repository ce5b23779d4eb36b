package Notifications

import (
	"log"

	"Garage/Ledger"
	"Garage/Models"

	"gorm.io/gorm"
)

// Publish persists ledger events as in-app notifications and fans them
// out to push and Slack. It runs after the ledger transaction has
// committed and is strictly best-effort: every failure is logged and
// swallowed, never surfaced to the caller.
func Publish(db *gorm.DB, events []Ledger.Event) {
	for _, event := range events {
		if event.Type == Models.NotificationLowStock && hasOpenLowStockAlert(db, event.RefID) {
			continue
		}

		notification := Models.Notification{
			Type:    event.Type,
			Message: event.Message,
			RefType: event.RefType,
			RefID:   event.RefID,
		}
		if err := db.Create(&notification).Error; err != nil {
			log.Printf("Failed to persist %s notification: %v", event.Type, err)
			continue
		}

		if err := SendPush(db, event); err != nil {
			log.Printf("Push delivery failed for %s: %v", event.Type, err)
		}
		if event.Type == Models.NotificationLowStock {
			if err := PostLowStockAlert(event.Message); err != nil {
				log.Printf("Slack alert failed: %v", err)
			}
		}
	}
}

// hasOpenLowStockAlert reports whether an unread low-stock notification
// already exists for the item. Keeps the trail at one open alert per
// item without a hard uniqueness constraint.
func hasOpenLowStockAlert(db *gorm.DB, itemID uint) bool {
	var count int64
	err := db.Model(&Models.Notification{}).
		Where("type = ? AND ref_id = ? AND read = ?", Models.NotificationLowStock, itemID, false).
		Count(&count).Error
	if err != nil {
		log.Printf("Low-stock dedup query failed: %v", err)
		return false
	}
	return count > 0
}

// SweepLowStock emits alerts for every item currently at or below its
// reorder threshold. Used by the daily cron job; dedup applies as usual.
func SweepLowStock(db *gorm.DB) error {
	var items []Models.InventoryItem
	err := db.Where("reorder_threshold > 0 AND quantity <= reorder_threshold").
		Or("quantity <= 0").
		Find(&items).Error
	if err != nil {
		return err
	}

	events := make([]Ledger.Event, 0, len(items))
	for _, item := range items {
		events = append(events, Ledger.Event{
			Type:    Models.NotificationLowStock,
			Message: formatLowStock(item.Name, item.Quantity, item.ReorderThreshold),
			RefType: "inventory_item",
			RefID:   item.ID,
		})
	}
	Publish(db, events)
	return nil
}
