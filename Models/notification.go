package Models

import "gorm.io/gorm"

const (
	NotificationInvoiceCreated = "invoice_created"
	NotificationInvoicePaid    = "invoice_paid"
	NotificationInvoiceDeleted = "invoice_deleted"
	NotificationInventoryUsed  = "inventory_used"
	NotificationLowStock       = "low_stock"
)

// Notification is the persisted in-app trail. RefType/RefID form the
// structured key used for low-stock dedup: at most one unread low_stock
// row may exist per inventory item.
type Notification struct {
	gorm.Model
	Type    string `json:"type" gorm:"size:50;not null;index"`
	Message string `json:"message" gorm:"type:text;not null"`
	Read    bool   `json:"read" gorm:"default:false;index"`
	RefType string `json:"ref_type" gorm:"size:50"`
	RefID   uint   `json:"ref_id" gorm:"index"`
}

// FCMToken registers a dashboard device for push delivery.
type FCMToken struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"index"`
	Token  string `json:"token" gorm:"size:512;not null;uniqueIndex"`
}
