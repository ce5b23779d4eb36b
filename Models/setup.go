package Models

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "garage.db"
	}

	connection, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", path, err)
	}
	DB = connection

	if err := Migrate(DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}

// Migrate runs AutoMigrate in dependency order.
func Migrate(db *gorm.DB) error {
	// 1. Base records with no foreign keys
	if err := db.AutoMigrate(
		&User{},
		&Customer{},
		&Technician{},
		&InventoryItem{},
		&Supplier{},
		&Expense{},
		&Notification{},
		&FCMToken{},
		&InvoiceSequence{},
	); err != nil {
		return err
	}

	// 2. Simple foreign key relationships
	if err := db.AutoMigrate(
		&Vehicle{},          // Depends on Customer
		&SupplierPurchase{}, // Depends on Supplier, InventoryItem
	); err != nil {
		return err
	}

	// 3. Models depending on multiple others
	return db.AutoMigrate(
		&Job{},     // Depends on Customer, Vehicle, Technician
		&Invoice{}, // Depends on Job
		&InvoiceItem{},
		&InvoiceExtraItem{},
	)
}
