package Notifications

import (
	"context"
	"fmt"
	"log"
	"os"

	"Garage/Ledger"
	"Garage/Models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

var firebaseClient *messaging.Client
var ctx = context.Background()

var pushTitles = map[string]string{
	Models.NotificationInvoiceCreated: "Invoice Created",
	Models.NotificationInvoicePaid:    "Invoice Paid",
	Models.NotificationInvoiceDeleted: "Invoice Deleted",
	Models.NotificationInventoryUsed:  "Inventory Used",
	Models.NotificationLowStock:       "Low Stock Alert",
}

// InitFirebase sets up the FCM client from the credentials file named
// in FIREBASE_CREDENTIALS. Push delivery stays disabled when the
// variable is unset.
func InitFirebase() error {
	credentials := os.Getenv("FIREBASE_CREDENTIALS")
	if credentials == "" {
		log.Println("FIREBASE_CREDENTIALS not set, push delivery disabled")
		return nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentials))
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("error getting Messaging client: %v", err)
	}

	firebaseClient = client
	log.Println("Firebase initialized successfully")
	return nil
}

// SendPush delivers an event to every registered dashboard device.
func SendPush(db *gorm.DB, event Ledger.Event) error {
	if firebaseClient == nil {
		return nil
	}

	var tokens []Models.FCMToken
	if err := db.Find(&tokens).Error; err != nil {
		return err
	}

	title, ok := pushTitles[event.Type]
	if !ok {
		title = "Garage Notification"
	}

	for _, token := range tokens {
		message := &messaging.Message{
			Token: token.Token,
			Data: map[string]string{
				"type":     event.Type,
				"ref_type": event.RefType,
				"ref_id":   fmt.Sprintf("%d", event.RefID),
			},
			Notification: &messaging.Notification{
				Title: title,
				Body:  event.Message,
			},
		}
		if _, err := firebaseClient.Send(ctx, message); err != nil {
			log.Printf("Error sending push to token %d: %v", token.ID, err)
		}
	}
	return nil
}
