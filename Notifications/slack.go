package Notifications

import (
	"fmt"
	"os"

	"github.com/slack-go/slack"
)

// formatLowStock builds the message body shared by the sweep and the
// Slack channel post.
func formatLowStock(name string, quantity, threshold float64) string {
	return fmt.Sprintf("Low stock: %s has %g remaining (reorder threshold %g)", name, quantity, threshold)
}

// PostLowStockAlert posts a low-stock message to the workshop alerts
// channel. Disabled when SLACK_TOKEN or SLACK_ALERT_CHANNEL is unset.
func PostLowStockAlert(message string) error {
	token := os.Getenv("SLACK_TOKEN")
	channel := os.Getenv("SLACK_ALERT_CHANNEL")
	if token == "" || channel == "" {
		return nil
	}

	api := slack.New(token)
	_, _, err := api.PostMessage(channel,
		slack.MsgOptionText(fmt.Sprintf(":package: %s", message), false))
	if err != nil {
		return fmt.Errorf("failed to post Slack message: %v", err)
	}
	return nil
}
