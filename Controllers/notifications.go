package Controllers

import (
	"errors"
	"strconv"

	"Garage/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetNotifications retrieves notifications, newest first
// GET /api/notifications?unread=1
func GetNotifications(c *fiber.Ctx) error {
	query := Models.DB.Model(&Models.Notification{})
	if c.Query("unread") == "1" {
		query = query.Where("read = ?", false)
	}
	if notifType := c.Query("type"); notifType != "" {
		query = query.Where("type = ?", notifType)
	}

	var notifications []Models.Notification
	if err := query.Order("created_at DESC").Limit(200).Find(&notifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve notifications"})
	}

	var unreadCount int64
	Models.DB.Model(&Models.Notification{}).Where("read = ?", false).Count(&unreadCount)

	return c.JSON(fiber.Map{
		"data":         notifications,
		"unread_count": unreadCount,
	})
}

// MarkNotificationRead marks a single notification as read
// PUT /api/notifications/:id/read
func MarkNotificationRead(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid notification ID"})
	}

	var notification Models.Notification
	if err := Models.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notification not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch notification"})
	}

	if err := Models.DB.Model(&notification).Update("read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notification"})
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

// MarkAllNotificationsRead marks every unread notification as read
// PUT /api/notifications/read-all
func MarkAllNotificationsRead(c *fiber.Ctx) error {
	result := Models.DB.Model(&Models.Notification{}).Where("read = ?", false).Update("read", true)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update notifications"})
	}
	return c.JSON(fiber.Map{
		"message": "All notifications marked as read",
		"updated": result.RowsAffected,
	})
}
