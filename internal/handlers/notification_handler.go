package handlers

import (
	"log"

	"estore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles HTTP requests for order notifications.
type NotificationHandler struct {
	service  *services.NotificationService
	validate *validator.Validate
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the notification routes with the Fiber app.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/send-email", h.HandleSendEmail)
}

// SendEmailRequest is the request body for an order notification.
type SendEmailRequest struct {
	Email        string `json:"email" validate:"required,email"`
	OrderDetails string `json:"orderDetails" validate:"required"`
}

// HandleSendEmail queues an order-notification email. Success means the
// notification was queued; delivery happens asynchronously with no retry.
func (h *NotificationHandler) HandleSendEmail(c *fiber.Ctx) error {
	var req SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing send-email request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email and order details are required",
		})
	}

	notification := services.OrderNotification{
		Email:        req.Email,
		OrderDetails: req.OrderDetails,
	}
	if err := h.service.QueueOrderNotification(notification); err != nil {
		log.Printf("Error queueing order notification: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send email.",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Email sent successfully!",
	})
}
