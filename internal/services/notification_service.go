package services

import (
	"encoding/json"
	"fmt"
	"log"

	"estore/pkg/mailer"
)

// EventPublisher publishes a raw event body to the notification queue.
// Satisfied by *rabbitmq.Client.
type EventPublisher interface {
	Publish(body []byte) error
}

// OrderNotification is the payload queued when a customer places an order.
type OrderNotification struct {
	Email        string `json:"email"`
	OrderDetails string `json:"orderDetails"`
}

// NotificationService queues order notifications and delivers them as
// email. Queueing and delivery are decoupled: the HTTP handler only waits
// for the publish, delivery happens on the consumer side with no retry.
type NotificationService struct {
	publisher EventPublisher
	mailer    mailer.Mailer
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(publisher EventPublisher, mailer mailer.Mailer) *NotificationService {
	return &NotificationService{
		publisher: publisher,
		mailer:    mailer,
	}
}

// QueueOrderNotification publishes an order notification event. The caller
// learns whether the event was queued, not whether the mail went out.
func (s *NotificationService) QueueOrderNotification(notification OrderNotification) error {
	if s.publisher == nil {
		return fmt.Errorf("notification publisher is not configured")
	}
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal order notification: %w", err)
	}
	if err := s.publisher.Publish(body); err != nil {
		return fmt.Errorf("failed to publish order notification: %w", err)
	}
	return nil
}

// Deliver processes a consumed notification event and sends the order
// email. Used as the queue consumer's message handler. Delivery is
// fire-and-forget: a failed or unparseable send is logged and dropped, not
// requeued.
func (s *NotificationService) Deliver(body []byte) error {
	var notification OrderNotification
	if err := json.Unmarshal(body, &notification); err != nil {
		log.Printf("Dropping unparseable order notification: %v", err)
		return nil
	}
	if s.mailer == nil {
		log.Println("Mailer is not configured. Dropping order notification.")
		return nil
	}

	text := fmt.Sprintf("Customer Email: %s\n\n%s", notification.Email, notification.OrderDetails)
	if err := s.mailer.Send("New Order", text); err != nil {
		log.Printf("Failed to send order email for customer %s: %v", notification.Email, err)
		return nil
	}
	log.Printf("Order notification email sent for customer %s", notification.Email)
	return nil
}
