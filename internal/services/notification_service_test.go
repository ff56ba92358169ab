package services_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"estore/internal/services"

	"github.com/stretchr/testify/assert"
)

// fakePublisher records published bodies and can simulate a broker failure.
type fakePublisher struct {
	published [][]byte
	err       error
}

func (p *fakePublisher) Publish(body []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, body)
	return nil
}

// fakeMailer records sent mail and can simulate a relay failure.
type fakeMailer struct {
	subjects []string
	bodies   []string
	err      error
}

func (m *fakeMailer) Send(subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.subjects = append(m.subjects, subject)
	m.bodies = append(m.bodies, body)
	return nil
}

func TestNotificationService_QueueOrderNotification(t *testing.T) {
	publisher := &fakePublisher{}
	service := services.NewNotificationService(publisher, &fakeMailer{})

	notification := services.OrderNotification{
		Email:        "customer@example.com",
		OrderDetails: "2x Leather Jacket (size M)",
	}
	err := service.QueueOrderNotification(notification)
	assert.NoError(t, err)
	assert.Len(t, publisher.published, 1)

	var published services.OrderNotification
	assert.NoError(t, json.Unmarshal(publisher.published[0], &published))
	assert.Equal(t, notification, published)

	// Broker failure surfaces to the caller.
	publisher.err = fmt.Errorf("channel closed")
	err = service.QueueOrderNotification(notification)
	assert.Error(t, err)

	// No publisher configured at all.
	unconfigured := services.NewNotificationService(nil, &fakeMailer{})
	err = unconfigured.QueueOrderNotification(notification)
	assert.Error(t, err)
}

func TestNotificationService_Deliver(t *testing.T) {
	sender := &fakeMailer{}
	service := services.NewNotificationService(&fakePublisher{}, sender)

	body, _ := json.Marshal(services.OrderNotification{
		Email:        "customer@example.com",
		OrderDetails: "1x Wool Scarf",
	})
	err := service.Deliver(body)
	assert.NoError(t, err)
	assert.Equal(t, []string{"New Order"}, sender.subjects)
	assert.Contains(t, sender.bodies[0], "Customer Email: customer@example.com")
	assert.Contains(t, sender.bodies[0], "1x Wool Scarf")

	// Delivery is fire-and-forget: relay failures are logged and dropped,
	// never requeued.
	sender.err = fmt.Errorf("relay unreachable")
	err = service.Deliver(body)
	assert.NoError(t, err)

	// Unparseable events are dropped rather than poisoning the queue.
	err = service.Deliver([]byte("not json"))
	assert.NoError(t, err)
}
