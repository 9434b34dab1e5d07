// Package kafka dispatches order status notifications as Kafka events.
// Downstream delivery workers (mailers, SMS gateways, webhooks) consume the
// topic and render the named template for their channel.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"

	"github.com/twmb/franz-go/pkg/kgo"
)

// statusChangeEvent is the wire payload published per matched rule.
type statusChangeEvent struct {
	RuleID     int64  `json:"rule_id"`
	Channel    string `json:"channel"`
	Template   string `json:"template"`
	OrderID    int64  `json:"order_id"`
	Number     string `json:"number"`
	Status     string `json:"status"`
	CustomerID string `json:"customer_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// Sender implements ports.NotificationSender on top of a franz-go producer.
type Sender struct {
	client *kgo.Client
	topic  string
}

// NewSender connects a Kafka producer for status notifications. Production
// waits for all in-sync replicas so a dispatched notification survives a
// broker failover.
func NewSender(brokers []string, topic string) (*Sender, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProduceRequestTimeout(10*time.Second),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ClientID("commerce-notifications"),
	)
	if err != nil {
		return nil, err
	}

	return &Sender{client: client, topic: topic}, nil
}

// Send publishes one status-change event for the matched rule. Keyed by order
// ID so all events for one order land in the same partition, in order.
func (s *Sender) Send(ctx context.Context, rule ports.NotificationRule, o *order.Order) error {
	event := statusChangeEvent{
		RuleID:     rule.ID,
		Channel:    rule.Channel,
		Template:   rule.Template,
		OrderID:    o.ID(),
		Number:     o.Number(),
		Status:     o.Status().String(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if customerID := o.CustomerID(); customerID != nil {
		event.CustomerID = customerID.String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(fmt.Sprintf("%d", o.ID())),
		Value: data,
	}

	return s.client.ProduceSync(ctx, record).FirstErr()
}

// Close flushes and closes the underlying Kafka client.
func (s *Sender) Close() {
	s.client.Close()
}
