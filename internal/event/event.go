package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tuanvumaihuynh/parts-inventory/internal/model"
	"github.com/tuanvumaihuynh/parts-inventory/internal/storage/mq"
)

const DefaultTopicPartRestockAlert = "part.restock_alert"

// PartRestockAlertEvent is emitted whenever a part is left at or below its minimum stock level.
type PartRestockAlertEvent struct {
	PartID        string `json:"part_id"`
	Name          string `json:"name"`
	PartType      string `json:"part_type"`
	CarModel      string `json:"car_model"`
	Stock         int    `json:"stock"`
	MinStockLevel int    `json:"min_stock_level"`
}

func NewPartRestockAlertEvent(part model.Part) PartRestockAlertEvent {
	return PartRestockAlertEvent{
		PartID:        part.ID,
		Name:          part.Name,
		PartType:      part.PartType,
		CarModel:      part.CarModel,
		Stock:         part.Stock,
		MinStockLevel: part.MinStockLevel,
	}
}

type Publisher interface {
	PublishPartRestockAlert(ctx context.Context, ev PartRestockAlertEvent) error
}

var (
	_ Publisher = NopPublisher{}
	_ Publisher = (*MQPublisher)(nil)
)

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishPartRestockAlert(context.Context, PartRestockAlertEvent) error {
	return nil
}

// MQPublisher publishes events through an mq.Producer, keyed by part id.
type MQPublisher struct {
	producer mq.Producer
	topic    string
}

func NewMQPublisher(producer mq.Producer, topic string) *MQPublisher {
	if topic == "" {
		topic = DefaultTopicPartRestockAlert
	}

	return &MQPublisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *MQPublisher) PublishPartRestockAlert(ctx context.Context, ev PartRestockAlertEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal part restock alert event: %w", err)
	}

	key := ev.PartID
	if err := p.producer.Produce(ctx, mq.ProduceMsg{
		Topic:        p.topic,
		Headers:      mq.BuildHeaders(ctx),
		Payload:      payload,
		PartitionKey: &key,
	}); err != nil {
		return fmt.Errorf("produce part restock alert event: %w", err)
	}

	return nil
}
