package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/parts-inventory/internal/storage/mq"
)

// Service is the event service.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
	alertTopic string
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
	alertTopic string,
) *Service {
	if alertTopic == "" {
		alertTopic = DefaultTopicPartRestockAlert
	}

	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
		alertTopic: alertTopic,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(
		s.alertTopic,
		func(ctx context.Context, topic string, payload []byte) error {
			var ev PartRestockAlertEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				return fmt.Errorf("unmarshal part restock alert event: %w", err)
			}

			if err := s.handlePartRestockAlertEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle part restock alert event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register part restock alert event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}
