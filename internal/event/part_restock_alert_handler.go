package event

import (
	"context"
	"log/slog"
)

func (s *Service) handlePartRestockAlertEvent(ctx context.Context, ev PartRestockAlertEvent) error {
	s.logger.WarnContext(ctx, "part needs restock",
		slog.String("part_id", ev.PartID),
		slog.String("name", ev.Name),
		slog.Int("stock", ev.Stock),
		slog.Int("min_stock_level", ev.MinStockLevel),
	)
	return nil
}
