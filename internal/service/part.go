package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/parts-inventory/internal/apperr"
	"github.com/tuanvumaihuynh/parts-inventory/internal/event"
	"github.com/tuanvumaihuynh/parts-inventory/internal/model"
	"github.com/tuanvumaihuynh/parts-inventory/internal/repository"
)

type CreatePartParams struct {
	Name     string
	PartType string
	CarModel string
	Stock    int
	// MinStockLevel falls back to the service default when nil.
	MinStockLevel *int
}

type PartService interface {
	CreatePart(ctx context.Context, params CreatePartParams) (model.Part, error)
	GetPart(ctx context.Context, id string) (model.Part, error)
	ListAllParts(ctx context.Context) ([]model.Part, error)
	ListRestockAlerts(ctx context.Context) ([]model.Part, error)
	UpdatePartStock(ctx context.Context, id string, newStock int) (model.Part, error)
}

type Option func(*partService)

// WithDefaultMinStockLevel overrides model.DefaultMinStockLevel for parts created without a threshold.
func WithDefaultMinStockLevel(level int) Option {
	return func(s *partService) {
		s.defaultMinStockLevel = level
	}
}

// WithPublisher sets the publisher receiving restock alert events.
func WithPublisher(publisher event.Publisher) Option {
	return func(s *partService) {
		s.publisher = publisher
	}
}

// WithIDGenerator replaces the uuid based part id generator.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(s *partService) {
		s.newID = fn
	}
}

type partService struct {
	logger    *slog.Logger
	partRepo  repository.PartRepository
	publisher event.Publisher
	newID     func() (string, error)

	defaultMinStockLevel int
}

func NewPartService(
	logger *slog.Logger,
	partRepo repository.PartRepository,
	opts ...Option,
) PartService {
	s := &partService{
		logger:               logger.With(slog.String("service", "part")),
		partRepo:             partRepo,
		publisher:            event.NopPublisher{},
		newID:                newUUID,
		defaultMinStockLevel: model.DefaultMinStockLevel,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid v7: %w", err)
	}
	return id.String(), nil
}

func (s *partService) CreatePart(ctx context.Context, params CreatePartParams) (model.Part, error) {
	id, err := s.newID()
	if err != nil {
		return model.Part{}, fmt.Errorf("generate part id: %w", err)
	}

	minStockLevel := s.defaultMinStockLevel
	if params.MinStockLevel != nil {
		minStockLevel = *params.MinStockLevel
	}

	part, err := s.partRepo.CreatePart(ctx, model.Part{
		ID:            id,
		Name:          params.Name,
		PartType:      params.PartType,
		CarModel:      params.CarModel,
		Stock:         params.Stock,
		MinStockLevel: minStockLevel,
	})
	if err != nil {
		return model.Part{}, fmt.Errorf("part repository create part: %w", err)
	}

	s.logger.InfoContext(ctx, "part created", slog.String("part_id", part.ID))
	s.publishIfLow(ctx, part)

	return part, nil
}

func (s *partService) GetPart(ctx context.Context, id string) (model.Part, error) {
	part, err := s.partRepo.GetPartByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			return model.Part{}, apperr.PartNotFoundErr.WrapParent(err)
		}
		return model.Part{}, fmt.Errorf("part repository get part by id: %w", err)
	}

	return part, nil
}

func (s *partService) ListAllParts(ctx context.Context) ([]model.Part, error) {
	parts, err := s.partRepo.ListAllParts(ctx)
	if err != nil {
		return nil, fmt.Errorf("part repository list all parts: %w", err)
	}

	return parts, nil
}

func (s *partService) ListRestockAlerts(ctx context.Context) ([]model.Part, error) {
	parts, err := s.partRepo.ListLowStockParts(ctx)
	if err != nil {
		return nil, fmt.Errorf("part repository list low stock parts: %w", err)
	}

	return parts, nil
}

func (s *partService) UpdatePartStock(ctx context.Context, id string, newStock int) (model.Part, error) {
	part, err := s.partRepo.UpdatePartStock(ctx, id, newStock)
	if err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			return model.Part{}, apperr.PartNotFoundErr.WrapParent(err)
		}
		return model.Part{}, fmt.Errorf("part repository update part stock: %w", err)
	}

	s.logger.InfoContext(ctx, "part stock updated",
		slog.String("part_id", part.ID),
		slog.Int("stock", part.Stock),
	)
	s.publishIfLow(ctx, part)

	return part, nil
}

// publishIfLow emits a restock alert for part when needed. Failures are logged only;
// the stock change has already been applied.
func (s *partService) publishIfLow(ctx context.Context, part model.Part) {
	if !part.NeedsRestock() {
		return
	}

	if err := s.publisher.PublishPartRestockAlert(ctx, event.NewPartRestockAlertEvent(part)); err != nil {
		s.logger.ErrorContext(ctx, "error publishing part restock alert",
			slog.String("part_id", part.ID),
			slog.Any("error", err),
		)
	}
}
