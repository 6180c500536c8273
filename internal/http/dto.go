package http

import "github.com/tuanvumaihuynh/parts-inventory/internal/model"

const rootMessage = "Vehicle Parts Inventory System API"

type MessageResponse struct {
	Message string `json:"message"`
}

type PartResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PartType      string `json:"part_type"`
	CarModel      string `json:"car_model"`
	Stock         int    `json:"stock"`
	MinStockLevel int    `json:"min_stock_level"`
}

// CreatePartRequest is the body of POST /api/parts. A client supplied id is accepted and ignored.
type CreatePartRequest struct {
	ID            *string `json:"id,omitempty"`
	Name          string  `json:"name" validate:"required"`
	PartType      string  `json:"part_type" validate:"required"`
	CarModel      string  `json:"car_model" validate:"required"`
	Stock         *int    `json:"stock" validate:"required,gte=0"`
	MinStockLevel *int    `json:"min_stock_level,omitempty" validate:"omitempty,gte=0"`
}

type UpdatePartStockParams struct {
	PartID   string `json:"part_id" validate:"required"`
	NewStock int    `json:"new_stock" validate:"gte=0"`
}

func toPartResponse(part model.Part) PartResponse {
	return PartResponse{
		ID:            part.ID,
		Name:          part.Name,
		PartType:      part.PartType,
		CarModel:      part.CarModel,
		Stock:         part.Stock,
		MinStockLevel: part.MinStockLevel,
	}
}

func toPartResponses(parts []model.Part) []PartResponse {
	items := make([]PartResponse, 0, len(parts))
	for _, part := range parts {
		items = append(items, toPartResponse(part))
	}
	return items
}
