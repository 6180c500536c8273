package http

import (
	"fmt"
	"net/http"

	"github.com/tuanvumaihuynh/parts-inventory/internal/apperr"
	"github.com/tuanvumaihuynh/parts-inventory/internal/http/bind"
	"github.com/tuanvumaihuynh/parts-inventory/internal/service"
	"github.com/tuanvumaihuynh/parts-inventory/pkg/validator"
)

type partHandler struct {
	partSvc   service.PartService
	validator validator.Validator
}

func newPartHandler(partSvc service.PartService, v validator.Validator) *partHandler {
	return &partHandler{
		partSvc:   partSvc,
		validator: v,
	}
}

func (h *partHandler) GetRoot(_ http.ResponseWriter, _ *http.Request) (int, any, error) {
	return http.StatusOK, MessageResponse{Message: rootMessage}, nil
}

func (h *partHandler) ListParts(_ http.ResponseWriter, r *http.Request) (int, any, error) {
	parts, err := h.partSvc.ListAllParts(r.Context())
	if err != nil {
		return 0, nil, fmt.Errorf("part service list all parts: %w", err)
	}

	return http.StatusOK, toPartResponses(parts), nil
}

func (h *partHandler) CreatePart(w http.ResponseWriter, r *http.Request) (int, any, error) {
	var body CreatePartRequest
	if err := bind.JSONBody(w, r, &body); err != nil {
		return 0, nil, err
	}

	if err := h.validator.Validate(body); err != nil {
		return 0, nil, apperr.ValidationErr.WrapParent(err)
	}

	part, err := h.partSvc.CreatePart(r.Context(), service.CreatePartParams{
		Name:          body.Name,
		PartType:      body.PartType,
		CarModel:      body.CarModel,
		Stock:         *body.Stock,
		MinStockLevel: body.MinStockLevel,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("part service create part: %w", err)
	}

	return http.StatusOK, toPartResponse(part), nil
}

func (h *partHandler) UpdatePartStock(_ http.ResponseWriter, r *http.Request) (int, any, error) {
	var params UpdatePartStockParams
	if err := bind.PathParam(r, "part_id", &params.PartID); err != nil {
		return 0, nil, err
	}
	if err := bind.QueryParam(r, "new_stock", true, &params.NewStock); err != nil {
		return 0, nil, err
	}

	if err := h.validator.Validate(params); err != nil {
		return 0, nil, apperr.ValidationErr.WrapParent(err)
	}

	part, err := h.partSvc.UpdatePartStock(r.Context(), params.PartID, params.NewStock)
	if err != nil {
		return 0, nil, fmt.Errorf("part service update part stock: %w", err)
	}

	return http.StatusOK, toPartResponse(part), nil
}

func (h *partHandler) ListRestockAlerts(_ http.ResponseWriter, r *http.Request) (int, any, error) {
	parts, err := h.partSvc.ListRestockAlerts(r.Context())
	if err != nil {
		return 0, nil, fmt.Errorf("part service list restock alerts: %w", err)
	}

	return http.StatusOK, toPartResponses(parts), nil
}
